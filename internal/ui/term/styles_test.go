package term_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notefold/notedown/internal/ui/term"
)

func TestIsColorEnabled_ExplicitModes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, term.IsColorEnabled("always", &buf))
	assert.False(t, term.IsColorEnabled("never", &buf))
}

func TestIsColorEnabled_AutoWithNonTTY(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.False(t, term.IsColorEnabled("auto", &buf))
	assert.False(t, term.IsColorEnabled("", &buf))
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, term.IsColorEnabled("auto", &buf))

	// Explicit always still wins over the environment.
	assert.True(t, term.IsColorEnabled("always", &buf))
}

func TestWidth(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, 120, term.Width(120, &buf, 80))
	assert.Equal(t, 80, term.Width(0, &buf, 80))
	assert.Equal(t, 80, term.Width(-1, &buf, 80))
}

func TestNewStyles_PlainRendersUnchanged(t *testing.T) {
	t.Parallel()

	styles := term.NewStyles(false)
	assert.Equal(t, "text", styles.Bold.Render("text"))
	assert.Equal(t, "text", styles.Link.Render("text"))
}
