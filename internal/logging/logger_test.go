package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notefold/notedown/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"info":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"INFO":    log.InfoLevel,
		"bogus":   log.InfoLevel,
	}

	for input, want := range cases {
		logger := logging.New(input)
		require.NotNil(t, logger)
		assert.Equal(t, want, logger.GetLevel(), "level %q", input)
	}
}

func TestDefault_IsStable(t *testing.T) {
	t.Parallel()

	assert.Same(t, logging.Default(), logging.Default())
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	custom := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), custom)

	assert.Same(t, custom, logging.FromContext(ctx))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))

	//nolint:staticcheck // Verifying the nil-context fallback.
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}
