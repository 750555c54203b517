package term_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notefold/notedown/internal/ui/term"
	"github.com/notefold/notedown/pkg/imagecache"
	"github.com/notefold/notedown/pkg/parse"
	"github.com/notefold/notedown/pkg/render"
)

// fixedStore serves canned attachment bytes.
type fixedStore struct {
	data map[string][]byte
}

func (s *fixedStore) Get(_ context.Context, filename string) ([]byte, error) {
	if data, found := s.data[filename]; found {
		return data, nil
	}
	return nil, errors.New("not found")
}

func (s *fixedStore) Save(_ context.Context, _ []byte, suggestedName string) (string, error) {
	return suggestedName, nil
}

func renderPlain(t *testing.T, input string, opts term.Options) string {
	t.Helper()
	doc := render.NewEmitter(render.DefaultOptions()).Emit(parse.Parse(input))
	return term.New(opts).Render(context.Background(), doc)
}

func TestRender_EmptyDocument(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderPlain(t, "", term.Options{}))
}

func TestRender_HeadingAndParagraph(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "# Title\n\nbody text", term.Options{})

	assert.Equal(t, "# Title\n\nbody text\n", out)
}

func TestRender_InlineSpansWithoutColor(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "**b** and *i* and `c` and ~~s~~", term.Options{})

	assert.Equal(t, "b and i and c and s\n", out)
}

func TestRender_LinkShowsURLWhenDistinct(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "See [Go](https://go.dev) or https://go.dev", term.Options{})

	assert.Equal(t, "See Go (https://go.dev) or https://go.dev\n", out)
}

func TestRender_Blockquote(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "> first\n> second", term.Options{})

	assert.Equal(t, "│ first\n│ second\n", out)
}

func TestRender_CodeBlockWithLanguageLabel(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "```go\nx := 1\ny := 2\n```", term.Options{})

	assert.Equal(t, "go\n    x := 1\n    y := 2\n", out)
}

func TestRender_NestedList(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "- a\n  - b\n- c", term.Options{})

	assert.Equal(t, "• a\n  • b\n• c\n", out)
}

func TestRender_OrderedListMarkers(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "1. one\n2. two", term.Options{})

	assert.Equal(t, "1. one\n2. two\n", out)
}

func TestRender_ChecklistGlyphs(t *testing.T) {
	t.Parallel()

	opts := term.Options{CheckedGlyph: "✓", UncheckedGlyph: "○"}
	out := renderPlain(t, "- [x] done\n- [ ] open", opts)

	assert.Equal(t, "✓ done\n○ open\n", out)
}

func TestRender_RuleSpansWidth(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "---", term.Options{Width: 10})

	assert.Equal(t, strings.Repeat("─", 10)+"\n", out)
}

func TestRender_TableLayout(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "| a | bb |\n| - | -- |\n| ccc | d |", term.Options{})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a   │ bb", lines[0])
	assert.Equal(t, "───┼──", lines[1])
	assert.Equal(t, "ccc │ d ", lines[2])
}

func TestRender_ImagePlaceholderWithoutResolver(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "![shot](image://shot.png)", term.Options{})

	assert.Equal(t, "[shot]\n", out)
}

func TestRender_ImageLifecycle(t *testing.T) {
	t.Parallel()

	store := &fixedStore{data: map[string][]byte{"shot.png": make([]byte, 5)}}
	resolver := imagecache.NewResolver(store)
	renderer := term.New(term.Options{Resolver: resolver})

	doc := render.NewEmitter(render.DefaultOptions()).Emit(parse.Parse("![shot](image://shot.png)"))
	ctx := context.Background()

	first := renderer.Render(ctx, doc)
	assert.Equal(t, "[shot: loading…]\n", first)

	require.NoError(t, resolver.Wait(ctx))

	second := renderer.Render(ctx, doc)
	assert.Equal(t, "[shot, 5 B]\n", second)
}

func TestRender_ImageFailure(t *testing.T) {
	t.Parallel()

	resolver := imagecache.NewResolver(&fixedStore{})
	renderer := term.New(term.Options{Resolver: resolver})

	doc := render.NewEmitter(render.DefaultOptions()).Emit(parse.Parse("before ![missing](image://gone.png) after"))
	ctx := context.Background()

	renderer.Render(ctx, doc)
	require.NoError(t, resolver.Wait(ctx))

	out := renderer.Render(ctx, doc)
	assert.Equal(t, "before [missing: unavailable] after\n", out)
}
