package inline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notefold/notedown/pkg/ast"
	"github.com/notefold/notedown/pkg/inline"
)

func TestScan_BoldSuppressesNestedItalic(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("**bold *nested* still bold**")

	require.Len(t, matches, 1)
	assert.Equal(t, ast.InlineBold, matches[0].Kind)
	assert.Equal(t, "bold *nested* still bold", matches[0].Text)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 27, matches[0].End)
}

func TestScan_ItalicAfterBoldSurvives(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("**bold** and *italic*")

	require.Len(t, matches, 2)
	assert.Equal(t, ast.InlineBold, matches[0].Kind)
	assert.Equal(t, "bold", matches[0].Text)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 7, matches[0].End)
	assert.Equal(t, ast.InlineItalic, matches[1].Kind)
	assert.Equal(t, "italic", matches[1].Text)
	assert.Equal(t, 13, matches[1].Start)
	assert.Equal(t, 20, matches[1].End)
}

func TestScan_ItalicsAroundBold(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("*a* **b** *c*")

	require.Len(t, matches, 3)
	assert.Equal(t, ast.InlineItalic, matches[0].Kind)
	assert.Equal(t, "a", matches[0].Text)
	assert.Equal(t, ast.InlineBold, matches[1].Kind)
	assert.Equal(t, ast.InlineItalic, matches[2].Kind)
	assert.Equal(t, "c", matches[2].Text)
}

func TestScan_MarkdownLinkAndAutolink(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("Check [Google](https://google.com) and https://github.com")

	require.Len(t, matches, 2)
	assert.Equal(t, ast.InlineLink, matches[0].Kind)
	assert.Equal(t, "Google", matches[0].Text)
	assert.Equal(t, "https://google.com", matches[0].URL)
	assert.Equal(t, ast.InlineLink, matches[1].Kind)
	assert.Equal(t, "https://github.com", matches[1].Text)
	assert.Equal(t, "https://github.com", matches[1].URL)
}

func TestScan_AutolinkVariants(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("see www.example.com and ftp://host/file")

	require.Len(t, matches, 2)
	assert.Equal(t, "www.example.com", matches[0].Text)
	assert.Equal(t, "ftp://host/file", matches[1].Text)
}

func TestScan_ImagePseudoSchemes(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("![pic](image://photo.png) and ![buf](cache://k1)")

	require.Len(t, matches, 2)
	assert.Equal(t, ast.InlineImage, matches[0].Kind)
	assert.Equal(t, "pic", matches[0].Text)
	assert.Equal(t, "image://photo.png", matches[0].URL)
	assert.Equal(t, "cache://k1", matches[1].URL)
}

func TestScan_ImageSchemeOutsideAllowList(t *testing.T) {
	t.Parallel()

	// Not an image (scheme not allowed), not a link (image syntax), and
	// the URL inside must not surface as an autolink either.
	matches := inline.Scan("![pic](https://host/p.png)")

	assert.Empty(t, matches)
}

func TestScan_StyleKinds(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("*it* ~~gone~~ `x := 1`")

	require.Len(t, matches, 3)
	assert.Equal(t, ast.InlineItalic, matches[0].Kind)
	assert.Equal(t, "it", matches[0].Text)
	assert.Equal(t, ast.InlineStrikethrough, matches[1].Kind)
	assert.Equal(t, "gone", matches[1].Text)
	assert.Equal(t, ast.InlineCode, matches[2].Kind)
	assert.Equal(t, "x := 1", matches[2].Text)
}

func TestScan_CodeWinsInsideItsOwnSpan(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("`code **x**`")

	require.Len(t, matches, 1)
	assert.Equal(t, ast.InlineCode, matches[0].Kind)
	assert.Equal(t, "code **x**", matches[0].Text)
}

func TestScan_SortedByStart(t *testing.T) {
	t.Parallel()

	matches := inline.Scan("https://z.io then **b** then `c`")

	require.Len(t, matches, 3)
	for i := 1; i < len(matches); i++ {
		assert.Less(t, matches[i-1].Start, matches[i].Start)
	}
}

func TestMerge_PrecedenceDropsOverlaps(t *testing.T) {
	t.Parallel()

	bold := ast.InlineMatch{Kind: ast.InlineBold, Start: 0, End: 10}
	link := ast.InlineMatch{Kind: ast.InlineLink, Start: 5, End: 15}

	merged := inline.Merge([]ast.InlineMatch{bold, link})

	require.Len(t, merged, 1)
	assert.Equal(t, ast.InlineLink, merged[0].Kind)
}

func TestSegments_Reassembly(t *testing.T) {
	t.Parallel()

	segments := inline.Segments("a **b** c")

	require.Len(t, segments, 3)
	assert.Equal(t, "a ", segments[0].Literal)
	require.NotNil(t, segments[1].Match)
	assert.Equal(t, ast.InlineBold, segments[1].Match.Kind)
	assert.Equal(t, " c", segments[2].Literal)
}

func TestSegments_RoundTripsOriginalText(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text only",
		"**b** *i* `c` ~~s~~",
		"pre [l](http://u) mid ![a](image://f.png) post",
		"touching**bold**text",
		"unbalanced ** and * markers",
	}

	for _, input := range inputs {
		var rebuilt strings.Builder
		for _, seg := range inline.Segments(input) {
			if seg.Match == nil {
				rebuilt.WriteString(seg.Literal)
				continue
			}
			rebuilt.WriteString(input[seg.Match.Start : seg.Match.End+1])
		}
		assert.Equal(t, input, rebuilt.String(), "input %q", input)
	}
}

func TestScan_PlainTextHasNoMatches(t *testing.T) {
	t.Parallel()

	assert.Empty(t, inline.Scan("nothing styled here"))

	segments := inline.Segments("nothing styled here")
	require.Len(t, segments, 1)
	assert.Equal(t, "nothing styled here", segments[0].Literal)
}
