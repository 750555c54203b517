package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notefold/notedown/pkg/ast"
	"github.com/notefold/notedown/pkg/parse"
)

func requireList(t *testing.T, doc *ast.Document) *ast.ListAttrs {
	t.Helper()
	require.Len(t, doc.Blocks, 1)
	require.Equal(t, ast.BlockList, doc.Blocks[0].Kind)
	require.NotNil(t, doc.Blocks[0].List)
	return doc.Blocks[0].List
}

func TestParse_ListNesting(t *testing.T) {
	t.Parallel()

	list := requireList(t, parse.Parse("- a\n  - b\n- c"))

	assert.False(t, list.Ordered)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "a", list.Items[0].Text)
	require.Len(t, list.Items[0].Children, 1)
	assert.Equal(t, "b", list.Items[0].Children[0].Text)
	assert.Equal(t, 1, list.Items[0].Children[0].Indent)
	assert.Equal(t, "c", list.Items[1].Text)
}

func TestParse_ListTabIndent(t *testing.T) {
	t.Parallel()

	list := requireList(t, parse.Parse("- a\n\t- b"))

	require.Len(t, list.Items, 1)
	require.Len(t, list.Items[0].Children, 1)
	assert.Equal(t, "b", list.Items[0].Children[0].Text)
}

func TestParse_ListOddSpacesFloorToLevelBelow(t *testing.T) {
	t.Parallel()

	// Three spaces are one and a half levels, floored to one.
	list := requireList(t, parse.Parse("- a\n   - b"))

	require.Len(t, list.Items, 1)
	require.Len(t, list.Items[0].Children, 1)
	assert.Equal(t, 1, list.Items[0].Children[0].Indent)
}

func TestParse_ListLevelSkipNestsUnderNearestAncestor(t *testing.T) {
	t.Parallel()

	list := requireList(t, parse.Parse("- a\n        - deep\n  - back"))

	require.Len(t, list.Items, 1)
	root := list.Items[0]
	require.Len(t, root.Children, 2)
	assert.Equal(t, "deep", root.Children[0].Text)
	assert.Equal(t, 4, root.Children[0].Indent)
	assert.Equal(t, "back", root.Children[1].Text)
	assert.Equal(t, 1, root.Children[1].Indent)
}

func TestParse_OrderedList(t *testing.T) {
	t.Parallel()

	list := requireList(t, parse.Parse("1. first\n2. second\n10. tenth"))

	assert.True(t, list.Ordered)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "first", list.Items[0].Text)
	assert.Equal(t, "tenth", list.Items[2].Text)
}

func TestParse_ListBlankSeparatorTolerated(t *testing.T) {
	t.Parallel()

	doc := parse.Parse("- a\n\n- b")

	list := requireList(t, doc)
	require.Len(t, list.Items, 2)
	assert.Equal(t, ast.Span{StartLine: 0, EndLine: 2}, doc.Blocks[0].Span)
}

func TestParse_ListStopsAtBlankBeforeNonItem(t *testing.T) {
	t.Parallel()

	doc := parse.Parse("- a\n\ntrailing text")

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, ast.BlockList, doc.Blocks[0].Kind)
	assert.Equal(t, ast.Span{StartLine: 0, EndLine: 0}, doc.Blocks[0].Span)
	assert.Equal(t, ast.BlockParagraph, doc.Blocks[1].Kind)
	assert.Equal(t, "\ntrailing text", doc.Blocks[1].Text)
}

func TestParse_ListKindChangeStartsNewBlock(t *testing.T) {
	t.Parallel()

	doc := parse.Parse("- bullet\n1. number")

	require.Len(t, doc.Blocks, 2)
	require.NotNil(t, doc.Blocks[0].List)
	assert.False(t, doc.Blocks[0].List.Ordered)
	require.NotNil(t, doc.Blocks[1].List)
	assert.True(t, doc.Blocks[1].List.Ordered)
}
