// Package parse turns a raw memo body into the ordered block sequence of
// the document model.
//
// The document scanner drives a fixed, ordered registry of block parsers
// over the source lines. Each parser either consumes one or more lines
// starting at the cursor and returns a block with its line span set, or
// declines by returning nil. Lines nothing claims accumulate into a
// paragraph buffer, so every input has a defined (possibly all-paragraph)
// parse and no input can produce an error.
package parse

import (
	"strings"

	"github.com/notefold/notedown/pkg/ast"
	"github.com/notefold/notedown/pkg/inline"
)

// blockParser attempts to consume lines starting at index i. A successful
// parse returns a block whose Span covers the consumed lines; a decline
// returns nil.
type blockParser func(lines []string, i int) *ast.Block

// registry is the fixed priority order. CodeBlock runs first so fence
// contents are never reinterpreted; Table precedes the paragraph fallback
// because it needs one line of lookahead for its separator row; Checklist
// precedes List so bracketed items are not swallowed as plain list text.
//
//nolint:gochecknoglobals // read-only dispatch table
var registry = []blockParser{
	parseCodeBlock,
	parseTable,
	parseHeading,
	parseChecklist,
	parseList,
	parseBlockquote,
	parseRule,
}

// Parse builds a fresh document from the memo body. The text is split
// strictly on \n; a literal \r is not a line separator.
func Parse(text string) *ast.Document {
	lines := strings.Split(text, "\n")
	doc := &ast.Document{}

	var buf []string
	bufStart := 0

	flush := func() {
		if len(buf) == 0 {
			return
		}
		joined := strings.Join(buf, "\n")
		if strings.TrimSpace(joined) != "" {
			span := ast.Span{StartLine: bufStart, EndLine: bufStart + len(buf) - 1}
			doc.Blocks = append(doc.Blocks, ast.NewParagraph(joined, span))
		}
		buf = nil
	}

	i := 0
	for i < len(lines) {
		block := tryParsers(lines, i)
		if block == nil {
			if len(buf) == 0 {
				bufStart = i
			}
			buf = append(buf, lines[i])
			i++
			continue
		}

		flush()
		doc.Blocks = append(doc.Blocks, block)
		i = block.Span.EndLine + 1
	}

	flush()
	return doc
}

// tryParsers runs the registry in priority order; first match wins.
func tryParsers(lines []string, i int) *ast.Block {
	for _, parser := range registry {
		if block := parser(lines, i); block != nil {
			return block
		}
	}
	return nil
}

// ParseInline returns the recognized inline spans of a free-text unit,
// sorted by start offset. Block renderers use it directly when they need
// to process the text inside a cell, item, or quote.
func ParseInline(text string) []ast.InlineMatch {
	return inline.Scan(text)
}

// Segments reassembles a free-text unit as an ordered run of literal text
// and resolved inline spans.
func Segments(text string) []ast.Segment {
	return inline.Segments(text)
}
