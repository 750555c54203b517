// Package render maps the parsed document to a renderer-agnostic
// intermediate form. Every free-text unit (paragraph, heading text, table
// cell, list item, blockquote body, checklist item) is resolved into an
// ordered run of literal text and inline spans, so a concrete renderer
// only maps structure to presentation primitives.
package render

import "github.com/notefold/notedown/pkg/ast"

// Doc is the renderer-agnostic intermediate form of one memo body.
type Doc struct {
	Blocks []Block `json:"blocks"`
}

// Block is one emitted block. Kind selects which payload is populated;
// rules carry none.
type Block struct {
	Kind ast.BlockKind `json:"kind"`
	Span ast.Span      `json:"span"`

	Heading   *Heading   `json:"heading,omitempty"`
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	Quote     *Quote     `json:"quote,omitempty"`
	Code      *Code      `json:"code,omitempty"`
	Table     *Table     `json:"table,omitempty"`
	List      *List      `json:"list,omitempty"`
	Checklist *Checklist `json:"checklist,omitempty"`
}

// Heading is an emitted heading with its level clamped for presentation.
type Heading struct {
	Level int           `json:"level"`
	Text  []ast.Segment `json:"text"`
}

// Paragraph is an emitted paragraph.
type Paragraph struct {
	Text []ast.Segment `json:"text"`
}

// Quote is an emitted blockquote. Its text is resolved as one multi-line
// unit, so spans inside it may contain newlines.
type Quote struct {
	Text []ast.Segment `json:"text"`
}

// Code is an emitted code block. Detected reports that Language came from
// detection rather than the fence info string.
type Code struct {
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
	Detected bool   `json:"detected,omitempty"`
}

// Table is an emitted table with every cell resolved.
type Table struct {
	Headers [][]ast.Segment   `json:"headers"`
	Rows    [][][]ast.Segment `json:"rows"`
}

// List is an emitted list.
type List struct {
	Ordered bool   `json:"ordered"`
	Items   []Item `json:"items"`
}

// Item is an emitted list item. Index is the 1-based position among its
// siblings, used for ordered markers.
type Item struct {
	Text     []ast.Segment `json:"text"`
	Index    int           `json:"index"`
	Children []Item        `json:"children,omitempty"`
}

// Checklist is an emitted checklist.
type Checklist struct {
	Tasks []Task `json:"tasks"`
}

// Task is an emitted checklist entry.
type Task struct {
	Text    []ast.Segment `json:"text"`
	Checked bool          `json:"checked"`
}

// textUnits returns every resolved segment run of the block, in reading
// order.
func (b *Block) textUnits() [][]ast.Segment {
	switch b.Kind {
	case ast.BlockHeading:
		return [][]ast.Segment{b.Heading.Text}
	case ast.BlockParagraph:
		return [][]ast.Segment{b.Paragraph.Text}
	case ast.BlockBlockquote:
		return [][]ast.Segment{b.Quote.Text}
	case ast.BlockTable:
		units := make([][]ast.Segment, 0, len(b.Table.Headers))
		units = append(units, b.Table.Headers...)
		for _, row := range b.Table.Rows {
			units = append(units, row...)
		}
		return units
	case ast.BlockList:
		var units [][]ast.Segment
		collectItemUnits(b.List.Items, &units)
		return units
	case ast.BlockChecklist:
		units := make([][]ast.Segment, 0, len(b.Checklist.Tasks))
		for _, task := range b.Checklist.Tasks {
			units = append(units, task.Text)
		}
		return units
	default:
		return nil
	}
}

func collectItemUnits(items []Item, units *[][]ast.Segment) {
	for _, item := range items {
		*units = append(*units, item.Text)
		collectItemUnits(item.Children, units)
	}
}

// ImageRefs returns the distinct image references of the document in
// reading order. Consumers prefetch these through an image resolver before
// a synchronous render.
func (d *Doc) ImageRefs() []string {
	seen := make(map[string]bool)
	var refs []string

	for i := range d.Blocks {
		for _, unit := range d.Blocks[i].textUnits() {
			for _, seg := range unit {
				if seg.Match == nil || seg.Match.Kind != ast.InlineImage {
					continue
				}
				if seen[seg.Match.URL] {
					continue
				}
				seen[seg.Match.URL] = true
				refs = append(refs, seg.Match.URL)
			}
		}
	}

	return refs
}
