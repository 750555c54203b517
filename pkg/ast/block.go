// Package ast provides the document model produced by the notedown engine.
// It defines the block-level node variants, the nested list-item tree, and
// the inline span types shared by the parser and the render IR emitter.
package ast

// BlockKind classifies the type of a block-level node.
type BlockKind uint8

// Block kinds, one per structural unit a memo body can contain.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockList
	BlockChecklist
	BlockBlockquote
	BlockCodeBlock
	BlockTable
	BlockRule
)

// String returns a human-readable name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockList:
		return "list"
	case BlockChecklist:
		return "checklist"
	case BlockBlockquote:
		return "blockquote"
	case BlockCodeBlock:
		return "code_block"
	case BlockTable:
		return "table"
	case BlockRule:
		return "rule"
	default:
		return "unknown"
	}
}

// Span is an inclusive 0-based line range within the source text.
type Span struct {
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
}

// Lines returns the number of source lines the span covers.
func (s Span) Lines() int {
	return s.EndLine - s.StartLine + 1
}

// Contains returns true if the given 0-based line falls inside the span.
func (s Span) Contains(line int) bool {
	return line >= s.StartLine && line <= s.EndLine
}

// Block represents a single block-level node.
// Kind selects which attribute set is populated; the others are nil.
type Block struct {
	// Kind identifies what type of block this is.
	Kind BlockKind `json:"kind"`

	// Span is the inclusive source line range this block was parsed from.
	Span Span `json:"span"`

	// Text is the free-text payload for Paragraph and Blockquote blocks.
	// For Blockquote it may span multiple lines joined with \n.
	Text string `json:"text,omitempty"`

	// Heading holds attributes for BlockHeading.
	Heading *HeadingAttrs `json:"heading,omitempty"`

	// Code holds attributes for BlockCodeBlock.
	Code *CodeAttrs `json:"code,omitempty"`

	// Table holds attributes for BlockTable.
	Table *TableAttrs `json:"table,omitempty"`

	// List holds attributes for BlockList.
	List *ListAttrs `json:"list,omitempty"`

	// Checklist holds attributes for BlockChecklist.
	Checklist *ChecklistAttrs `json:"checklist,omitempty"`
}

// HeadingAttrs holds attributes for heading blocks.
type HeadingAttrs struct {
	// Level is the count of leading '#' characters. It is unbounded at
	// parse time; render-time consumers clamp it to 6.
	Level int `json:"level"`

	// Text is the heading text after markers and whitespace, trimmed.
	// May be empty.
	Text string `json:"text"`
}

// CodeAttrs holds attributes for fenced code blocks.
type CodeAttrs struct {
	// Language is the info string trailing the opening fence. May be empty.
	Language string `json:"language,omitempty"`

	// Content is the verbatim fence body, lines joined with \n,
	// excluding the fence lines themselves.
	Content string `json:"content"`
}

// TableAttrs holds attributes for table blocks.
type TableAttrs struct {
	// Headers are the trimmed cells of the header row.
	Headers []string `json:"headers"`

	// Rows are the trimmed cells of each body row.
	Rows [][]string `json:"rows"`
}

// ListAttrs holds attributes for list blocks.
type ListAttrs struct {
	// Ordered is true for numbered lists. The first item scanned fixes
	// the kind for the whole run.
	Ordered bool `json:"ordered"`

	// Items are the root-level items of the nested item tree.
	Items []*ListItem `json:"items"`
}

// ListItem is a single list entry with its nested children.
type ListItem struct {
	// Text is the item payload after the marker.
	Text string `json:"text"`

	// Indent is the nesting level derived from leading whitespace:
	// each tab counts 1, each space 0.5, summed and floored.
	Indent int `json:"indent"`

	// Children are the items scanned after this one with strictly
	// greater indent, up to the next item at this indent or shallower.
	Children []*ListItem `json:"children,omitempty"`
}

// ChecklistAttrs holds attributes for checklist blocks.
type ChecklistAttrs struct {
	Tasks []TaskItem `json:"tasks"`
}

// TaskItem is a single checklist entry.
type TaskItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Document is the ordered block sequence produced by one parse.
// It is rebuilt from scratch on every content change; no tree state is
// carried between parses.
type Document struct {
	Blocks []*Block `json:"blocks"`
}

// NewParagraph creates a paragraph block covering the given span.
func NewParagraph(text string, span Span) *Block {
	return &Block{Kind: BlockParagraph, Span: span, Text: text}
}

// NewHeading creates a heading block. Level is not clamped here.
func NewHeading(level int, text string, span Span) *Block {
	return &Block{Kind: BlockHeading, Span: span, Heading: &HeadingAttrs{Level: level, Text: text}}
}

// NewBlockquote creates a blockquote block. Text may contain newlines.
func NewBlockquote(text string, span Span) *Block {
	return &Block{Kind: BlockBlockquote, Span: span, Text: text}
}

// NewCodeBlock creates a fenced code block.
func NewCodeBlock(language, content string, span Span) *Block {
	return &Block{Kind: BlockCodeBlock, Span: span, Code: &CodeAttrs{Language: language, Content: content}}
}

// NewTable creates a table block.
func NewTable(headers []string, rows [][]string, span Span) *Block {
	return &Block{Kind: BlockTable, Span: span, Table: &TableAttrs{Headers: headers, Rows: rows}}
}

// NewList creates a list block from an already-nested item tree.
func NewList(ordered bool, items []*ListItem, span Span) *Block {
	return &Block{Kind: BlockList, Span: span, List: &ListAttrs{Ordered: ordered, Items: items}}
}

// NewChecklist creates a checklist block.
func NewChecklist(tasks []TaskItem, span Span) *Block {
	return &Block{Kind: BlockChecklist, Span: span, Checklist: &ChecklistAttrs{Tasks: tasks}}
}

// NewRule creates a horizontal rule block.
func NewRule(span Span) *Block {
	return &Block{Kind: BlockRule, Span: span}
}
