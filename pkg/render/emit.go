package render

import (
	"github.com/notefold/notedown/pkg/ast"
	"github.com/notefold/notedown/pkg/inline"
	"github.com/notefold/notedown/pkg/langdetect"
)

// MaxHeadingLevel is the deepest heading level renderers distinguish.
// Parse-time levels are unbounded; emission clamps them here.
const MaxHeadingLevel = 6

// Options configures IR emission.
type Options struct {
	// MaxHeadingLevel clamps heading levels. Zero means MaxHeadingLevel.
	MaxHeadingLevel int

	// DetectLanguage fills in a fence tag for code blocks without one.
	DetectLanguage bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxHeadingLevel: MaxHeadingLevel,
		DetectLanguage:  true,
	}
}

// Emitter maps parsed documents to the intermediate form.
type Emitter struct {
	opts Options
}

// NewEmitter creates an emitter with the given options.
func NewEmitter(opts Options) *Emitter {
	if opts.MaxHeadingLevel <= 0 {
		opts.MaxHeadingLevel = MaxHeadingLevel
	}
	return &Emitter{opts: opts}
}

// Emit resolves every free-text unit of the document and returns the IR.
// Like the parser it is total: any document yields a defined IR.
func (e *Emitter) Emit(doc *ast.Document) *Doc {
	out := &Doc{}
	if doc == nil {
		return out
	}

	for _, block := range doc.Blocks {
		out.Blocks = append(out.Blocks, e.emitBlock(block))
	}

	return out
}

func (e *Emitter) emitBlock(block *ast.Block) Block {
	emitted := Block{Kind: block.Kind, Span: block.Span}

	switch block.Kind {
	case ast.BlockHeading:
		level := block.Heading.Level
		if level > e.opts.MaxHeadingLevel {
			level = e.opts.MaxHeadingLevel
		}
		emitted.Heading = &Heading{
			Level: level,
			Text:  inline.Segments(block.Heading.Text),
		}

	case ast.BlockParagraph:
		emitted.Paragraph = &Paragraph{Text: inline.Segments(block.Text)}

	case ast.BlockBlockquote:
		emitted.Quote = &Quote{Text: inline.Segments(block.Text)}

	case ast.BlockCodeBlock:
		emitted.Code = e.emitCode(block.Code)

	case ast.BlockTable:
		emitted.Table = emitTable(block.Table)

	case ast.BlockList:
		emitted.List = &List{
			Ordered: block.List.Ordered,
			Items:   emitItems(block.List.Items),
		}

	case ast.BlockChecklist:
		tasks := make([]Task, 0, len(block.Checklist.Tasks))
		for _, task := range block.Checklist.Tasks {
			tasks = append(tasks, Task{
				Text:    inline.Segments(task.Text),
				Checked: task.Checked,
			})
		}
		emitted.Checklist = &Checklist{Tasks: tasks}

	case ast.BlockRule:
		// No payload.
	}

	return emitted
}

func (e *Emitter) emitCode(attrs *ast.CodeAttrs) *Code {
	code := &Code{Language: attrs.Language, Content: attrs.Content}
	if code.Language == "" && e.opts.DetectLanguage && attrs.Content != "" {
		code.Language = langdetect.Detect([]byte(attrs.Content))
		code.Detected = true
	}
	return code
}

func emitTable(attrs *ast.TableAttrs) *Table {
	table := &Table{Headers: make([][]ast.Segment, 0, len(attrs.Headers))}

	for _, cell := range attrs.Headers {
		table.Headers = append(table.Headers, inline.Segments(cell))
	}
	for _, row := range attrs.Rows {
		cells := make([][]ast.Segment, 0, len(row))
		for _, cell := range row {
			cells = append(cells, inline.Segments(cell))
		}
		table.Rows = append(table.Rows, cells)
	}

	return table
}

func emitItems(items []*ast.ListItem) []Item {
	emitted := make([]Item, 0, len(items))
	for i, item := range items {
		emitted = append(emitted, Item{
			Text:     inline.Segments(item.Text),
			Index:    i + 1,
			Children: emitItems(item.Children),
		})
	}
	return emitted
}
