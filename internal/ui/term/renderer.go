package term

import (
	"context"
	"fmt"
	"strings"

	"github.com/notefold/notedown/pkg/ast"
	"github.com/notefold/notedown/pkg/imagecache"
	"github.com/notefold/notedown/pkg/render"
)

// DefaultWidth is the layout width used when the output is not a TTY.
const DefaultWidth = 80

// Options configures a Renderer.
type Options struct {
	// Width is the layout width in cells for rules and tables.
	Width int

	// ColorEnabled selects styled or plain output.
	ColorEnabled bool

	// Resolver resolves image references. Nil renders placeholders only.
	Resolver *imagecache.Resolver

	// CheckedGlyph and UncheckedGlyph render checklist state.
	CheckedGlyph   string
	UncheckedGlyph string
}

// Renderer maps the IR to ANSI terminal output.
type Renderer struct {
	styles   *Styles
	width    int
	resolver *imagecache.Resolver
	checked  string
	open     string
}

// New creates a renderer.
func New(opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	checked := opts.CheckedGlyph
	if checked == "" {
		checked = "[x]"
	}
	open := opts.UncheckedGlyph
	if open == "" {
		open = "[ ]"
	}
	return &Renderer{
		styles:   NewStyles(opts.ColorEnabled),
		width:    width,
		resolver: opts.Resolver,
		checked:  checked,
		open:     open,
	}
}

// Render returns the document as terminal text. Blocks are separated by
// one blank line. The context is passed through to image lookups.
func (r *Renderer) Render(ctx context.Context, doc *render.Doc) string {
	if doc == nil || len(doc.Blocks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(doc.Blocks))
	for i := range doc.Blocks {
		parts = append(parts, r.renderBlock(ctx, &doc.Blocks[i]))
	}

	return strings.Join(parts, "\n\n") + "\n"
}

func (r *Renderer) renderBlock(ctx context.Context, block *render.Block) string {
	switch block.Kind {
	case ast.BlockHeading:
		marker := r.styles.HeadingMarker.Render(strings.Repeat("#", block.Heading.Level))
		return marker + " " + r.styles.Heading.Render(r.plainInline(ctx, block.Heading.Text))

	case ast.BlockParagraph:
		return r.renderInline(ctx, block.Paragraph.Text)

	case ast.BlockBlockquote:
		return r.renderQuote(ctx, block.Quote)

	case ast.BlockCodeBlock:
		return r.renderCode(block.Code)

	case ast.BlockTable:
		return r.renderTable(ctx, block.Table)

	case ast.BlockList:
		var lines []string
		r.renderItems(ctx, block.List, block.List.Items, 0, &lines)
		return strings.Join(lines, "\n")

	case ast.BlockChecklist:
		return r.renderChecklist(ctx, block.Checklist)

	case ast.BlockRule:
		return r.styles.Rule.Render(strings.Repeat("─", r.width))

	default:
		return ""
	}
}

func (r *Renderer) renderQuote(ctx context.Context, quote *render.Quote) string {
	body := r.renderInline(ctx, quote.Text)
	bar := r.styles.QuoteBar.Render("│")

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = bar + " " + r.styles.QuoteText.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderCode(code *render.Code) string {
	var lines []string
	if code.Language != "" {
		lines = append(lines, r.styles.CodeLanguage.Render(code.Language))
	}
	for _, line := range strings.Split(code.Content, "\n") {
		lines = append(lines, "    "+r.styles.CodeText.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderItems(ctx context.Context, list *render.List, items []render.Item, depth int, out *[]string) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		marker := "•"
		if list.Ordered {
			marker = fmt.Sprintf("%d.", item.Index)
		}
		line := indent + r.styles.Bullet.Render(marker) + " " + r.renderInline(ctx, item.Text)
		*out = append(*out, line)
		r.renderItems(ctx, list, item.Children, depth+1, out)
	}
}

func (r *Renderer) renderChecklist(ctx context.Context, checklist *render.Checklist) string {
	lines := make([]string, 0, len(checklist.Tasks))
	for _, task := range checklist.Tasks {
		glyph := r.styles.TaskOpen.Render(r.open)
		if task.Checked {
			glyph = r.styles.TaskDone.Render(r.checked)
		}
		lines = append(lines, glyph+" "+r.renderInline(ctx, task.Text))
	}
	return strings.Join(lines, "\n")
}

// renderInline assembles a resolved segment run into styled text.
func (r *Renderer) renderInline(ctx context.Context, segments []ast.Segment) string {
	var builder strings.Builder
	for _, seg := range segments {
		if seg.Match == nil {
			builder.WriteString(seg.Literal)
			continue
		}
		builder.WriteString(r.renderMatch(ctx, seg.Match))
	}
	return builder.String()
}

// plainInline assembles a segment run without per-span styling, for
// contexts like headings where an enclosing style covers the whole line.
func (r *Renderer) plainInline(ctx context.Context, segments []ast.Segment) string {
	var builder strings.Builder
	for _, seg := range segments {
		if seg.Match == nil {
			builder.WriteString(seg.Literal)
			continue
		}
		if seg.Match.Kind == ast.InlineImage {
			builder.WriteString(r.renderImage(ctx, seg.Match))
			continue
		}
		builder.WriteString(seg.Match.Text)
	}
	return builder.String()
}

func (r *Renderer) renderMatch(ctx context.Context, match *ast.InlineMatch) string {
	switch match.Kind {
	case ast.InlineBold:
		return r.styles.Bold.Render(match.Text)
	case ast.InlineItalic:
		return r.styles.Italic.Render(match.Text)
	case ast.InlineStrikethrough:
		return r.styles.Strike.Render(match.Text)
	case ast.InlineCode:
		return r.styles.CodeSpan.Render(match.Text)
	case ast.InlineLink:
		return r.renderLink(match)
	case ast.InlineImage:
		return r.renderImage(ctx, match)
	default:
		return match.Text
	}
}

func (r *Renderer) renderLink(match *ast.InlineMatch) string {
	text := r.styles.Link.Render(match.Text)
	if match.URL == match.Text || match.URL == "" {
		return text
	}
	return text + " " + r.styles.URL.Render("("+match.URL+")")
}

// renderImage shows the resolution state of an image reference. A failed
// or unresolvable reference renders a visible placeholder carrying the alt
// text; it never interrupts the rest of the document.
func (r *Renderer) renderImage(ctx context.Context, match *ast.InlineMatch) string {
	alt := match.Text
	if alt == "" {
		alt = "image"
	}

	if r.resolver == nil {
		return r.styles.ImagePending.Render("[" + alt + "]")
	}

	img := r.resolver.Lookup(ctx, match.URL)
	switch img.State {
	case imagecache.StateReady:
		return r.styles.ImageReady.Render(fmt.Sprintf("[%s, %s]", alt, formatSize(len(img.Data))))
	case imagecache.StateFailed:
		return r.styles.ImageFailed.Render("[" + alt + ": unavailable]")
	default:
		return r.styles.ImagePending.Render("[" + alt + ": loading…]")
	}
}

// formatSize renders a byte count for the image placeholder.
func formatSize(n int) string {
	const kb = 1024
	switch {
	case n >= kb*kb:
		return fmt.Sprintf("%.1f MB", float64(n)/(kb*kb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
