package term

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/notefold/notedown/pkg/render"
)

// renderTable lays out a table with padded columns and a header rule.
// Column widths come from the widest rendered cell; lipgloss.Width ignores
// ANSI sequences so styled cells measure correctly.
func (r *Renderer) renderTable(ctx context.Context, table *render.Table) string {
	header := make([]string, len(table.Headers))
	for i, cell := range table.Headers {
		header[i] = r.styles.TableHeader.Render(r.renderInline(ctx, cell))
	}

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = r.renderInline(ctx, cell)
		}
	}

	widths := columnWidths(header, rows)

	var builder strings.Builder
	builder.WriteString(r.formatRow(header, widths))
	builder.WriteString("\n")
	builder.WriteString(r.formatSeparator(widths))
	for _, row := range rows {
		builder.WriteString("\n")
		builder.WriteString(r.formatRow(row, widths))
	}

	return builder.String()
}

// columnWidths returns the display width of each column.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = lipgloss.Width(cell)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// formatRow joins padded cells with styled column separators.
func (r *Renderer) formatRow(cells []string, widths []int) string {
	separator := r.styles.TableBorder.Render("│")

	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", width-lipgloss.Width(cell))
	}

	return strings.Join(padded, " "+separator+" ")
}

// formatSeparator draws the rule between header and body.
func (r *Renderer) formatSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width)
	}
	return r.styles.TableBorder.Render(strings.Join(parts, "─┼─"))
}
