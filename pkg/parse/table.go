package parse

import (
	"strings"

	"github.com/notefold/notedown/pkg/ast"
)

// parseTable matches a pipe table. A line qualifies as a header candidate
// if, after trimming, it starts and ends with '|'. It becomes a table only
// when the next line is a valid separator row; otherwise the candidate is
// not consumed and falls through to paragraph handling.
func parseTable(lines []string, i int) *ast.Block {
	if !isPipeRow(lines[i]) {
		return nil
	}
	if i+1 >= len(lines) || !isSeparatorRow(lines[i+1]) {
		return nil
	}

	headers := splitRow(lines[i])

	var rows [][]string
	end := i + 1
	for j := i + 2; j < len(lines); j++ {
		if !isPipeRow(lines[j]) {
			break
		}
		rows = append(rows, splitRow(lines[j]))
		end = j
	}

	span := ast.Span{StartLine: i, EndLine: end}
	return ast.NewTable(headers, rows, span)
}

// isPipeRow reports whether the trimmed line is pipe-bounded.
func isPipeRow(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && strings.HasPrefix(t, "|") && strings.HasSuffix(t, "|")
}

// isSeparatorRow reports whether the trimmed line is a header separator:
// optional outer pipes around |-separated cells made only of ':' and '-'.
func isSeparatorRow(line string) bool {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	if t == "" {
		return false
	}

	for _, cell := range strings.Split(t, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return false
		}
		for _, r := range cell {
			if r != '-' && r != ':' {
				return false
			}
		}
	}

	return true
}

// splitRow splits a pipe-bounded line into trimmed cells, stripping the
// outer pipes first.
func splitRow(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")

	cells := strings.Split(t, "|")
	for idx := range cells {
		cells[idx] = strings.TrimSpace(cells[idx])
	}

	return cells
}
