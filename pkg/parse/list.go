package parse

import (
	"regexp"
	"strings"

	"github.com/notefold/notedown/pkg/ast"
)

//nolint:gochecknoglobals // compiled once, read-only
var (
	unorderedItemPattern = regexp.MustCompile(`^([ \t]*)- (.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^([ \t]*)(\d+)\. (.*)$`)
)

// flatItem is one scanned list line before nesting.
type flatItem struct {
	text   string
	indent int
}

// parseList consumes a run of list item lines of one kind. The first item
// fixes the kind for the whole run. A single blank line is tolerated as a
// separator only when the line after it is another item of the same kind;
// otherwise scanning stops without consuming the blank line.
func parseList(lines []string, i int) *ast.Block {
	first, ordered, ok := matchAnyItem(lines[i])
	if !ok {
		return nil
	}

	flat := []flatItem{first}
	end := i

	j := i + 1
	for j < len(lines) {
		if item, itemOK := matchItem(lines[j], ordered); itemOK {
			flat = append(flat, item)
			end = j
			j++
			continue
		}

		if strings.TrimSpace(lines[j]) == "" && j+1 < len(lines) {
			if _, nextOK := matchItem(lines[j+1], ordered); nextOK {
				j++
				continue
			}
		}

		break
	}

	span := ast.Span{StartLine: i, EndLine: end}
	return ast.NewList(ordered, buildTree(flat), span)
}

// matchAnyItem matches a line as either item kind, reporting which.
func matchAnyItem(line string) (flatItem, bool, bool) {
	if item, ok := matchItem(line, false); ok {
		return item, false, true
	}
	if item, ok := matchItem(line, true); ok {
		return item, true, true
	}
	return flatItem{}, false, false
}

// matchItem matches a line as an item of the given kind.
func matchItem(line string, ordered bool) (flatItem, bool) {
	if ordered {
		groups := orderedItemPattern.FindStringSubmatch(line)
		if groups == nil {
			return flatItem{}, false
		}
		return flatItem{text: groups[3], indent: indentLevel(groups[1])}, true
	}

	groups := unorderedItemPattern.FindStringSubmatch(line)
	if groups == nil {
		return flatItem{}, false
	}
	return flatItem{text: groups[2], indent: indentLevel(groups[1])}, true
}

// indentLevel derives the nesting level from leading whitespace: each tab
// counts a full level, each space half a level, summed and floored. Odd
// space counts deliberately collapse to the even level below.
func indentLevel(ws string) int {
	halves := 0
	for _, r := range ws {
		switch r {
		case '\t':
			halves += 2
		case ' ':
			halves++
		}
	}
	return halves / 2
}

// buildTree nests flat (text, indent) items with an explicit stack: for
// each item, entries at the same or deeper level are popped, then the item
// attaches to the new stack top, or becomes a root if none remains. Items
// that skip indent levels nest under their nearest shallower ancestor.
func buildTree(flat []flatItem) []*ast.ListItem {
	type entry struct {
		node  *ast.ListItem
		level int
	}

	var roots []*ast.ListItem
	var stack []entry

	for _, f := range flat {
		node := &ast.ListItem{Text: f.text, Indent: f.indent}

		for len(stack) > 0 && stack[len(stack)-1].level >= f.indent {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		}

		stack = append(stack, entry{node, f.indent})
	}

	return roots
}
