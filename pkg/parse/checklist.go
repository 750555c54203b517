package parse

import (
	"regexp"

	"github.com/notefold/notedown/pkg/ast"
)

// checklistPattern matches exactly `- [ ] text` or `- [x] text`, single
// space after the bracket included. Any other bracket content, and a bare
// marker with nothing after it, falls through to the list parser.
//
//nolint:gochecknoglobals // compiled once, read-only
var checklistPattern = regexp.MustCompile(`^- \[([ x])\] (.*)$`)

// parseChecklist consumes consecutive checklist item lines into one
// ordered checklist block.
func parseChecklist(lines []string, i int) *ast.Block {
	var tasks []ast.TaskItem

	end := i
	for j := i; j < len(lines); j++ {
		groups := checklistPattern.FindStringSubmatch(lines[j])
		if groups == nil {
			break
		}
		tasks = append(tasks, ast.TaskItem{
			Text:    groups[2],
			Checked: groups[1] == "x",
		})
		end = j
	}

	if len(tasks) == 0 {
		return nil
	}

	span := ast.Span{StartLine: i, EndLine: end}
	return ast.NewChecklist(tasks, span)
}
