package parse

import (
	"regexp"

	"github.com/notefold/notedown/pkg/ast"
)

// rulePattern matches a line that is entirely three-or-more dashes,
// asterisks, or underscores with no other characters.
//
//nolint:gochecknoglobals // compiled once, read-only
var rulePattern = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)

// parseRule matches a horizontal rule. Zero payload, single line.
func parseRule(lines []string, i int) *ast.Block {
	if !rulePattern.MatchString(lines[i]) {
		return nil
	}
	return ast.NewRule(ast.Span{StartLine: i, EndLine: i})
}
