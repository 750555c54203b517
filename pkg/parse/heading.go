package parse

import (
	"strings"

	"github.com/notefold/notedown/pkg/ast"
)

// parseHeading matches a single line whose first character is '#'. The
// level is the count of leading '#' characters, unbounded here; render-time
// consumers clamp it to 6. The text after the markers may be empty.
func parseHeading(lines []string, i int) *ast.Block {
	line := lines[i]
	if !strings.HasPrefix(line, "#") {
		return nil
	}

	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}

	text := strings.TrimSpace(line[level:])
	span := ast.Span{StartLine: i, EndLine: i}

	return ast.NewHeading(level, text, span)
}
