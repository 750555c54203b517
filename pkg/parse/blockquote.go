package parse

import (
	"strings"

	"github.com/notefold/notedown/pkg/ast"
)

const quotePrefix = "> "

// parseBlockquote consumes consecutive quoted lines, strips the two-byte
// prefix from each, and joins them into one multi-line payload. The joined
// text is fed to the inline pipeline as a single unit, so emphasis and
// links may span quoted lines.
func parseBlockquote(lines []string, i int) *ast.Block {
	if !strings.HasPrefix(lines[i], quotePrefix) {
		return nil
	}

	var body []string
	end := i
	for j := i; j < len(lines); j++ {
		if !strings.HasPrefix(lines[j], quotePrefix) {
			break
		}
		body = append(body, lines[j][len(quotePrefix):])
		end = j
	}

	span := ast.Span{StartLine: i, EndLine: end}
	return ast.NewBlockquote(strings.Join(body, "\n"), span)
}
