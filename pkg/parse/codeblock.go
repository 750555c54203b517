package parse

import (
	"strings"

	"github.com/notefold/notedown/pkg/ast"
)

const fence = "```"

// parseCodeBlock matches a fenced code block. The opening fence line may
// carry a trailing language tag; everything up to the closing fence is
// consumed verbatim. With no closing fence before end of input the parser
// declines entirely, so the opening line falls back to paragraph text.
func parseCodeBlock(lines []string, i int) *ast.Block {
	if !strings.HasPrefix(lines[i], fence) {
		return nil
	}

	language := strings.TrimSpace(lines[i][len(fence):])

	for j := i + 1; j < len(lines); j++ {
		if !strings.HasPrefix(lines[j], fence) {
			continue
		}

		content := strings.Join(lines[i+1:j], "\n")
		span := ast.Span{StartLine: i, EndLine: j}
		return ast.NewCodeBlock(language, content, span)
	}

	// Unterminated fence.
	return nil
}
