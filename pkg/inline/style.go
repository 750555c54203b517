package inline

import (
	"regexp"

	"github.com/notefold/notedown/pkg/ast"
)

// Style patterns. Bold and strikethrough use (?s) because a blockquote body
// is scanned as one multi-line unit and emphasis may span quoted lines.
//
//nolint:gochecknoglobals // compiled once, read-only
var (
	boldPattern   = regexp.MustCompile(`(?s)\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)
	strikePattern = regexp.MustCompile(`(?s)~~(.+?)~~`)
	codePattern   = regexp.MustCompile("`([^`\n]+)`")
)

// scanStyles returns all emphasis and code spans in the text. The italic
// pass runs against a copy with the bold spans blanked out, so a bold
// delimiter asterisk can never pair with a later lone asterisk and italics
// nested inside bold are not matched.
func scanStyles(text string) []ast.InlineMatch {
	var matches []ast.InlineMatch

	bold := scanPattern(text, boldPattern, ast.InlineBold)
	matches = append(matches, bold...)
	matches = append(matches, scanItalics(text, bold)...)
	matches = append(matches, scanPattern(text, strikePattern, ast.InlineStrikethrough)...)
	matches = append(matches, scanPattern(text, codePattern, ast.InlineCode)...)

	return matches
}

// scanItalics matches single-asterisk emphasis outside the bold spans.
// Masking keeps offsets stable, so the inner text is sliced from the
// original string.
func scanItalics(text string, bold []ast.InlineMatch) []ast.InlineMatch {
	source := text
	if len(bold) > 0 {
		masked := []byte(text)
		for _, b := range bold {
			for i := b.Start; i <= b.End; i++ {
				masked[i] = ' '
			}
		}
		source = string(masked)
	}

	locs := italicPattern.FindAllStringSubmatchIndex(source, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]ast.InlineMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, ast.InlineMatch{
			Kind:  ast.InlineItalic,
			Text:  text[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1] - 1,
		})
	}

	return matches
}

// scanPattern collects matches of a single delimiter pattern whose first
// capture group is the inner text.
func scanPattern(text string, pattern *regexp.Regexp, kind ast.InlineKind) []ast.InlineMatch {
	locs := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]ast.InlineMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, ast.InlineMatch{
			Kind:  kind,
			Text:  text[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1] - 1,
		})
	}

	return matches
}
