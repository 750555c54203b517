package inline

import (
	"regexp"

	"github.com/notefold/notedown/pkg/ast"
)

//nolint:gochecknoglobals // compiled once, read-only
var (
	// markdownLinkPattern matches [text](url). The leading byte is checked
	// separately so image syntax is left to the image scanner.
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]*)\)`)

	// imageSyntaxPattern matches any image-shaped span regardless of
	// scheme. Used only as a suppression zone for bare autolinks.
	imageSyntaxPattern = regexp.MustCompile(`!\[[^\]]*\]\([^)\s]*\)`)

	// autolinkPattern matches bare URLs pasted into prose.
	autolinkPattern = regexp.MustCompile(`(?:https?://|ftp://|www\.)[^\s<>()]+`)
)

// scanLinks returns all link spans in the text: markdown [text](url) links
// plus bare autolinks. An autolink whose start offset falls inside an
// already-found markdown link or image span is suppressed, so a URL used as
// link destination is not matched a second time.
func scanLinks(text string) []ast.InlineMatch {
	var matches []ast.InlineMatch
	var zones []ast.InlineMatch

	for _, loc := range markdownLinkPattern.FindAllStringSubmatchIndex(text, -1) {
		span := ast.InlineMatch{Start: loc[0], End: loc[1] - 1}
		if loc[0] > 0 && text[loc[0]-1] == '!' {
			// Image syntax. Not a link, but still a suppression zone.
			span.Start--
			zones = append(zones, span)
			continue
		}
		zones = append(zones, span)
		matches = append(matches, ast.InlineMatch{
			Kind:  ast.InlineLink,
			Text:  text[loc[2]:loc[3]],
			URL:   text[loc[4]:loc[5]],
			Start: loc[0],
			End:   loc[1] - 1,
		})
	}

	for _, loc := range imageSyntaxPattern.FindAllStringIndex(text, -1) {
		zones = append(zones, ast.InlineMatch{Start: loc[0], End: loc[1] - 1})
	}

	for _, loc := range autolinkPattern.FindAllStringIndex(text, -1) {
		if insideAny(loc[0], zones) {
			continue
		}
		url := text[loc[0]:loc[1]]
		matches = append(matches, ast.InlineMatch{
			Kind:  ast.InlineLink,
			Text:  url,
			URL:   url,
			Start: loc[0],
			End:   loc[1] - 1,
		})
	}

	return matches
}

// insideAny returns true if the offset falls inside any of the spans.
func insideAny(offset int, spans []ast.InlineMatch) bool {
	for _, s := range spans {
		if offset >= s.Start && offset <= s.End {
			return true
		}
	}
	return false
}
