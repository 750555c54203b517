package inline

import (
	"regexp"

	"github.com/notefold/notedown/pkg/ast"
)

// Image references use app pseudo-schemes: image:// names a stored
// attachment resolved through the storage collaborator, cache:// names an
// ephemeral paste/drop buffer entry that has not been persisted yet.
//
//nolint:gochecknoglobals // compiled once, read-only
var imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(((?:image|cache)://[^)\s]+)\)`)

// scanImages returns all image spans in the text. Matches found by a single
// regexp pass are non-overlapping by construction, so the scanner needs no
// further self-suppression.
func scanImages(text string) []ast.InlineMatch {
	locs := imagePattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]ast.InlineMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, ast.InlineMatch{
			Kind:  ast.InlineImage,
			Text:  text[loc[2]:loc[3]],
			URL:   text[loc[4]:loc[5]],
			Start: loc[0],
			End:   loc[1] - 1,
		})
	}

	return matches
}
