package inline

import (
	"sort"

	"github.com/notefold/notedown/pkg/ast"
)

// precedence orders inline categories for cross-category overlap
// resolution. Inline code always wins inside its own span; images beat
// links, links beat emphasis. Within a category the scanners have already
// suppressed their own overlaps.
func precedence(kind ast.InlineKind) int {
	switch kind {
	case ast.InlineCode:
		return 0
	case ast.InlineImage:
		return 1
	case ast.InlineLink:
		return 2
	case ast.InlineBold:
		return 3
	case ast.InlineStrikethrough:
		return 4
	case ast.InlineItalic:
		return 5
	default:
		return 6
	}
}

// Merge combines scanner outputs into one ordered sequence. Candidates are
// considered in precedence order (position breaks ties) and a candidate
// overlapping any already-kept match is dropped. The survivors are returned
// sorted by start offset.
func Merge(matches []ast.InlineMatch) []ast.InlineMatch {
	if len(matches) == 0 {
		return nil
	}

	candidates := make([]ast.InlineMatch, len(matches))
	copy(candidates, matches)

	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := precedence(candidates[i].Kind), precedence(candidates[j].Kind)
		if pi != pj {
			return pi < pj
		}
		return candidates[i].Start < candidates[j].Start
	})

	kept := make([]ast.InlineMatch, 0, len(candidates))
	for _, cand := range candidates {
		if overlapsAny(cand, kept) {
			continue
		}
		kept = append(kept, cand)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Start < kept[j].Start
	})

	return kept
}

// overlapsAny returns true if m overlaps any of the spans.
func overlapsAny(m ast.InlineMatch, spans []ast.InlineMatch) bool {
	for _, s := range spans {
		if m.Overlaps(s) {
			return true
		}
	}
	return false
}
