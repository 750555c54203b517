// Package inline recognizes styled spans inside a free-text unit.
//
// Three scanners (image, link, style) each scan the full text independently
// and self-suppress overlaps within their own category. Their outputs are
// merged into one position-sorted, cross-category-consistent sequence, and
// Segments reassembles the original text as an ordered run of literal text
// and resolved spans.
//
// No scanner ever fails: text that matches nothing comes back as a single
// literal segment.
package inline

import "github.com/notefold/notedown/pkg/ast"

// Scan returns every recognized inline span of the text, sorted by start
// offset, with cross-category overlaps already resolved (see Merge).
func Scan(text string) []ast.InlineMatch {
	if text == "" {
		return nil
	}

	var matches []ast.InlineMatch
	matches = append(matches, scanImages(text)...)
	matches = append(matches, scanLinks(text)...)
	matches = append(matches, scanStyles(text)...)

	return Merge(matches)
}

// Segments splits the text into an ordered run of literal segments and
// resolved inline spans. Literal segments are sliced from the original
// string by offset, so no substring of the input can collide with an
// internal marker. Concatenating the segment sources yields the input
// exactly.
func Segments(text string) []ast.Segment {
	matches := Scan(text)
	if len(matches) == 0 {
		if text == "" {
			return nil
		}
		return []ast.Segment{{Literal: text}}
	}

	segments := make([]ast.Segment, 0, len(matches)*2+1)
	cursor := 0

	for i := range matches {
		m := matches[i]
		if m.Start > cursor {
			segments = append(segments, ast.Segment{Literal: text[cursor:m.Start]})
		}
		segments = append(segments, ast.Segment{Match: &matches[i]})
		cursor = m.End + 1
	}

	if cursor < len(text) {
		segments = append(segments, ast.Segment{Literal: text[cursor:]})
	}

	return segments
}
