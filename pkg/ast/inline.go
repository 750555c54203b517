package ast

// InlineKind classifies the type of a recognized inline span.
type InlineKind uint8

// Inline kinds, one per span category the inline scanners recognize.
const (
	InlineImage InlineKind = iota
	InlineLink
	InlineBold
	InlineItalic
	InlineStrikethrough
	InlineCode
)

// String returns a human-readable name for the inline kind.
func (k InlineKind) String() string {
	switch k {
	case InlineImage:
		return "image"
	case InlineLink:
		return "link"
	case InlineBold:
		return "bold"
	case InlineItalic:
		return "italic"
	case InlineStrikethrough:
		return "strikethrough"
	case InlineCode:
		return "code"
	default:
		return "unknown"
	}
}

// InlineMatch is a recognized sub-span within a free-text unit.
// Start and End are byte offsets into the original text unit, both
// inclusive: the matched source is text[Start : End+1].
type InlineMatch struct {
	// Kind identifies the span category.
	Kind InlineKind `json:"kind"`

	// Text is the payload: alt text for images, display text for links,
	// and the inner text for emphasis and code spans.
	Text string `json:"text"`

	// URL is the destination for links and the scheme-qualified reference
	// for images. Empty for other kinds.
	URL string `json:"url,omitempty"`

	// Start is the inclusive byte offset where the match begins.
	Start int `json:"start"`

	// End is the inclusive byte offset of the last matched byte.
	End int `json:"end"`
}

// Len returns the matched source length in bytes.
func (m InlineMatch) Len() int {
	return m.End - m.Start + 1
}

// Overlaps returns true if the two matches share at least one byte.
func (m InlineMatch) Overlaps(o InlineMatch) bool {
	return m.Start <= o.End && o.Start <= m.End
}

// Contains returns true if o lies fully inside m.
func (m InlineMatch) Contains(o InlineMatch) bool {
	return m.Start <= o.Start && o.End <= m.End
}

// Segment is one element of a reassembled text unit: either a literal
// run of text or a resolved inline match, never both.
type Segment struct {
	// Literal is the plain text run. Empty when Match is set.
	Literal string `json:"literal,omitempty"`

	// Match is the resolved inline span. Nil for literal segments.
	Match *InlineMatch `json:"match,omitempty"`
}

// IsLiteral returns true if this segment carries plain text.
func (s Segment) IsLiteral() bool {
	return s.Match == nil
}
