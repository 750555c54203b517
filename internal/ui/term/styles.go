// Package term renders the notedown IR to styled terminal output. It is
// one concrete consumer of the renderer-agnostic IR; the desktop shell
// maps the same IR to its own widgets.
package term

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains all styled renderers for document output.
type Styles struct {
	// Block components
	Heading       lipgloss.Style
	HeadingMarker lipgloss.Style
	QuoteBar      lipgloss.Style
	QuoteText     lipgloss.Style
	CodeText      lipgloss.Style
	CodeLanguage  lipgloss.Style
	TableHeader   lipgloss.Style
	TableBorder   lipgloss.Style
	Bullet        lipgloss.Style
	TaskDone      lipgloss.Style
	TaskOpen      lipgloss.Style
	Rule          lipgloss.Style

	// Inline spans
	Bold     lipgloss.Style
	Italic   lipgloss.Style
	Strike   lipgloss.Style
	CodeSpan lipgloss.Style
	Link     lipgloss.Style
	URL      lipgloss.Style

	// Image placeholders
	ImagePending lipgloss.Style
	ImageReady   lipgloss.Style
	ImageFailed  lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Heading:       lipgloss.NewStyle().Bold(true),
		HeadingMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		QuoteBar:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		QuoteText:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true),
		CodeText:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		CodeLanguage:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		TableHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bullet:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TaskDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TaskOpen:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Rule:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Bold:     lipgloss.NewStyle().Bold(true),
		Italic:   lipgloss.NewStyle().Italic(true),
		Strike:   lipgloss.NewStyle().Strikethrough(true),
		CodeSpan: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		URL:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		ImagePending: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		ImageReady:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ImageFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// newNoColorStyles creates styles with no formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Heading:       plain,
		HeadingMarker: plain,
		QuoteBar:      plain,
		QuoteText:     plain,
		CodeText:      plain,
		CodeLanguage:  plain,
		TableHeader:   plain,
		TableBorder:   plain,
		Bullet:        plain,
		TaskDone:      plain,
		TaskOpen:      plain,
		Rule:          plain,
		Bold:          plain,
		Italic:        plain,
		Strike:        plain,
		CodeSpan:      plain,
		Link:          plain,
		URL:           plain,
		ImagePending:  plain,
		ImageReady:    plain,
		ImageFailed:   plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// Width returns the layout width: an explicit positive width wins, then
// the terminal width when the writer is a TTY, then the fallback.
func Width(explicit int, writer io.Writer, fallback int) int {
	if explicit > 0 {
		return explicit
	}
	if f, ok := writer.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
