// Package config holds the engine and renderer options loaded from a
// project .notedown.yml file and overridden by CLI flags.
package config

// Config holds notedown options.
type Config struct {
	// Color controls ANSI output: auto, always, never.
	Color string `yaml:"color"`

	// Width is the wrap/layout width in cells. Zero means the terminal
	// width, falling back to a default when not a TTY.
	Width int `yaml:"width"`

	// DetectLanguage fills in a fence tag for untagged code blocks.
	DetectLanguage bool `yaml:"detect_language"`

	// MaxHeadingLevel clamps heading levels at render time.
	MaxHeadingLevel int `yaml:"max_heading_level"`

	// CheckedGlyph and UncheckedGlyph render checklist state.
	CheckedGlyph   string `yaml:"checked_glyph"`
	UncheckedGlyph string `yaml:"unchecked_glyph"`

	// AssetsDir is the attachments directory resolving image:// names.
	// Empty disables image resolution; references render as placeholders.
	AssetsDir string `yaml:"assets_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:           "auto",
		Width:           0,
		DetectLanguage:  true,
		MaxHeadingLevel: 6,
		CheckedGlyph:    "[x]",
		UncheckedGlyph:  "[ ]",
	}
}

// normalize fills zero values with defaults after an unmarshal, so a
// sparse config file only overrides what it mentions.
func (c *Config) normalize() {
	defaults := Default()
	if c.Color == "" {
		c.Color = defaults.Color
	}
	if c.MaxHeadingLevel <= 0 {
		c.MaxHeadingLevel = defaults.MaxHeadingLevel
	}
	if c.CheckedGlyph == "" {
		c.CheckedGlyph = defaults.CheckedGlyph
	}
	if c.UncheckedGlyph == "" {
		c.UncheckedGlyph = defaults.UncheckedGlyph
	}
}
