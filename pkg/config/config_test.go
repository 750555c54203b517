package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notefold/notedown/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, 0, cfg.Width)
	assert.True(t, cfg.DetectLanguage)
	assert.Equal(t, 6, cfg.MaxHeadingLevel)
	assert.Equal(t, "[x]", cfg.CheckedGlyph)
	assert.Equal(t, "[ ]", cfg.UncheckedGlyph)
	assert.Empty(t, cfg.AssetsDir)
}

func TestFromYAML_SparseFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("width: 100\n"))

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, "auto", cfg.Color)
	assert.True(t, cfg.DetectLanguage)
	assert.Equal(t, 6, cfg.MaxHeadingLevel)
	assert.Equal(t, "[x]", cfg.CheckedGlyph)
}

func TestFromYAML_ExplicitFalseOverridesDefault(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("detect_language: false\n"))

	require.NoError(t, err)
	assert.False(t, cfg.DetectLanguage)
}

func TestFromYAML_FullFile(t *testing.T) {
	t.Parallel()

	input := `
color: never
width: 72
detect_language: false
max_heading_level: 3
checked_glyph: "✓"
unchecked_glyph: "✗"
assets_dir: /srv/assets
`
	cfg, err := config.FromYAML([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 72, cfg.Width)
	assert.False(t, cfg.DetectLanguage)
	assert.Equal(t, 3, cfg.MaxHeadingLevel)
	assert.Equal(t, "✓", cfg.CheckedGlyph)
	assert.Equal(t, "✗", cfg.UncheckedGlyph)
	assert.Equal(t, "/srv/assets", cfg.AssetsDir)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("width: [not a number"))
	assert.Error(t, err)
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.Default()
	original.Width = 90

	data, err := original.ToYAML()
	require.NoError(t, err)

	restored, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestFindProjectConfig_WalksUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	configPath := filepath.Join(root, ".notedown.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("width: 50\n"), 0644))

	assert.Equal(t, configPath, config.FindProjectConfig(nested))
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo := filepath.Join(root, "repo")
	nested := filepath.Join(repo, "notes")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
	require.NoError(t, os.MkdirAll(nested, 0755))

	// Config above the VCS root must not be picked up.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".notedown.yml"), []byte("width: 50\n"), 0644))

	assert.Empty(t, config.FindProjectConfig(nested))
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("width: 33\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".notedown.yml"), []byte("width: 99\n"), 0644))

	cfg, err := config.Load(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.Width)
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

	cfg, err := config.Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"), ".")
	assert.Error(t, err)
}
