package config

import (
	"os"
	"path/filepath"
)

// configFileNames are the project config names we search for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".notedown.yml",
	".notedown.yaml",
	"notedown.yml",
	"notedown.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root; the upward
// search stops after checking the directory containing one.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindProjectConfig searches upward from startDir for a project config
// file, stopping at a VCS root or the filesystem root. Returns an empty
// string when none exists.
func FindProjectConfig(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load resolves the effective configuration: an explicit path wins, then a
// discovered project file, then the defaults.
func Load(explicitPath, workDir string) (*Config, error) {
	if explicitPath != "" {
		return LoadFile(explicitPath)
	}

	if found := FindProjectConfig(workDir); found != "" {
		return LoadFile(found)
	}

	return Default(), nil
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
