package imagecache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileMode is the permission mode for newly saved attachments.
const DefaultFileMode os.FileMode = 0644

// DirStore is a Store backed by a flat attachments directory, used by the
// CLI and the desktop shell. Filenames are plain names; path separators
// and traversal are rejected.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at the given directory.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Get reads a stored attachment.
func (s *DirStore) Get(ctx context.Context, filename string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get %q: %w", filename, err)
	}
	if err := validateName(filename); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("read attachment %q: %w", filename, err)
	}
	return data, nil
}

// Save writes attachment bytes atomically under a collision-free name
// derived from suggestedName and returns the final filename.
//
// The atomic write pattern: create a temp file in the target directory,
// write and sync it, set its mode, then rename onto the final name. On
// error the temp file is cleaned up and nothing partial remains visible.
func (s *DirStore) Save(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("save attachment: %w", err)
	}

	name, err := s.uniqueName(sanitizeName(suggestedName))
	if err != nil {
		return "", err
	}

	if err := writeAtomic(filepath.Join(s.dir, name), data, DefaultFileMode); err != nil {
		return "", fmt.Errorf("save attachment %q: %w", name, err)
	}

	return name, nil
}

// uniqueName appends -1, -2, ... before the extension until the name is
// unused in the directory.
func (s *DirStore) uniqueName(base string) (string, error) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := base
	for n := 1; ; n++ {
		_, err := os.Stat(filepath.Join(s.dir, name))
		if errors.Is(err, os.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %q: %w", name, err)
		}
		name = fmt.Sprintf("%s-%d%s", stem, n, ext)
	}
}

// sanitizeName reduces a suggested name to a safe flat filename.
func sanitizeName(suggested string) string {
	name := filepath.Base(strings.TrimSpace(suggested))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "image"
	}
	return name
}

// validateName rejects filenames that would escape the directory.
func validateName(filename string) error {
	if filename == "" {
		return errors.New("empty attachment filename")
	}
	if strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid attachment filename %q", filename)
	}
	return nil
}

// writeAtomic writes content via a same-directory temp file and rename.
func writeAtomic(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
