// Package config holds the configuration plumbing for pulselog: the
// environment settings read at startup and the file source polled for
// live level changes.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissing is returned by Load when the document disappeared after Exists.
	ErrMissing = errors.New("config: source missing")
	// ErrMalformed is returned by Load when the document does not parse.
	ErrMalformed = errors.New("config: malformed document")
)

// FileSource reads YAML (or JSON) documents from a filesystem.
type FileSource struct {
	fs afero.Fs
}

// NewFileSource returns a FileSource over fsys; nil means the OS filesystem.
func NewFileSource(fsys afero.Fs) *FileSource {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileSource{fs: fsys}
}

// Exists reports whether path names an existing regular file.
func (s *FileSource) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := s.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads and parses path into a mapping. An empty document yields an
// empty, non-nil map.
func (s *FileSource) Load(path string) (map[string]any, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	out := map[string]any{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
