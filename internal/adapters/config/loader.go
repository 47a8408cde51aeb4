// Package config provides the optional twin.yaml defaults loader.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads twin.yaml, walking up from the working directory like a
// project file. A missing file is not an error: all defaults are zero.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds and parses the nearest twin.yaml above cwd. When no file
// exists it returns an empty Twinfile and no error.
func (l *Loader) Load(cwd string) (*Twinfile, error) {
	path, found := l.find(cwd)
	if !found {
		return &Twinfile{}, nil
	}

	//nolint:gosec // Path is discovered under the caller's working directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Twinfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &file, nil
}

func (l *Loader) find(cwd string) (string, bool) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.TwinFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		} else if !errors.Is(err, iofs.ErrNotExist) {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
