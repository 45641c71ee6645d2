// Package config provides the configuration loader for cdeps.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tarhses/cdeps/internal/core/domain"
	"github.com/tarhses/cdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a FileConfigLoader reading the default cdeps.yaml.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		Filename: "cdeps.yaml",
		Logger:   logger,
	}
}

// Load reads the configuration from the given working directory. A missing
// file is not an error: the tool works on bare trees with the defaults.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var cdepsfile Cdepsfile
	if err := yaml.Unmarshal(data, &cdepsfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := domain.DefaultConfig()
	if cdepsfile.Root != "" {
		cfg.Root = cdepsfile.Root
	}
	if cdepsfile.Snapshot != "" {
		cfg.SnapshotPath = cdepsfile.Snapshot
	}
	// Include directory order is the resolution order; keep it as written.
	cfg.IncludeDirs = cdepsfile.IncludeDirs
	cfg.Ignore = cdepsfile.Ignore

	for _, dir := range cfg.IncludeDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cwd, dir)
		}
		if _, err := os.Stat(dir); err != nil {
			l.Logger.Warn(fmt.Sprintf("include directory %q does not exist", dir))
		}
	}

	return cfg, nil
}
