// Package config provides the configuration loader for xtask.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/xtask/internal/core/domain"
	"go.trai.ch/xtask/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "xtask.yaml"

// Loader implements ports.ConfigLoader for YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path and layers it over the defaults.
// A missing file yields the defaults unchanged.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Xtaskfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	apply(cfg, &file)

	if strings.TrimSpace(cfg.Tool) == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyTool, "invalid config file"), "path", path)
	}

	if !domain.Profile(cfg.Profile).IsKnown() {
		l.logger.Warn("profile " + cfg.Profile + " is not a built-in profile")
	}

	return cfg, nil
}

func apply(cfg *domain.Config, file *Xtaskfile) {
	if file.Tool != "" {
		cfg.Tool = file.Tool
	}
	if file.Target != "" {
		cfg.Target = file.Target
	}
	if file.Profile != "" {
		cfg.Profile = file.Profile
	}
	if file.Package != "" {
		cfg.Package = file.Package
	}
	if len(file.Features) > 0 {
		cfg.Features = append([]string(nil), file.Features...)
	}
	if len(file.Environment) > 0 {
		cfg.Environment = maps.Clone(file.Environment)
	}
}
