// Package config loads the startup configuration file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aiptu/mynotes/internal/textres"
)

//go:embed default.yml
var defaultConfig []byte

// Database holds storage settings.
type Database struct {
	Path string `yaml:"path"`
}

// Config is the parsed configuration file. The four text sections stay
// untyped here; textres validates them eagerly at startup.
type Config struct {
	Database Database       `yaml:"database"`
	Titles   map[string]any `yaml:"titles"`
	Messages map[string]any `yaml:"messages"`
	Buttons  map[string]any `yaml:"buttons"`
	Icons    map[string]any `yaml:"icons"`
}

// Load reads the configuration at path. If the file does not exist, the
// embedded default configuration is written there first. The MYNOTES_DB
// environment variable overrides the database path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := writeDefault(path); werr != nil {
			return nil, werr
		}
		b = defaultConfig
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if env := os.Getenv("MYNOTES_DB"); env != "" {
		c.Database.Path = env
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(filepath.Dir(path), "notes.db")
	}

	return &c, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// Resources validates the text sections and returns the resolver.
// Any missing required key aborts startup.
func (c *Config) Resources() (*textres.Resources, error) {
	return textres.New(map[textres.Section]map[string]any{
		textres.SectionTitles:   c.Titles,
		textres.SectionMessages: c.Messages,
		textres.SectionButtons:  c.Buttons,
		textres.SectionIcons:    c.Icons,
	})
}
