// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads .ytdash.yaml from dir, falling back to .ytdash.toml. It returns
// the config and the path it was read from. If neither file exists, it
// returns a zero-value Config, an empty path and nil error.
func Load(dir string) (*Config, string, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path) //nolint:gosec // user-provided working directory
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, "", err
		}
		cfg, err := parse(name, data)
		if err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, path, nil
	}
	return &Config{}, "", nil
}

func parse(name string, data []byte) (*Config, error) {
	var cfg Config
	if filepath.Ext(name) == ".toml" {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
