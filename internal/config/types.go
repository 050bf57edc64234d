// firmwizard - Firmware Build Configuration Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package config

import "path/filepath"

// Config is the top-level firmwizard configuration (config.yaml).
type Config struct {
	Version   int            `yaml:"version"`
	Language  string         `yaml:"language,omitempty"`   // e.g. "de"; empty = from locale
	Catalog   string         `yaml:"catalog,omitempty"`    // custom catalog file; empty = builtin
	OutputDir string         `yaml:"output_dir,omitempty"` // where selections and artefacts go
	Settings  SettingsConfig `yaml:"settings"`
}

// SettingsConfig holds interactive behaviour settings.
type SettingsConfig struct {
	AltScreen bool `yaml:"alt_screen"`
	// Resume starts the features step from the saved selection instead of
	// the catalog defaults.
	Resume bool `yaml:"resume"`
}

// SelectionFile is the persisted result of the features step (selection.yaml).
type SelectionFile struct {
	Version  int            `yaml:"version"`
	Catalog  string         `yaml:"catalog,omitempty"` // catalog the selection was made against
	Features map[string]any `yaml:"features"`
}

// CatalogPath returns the configured catalog file, resolving relative
// paths against the config directory. Empty means the builtin catalog.
func (c *Config) CatalogPath() string {
	if c.Catalog == "" {
		return ""
	}
	if filepath.IsAbs(c.Catalog) {
		return c.Catalog
	}
	return filepath.Join(Home, c.Catalog)
}

// OutputPath returns the configured output directory, or the data
// directory when unset.
func (c *Config) OutputPath() string {
	if c.OutputDir == "" {
		return Data
	}
	return c.OutputDir
}
