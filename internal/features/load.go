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

package features

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for catalog files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// ErrUnknownField is returned for catalog entries with keys that are not
// descriptor fields, usually a misspelling such as "buildFlag".
var ErrUnknownField = errors.New("unknown feature field")

// Format identifies a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// catalogDocument is the on-disk shape of a catalog file. Entries are kept
// loose so that missing or oddly typed optional fields can be coerced.
type catalogDocument struct {
	Features []map[string]any `yaml:"features" toml:"features"`
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document in the given format.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc catalogDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	items := make([]Descriptor, 0, len(doc.Features))
	for i, raw := range doc.Features {
		d, err := decodeDescriptor(raw)
		if err != nil {
			return nil, fmt.Errorf("feature #%d: %w", i+1, err)
		}
		items = append(items, d)
	}
	return NewCatalog(items)
}

// decodeDescriptor converts one loose catalog entry. A single string is
// accepted where a list is expected; unknown keys are rejected.
func decodeDescriptor(raw map[string]any) (Descriptor, error) {
	var d Descriptor
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &d,
	})
	if err != nil {
		return Descriptor{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Descriptor{}, err
	}
	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(md.Unused, ", "))
	}
	return d, nil
}

// Marshal encodes a catalog in the given format.
func Marshal(c *Catalog, format Format) ([]byte, error) {
	doc := struct {
		Features []Descriptor `yaml:"features" toml:"features"`
	}{Features: c.Descriptors()}

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(doc); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}
