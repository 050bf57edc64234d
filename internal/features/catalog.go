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

// Package features holds the firmware feature catalog and the selection
// engine that turns checkbox toggles into state patches.
package features

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned when a descriptor has no name.
	ErrEmptyName = errors.New("feature name is empty")
	// ErrDuplicateFeature is returned when two descriptors share a name.
	ErrDuplicateFeature = errors.New("duplicate feature name")
)

// Descriptor describes one selectable firmware feature.
type Descriptor struct {
	Name        string   `yaml:"name" toml:"name" mapstructure:"name"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty" mapstructure:"description"`
	Value       bool     `yaml:"value" toml:"value" mapstructure:"value"` // enabled by default
	Show        bool     `yaml:"show" toml:"show" mapstructure:"show"`    // listed in the step
	Group       []string `yaml:"group,omitempty" toml:"group,omitempty" mapstructure:"group"`
	Exclude     []string `yaml:"exclude,omitempty" toml:"exclude,omitempty" mapstructure:"exclude"`
	Include     []string `yaml:"include,omitempty" toml:"include,omitempty" mapstructure:"include"`
	Custom      string   `yaml:"custom,omitempty" toml:"custom,omitempty" mapstructure:"custom"`
	BuildFlag   string   `yaml:"buildflag,omitempty" toml:"buildflag,omitempty" mapstructure:"buildflag"`
}

// Catalog is an ordered, name-indexed list of feature descriptors.
// It is immutable once built.
type Catalog struct {
	items []Descriptor
	index map[string]int
}

// NewCatalog validates the descriptors and builds the name index.
// Names must be non-empty and unique.
func NewCatalog(items []Descriptor) (*Catalog, error) {
	c := &Catalog{
		items: make([]Descriptor, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, d := range items {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("feature #%d: %w", i+1, ErrEmptyName)
		}
		if prev, ok := c.index[d.Name]; ok {
			return nil, fmt.Errorf("feature %q (#%d, first defined at #%d): %w", d.Name, i+1, prev+1, ErrDuplicateFeature)
		}
		c.index[d.Name] = len(c.items)
		c.items = append(c.items, copyDescriptor(d))
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid input.
// Intended for catalogs compiled into the binary.
func MustCatalog(items []Descriptor) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of features in the catalog.
func (c *Catalog) Len() int { return len(c.items) }

// Descriptors returns a copy of all descriptors in catalog order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, len(c.items))
	for i, d := range c.items {
		out[i] = copyDescriptor(d)
	}
	return out
}

// Visible returns the descriptors with Show set, in catalog order.
func (c *Catalog) Visible() []Descriptor {
	var out []Descriptor
	for _, d := range c.items {
		if d.Show {
			out = append(out, copyDescriptor(d))
		}
	}
	return out
}

// Lookup returns the descriptor for name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	i, ok := c.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return copyDescriptor(c.items[i]), true
}

// Has reports whether name is a catalog feature.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Owns reports whether key is a state key the catalog produces: a feature
// name, a group member, or the derived key of a feature that defines custom
// text or a build flag.
func (c *Catalog) Owns(key string) bool {
	if c.Has(key) {
		return true
	}
	for _, d := range c.items {
		if contains(d.Group, key) {
			return true
		}
		if d.Custom != "" && key == CustomKey(d.Name) {
			return true
		}
		if d.BuildFlag != "" && key == BuildFlagKey(d.Name) {
			return true
		}
	}
	return false
}

// Lint returns human-readable warnings for suspicious but valid catalogs:
// exclude/include targets that are not catalog features, self references,
// and features that both exclude and include the same target.
// Group members are free-form state keys and are not checked.
func (c *Catalog) Lint() []string {
	var warnings []string
	for _, d := range c.items {
		for _, x := range d.Exclude {
			switch {
			case x == d.Name:
				warnings = append(warnings, fmt.Sprintf("%s: excludes itself", d.Name))
			case !c.Has(x):
				warnings = append(warnings, fmt.Sprintf("%s: exclude target %q is not a feature", d.Name, x))
			}
		}
		for _, x := range d.Include {
			switch {
			case x == d.Name:
				warnings = append(warnings, fmt.Sprintf("%s: includes itself", d.Name))
			case !c.Has(x):
				warnings = append(warnings, fmt.Sprintf("%s: include target %q is not a feature", d.Name, x))
			}
			if contains(d.Exclude, x) {
				warnings = append(warnings, fmt.Sprintf("%s: %q is both excluded and included", d.Name, x))
			}
		}
	}
	return warnings
}

func copyDescriptor(d Descriptor) Descriptor {
	d.Group = copyStrings(d.Group)
	d.Exclude = copyStrings(d.Exclude)
	d.Include = copyStrings(d.Include)
	return d
}

func copyStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
