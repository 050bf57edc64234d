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

import "sort"

const (
	customPrefix    = "precustom_"
	buildFlagPrefix = "buildflag_"
)

// Selection maps state keys to their values. A key is a feature name, a
// group member, or a derived key (see CustomKey and BuildFlagKey). Values
// are bool for features and group members, string for derived keys.
type Selection map[string]any

// Patch is a set of state updates produced by the engine.
type Patch map[string]any

// CustomKey returns the derived state key holding a feature's custom
// parameter text.
func CustomKey(name string) string { return customPrefix + name }

// BuildFlagKey returns the derived state key holding a feature's build flag.
func BuildFlagKey(name string) string { return buildFlagPrefix + name }

// Defaults seeds every feature and every group member with the feature's
// default value. Keys shared between features take the value of the last
// feature in catalog order. Derived keys are not seeded.
func (c *Catalog) Defaults() Selection {
	sel := make(Selection, len(c.items))
	for _, d := range c.items {
		sel[d.Name] = d.Value
		for _, g := range d.Group {
			sel[g] = d.Value
		}
	}
	return sel
}

// SetFeature returns the patch that sets name, its group members, and its
// derived custom/build-flag keys to the given state. Derived keys carry the
// descriptor text when enabled and "" otherwise, and are only present when
// the descriptor defines them. Unknown names yield a patch with just name.
func (c *Catalog) SetFeature(name string, enabled bool) Patch {
	p := Patch{name: enabled}
	i, ok := c.index[name]
	if !ok {
		return p
	}
	d := c.items[i]
	for _, g := range d.Group {
		p[g] = enabled
	}
	if d.Custom != "" {
		p[CustomKey(name)] = textIf(enabled, d.Custom)
	}
	if d.BuildFlag != "" {
		p[BuildFlagKey(name)] = textIf(enabled, d.BuildFlag)
	}
	return p
}

// Toggle returns the full patch for switching name to enabled.
// Enabling also forces every excluded feature off and then every included
// feature on, later entries overwriting earlier ones. Disabling only
// touches the feature and its group.
func (c *Catalog) Toggle(name string, enabled bool) Patch {
	p := c.SetFeature(name, enabled)
	if !enabled {
		return p
	}
	i, ok := c.index[name]
	if !ok {
		return p
	}
	d := c.items[i]
	for _, x := range d.Exclude {
		p.Merge(c.SetFeature(x, false))
	}
	for _, x := range d.Include {
		p.Merge(c.SetFeature(x, true))
	}
	return p
}

// Merge copies every entry of other into p, overwriting existing keys.
func (p Patch) Merge(other Patch) {
	for k, v := range other {
		p[k] = v
	}
}

// Keys returns the patch keys in sorted order.
func (p Patch) Keys() []string {
	return sortedKeys(p)
}

// Apply merges a patch into the selection.
func (s Selection) Apply(p Patch) {
	for k, v := range p {
		s[k] = v
	}
}

// Toggle flips the current value of name, applies the resulting patch and
// returns it.
func (s Selection) Toggle(c *Catalog, name string) Patch {
	p := c.Toggle(name, !s.Bool(name))
	s.Apply(p)
	return p
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Bool returns the boolean value of key. Missing keys and non-bool values
// read as false.
func (s Selection) Bool(key string) bool {
	b, _ := s[key].(bool)
	return b
}

// Text returns the string value of key, or "".
func (s Selection) Text(key string) string {
	t, _ := s[key].(string)
	return t
}

// Keys returns the selection keys in sorted order.
func (s Selection) Keys() []string {
	return sortedKeys(s)
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func textIf(enabled bool, text string) string {
	if enabled {
		return text
	}
	return ""
}
