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

import "strings"

// CustomParameters returns the non-empty custom parameter texts held in the
// selection's derived keys, in catalog order.
func CustomParameters(c *Catalog, sel Selection) []string {
	var result []string
	for _, d := range c.items {
		if d.Custom == "" {
			continue
		}
		if v := sel.Text(CustomKey(d.Name)); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// BuildFlags returns the non-empty build flags held in the selection's
// derived keys, in catalog order, without duplicates.
func BuildFlags(c *Catalog, sel Selection) []string {
	seen := make(map[string]bool)
	var result []string
	for _, d := range c.items {
		if d.BuildFlag == "" {
			continue
		}
		v := sel.Text(BuildFlagKey(d.Name))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	return result
}

// OverrideHeader renders the custom parameters as the body of a firmware
// user configuration override header.
func OverrideHeader(c *Catalog, sel Selection) string {
	params := CustomParameters(c, sel)
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("// Generated by firmwizard\n")
	for _, p := range params {
		b.WriteString(strings.TrimRight(p, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// Enabled returns the catalog features switched on in the selection, in
// catalog order.
func Enabled(c *Catalog, sel Selection) []string {
	var result []string
	for _, d := range c.items {
		if sel.Bool(d.Name) {
			result = append(result, d.Name)
		}
	}
	return result
}
