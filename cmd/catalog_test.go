// firmwizard - Firmware Build Configuration Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cloud-exit/firmwizard/internal/features"
)

func TestRelations(t *testing.T) {
	tests := []struct {
		name string
		d    features.Descriptor
		want string
	}{
		{"none", features.Descriptor{Name: "A"}, "-"},
		{"group", features.Descriptor{Name: "A", Group: []string{"A1", "A2"}}, "group: A1,A2"},
		{
			"all",
			features.Descriptor{Name: "A", Exclude: []string{"B"}, Include: []string{"C"}, Custom: "#define A", BuildFlag: "-DA"},
			"excludes: B; includes: C; custom; flag: -DA",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := relations(tc.d); got != tc.want {
				t.Errorf("relations() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf, features.Builtin())
	out := buf.String()

	if !strings.Contains(out, "FEATURE") {
		t.Errorf("printCatalog() missing header:\n%s", out)
	}
	for _, d := range features.Builtin().Descriptors() {
		if !strings.Contains(out, d.Name) {
			t.Errorf("printCatalog() missing %s", d.Name)
		}
	}
	// header, separator, one row per feature
	if got, want := strings.Count(out, "\n"), features.Builtin().Len()+2; got != want {
		t.Errorf("printCatalog() wrote %d lines, want %d", got, want)
	}
}
