// firmwizard - Firmware Build Configuration Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package features

import (
	"reflect"
	"testing"
)

func artifactCatalog() *Catalog {
	return MustCatalog([]Descriptor{
		{Name: "A", Custom: "#define A", BuildFlag: "-DSHARED"},
		{Name: "B", Custom: "#define B\n"},
		{Name: "C", BuildFlag: "-DSHARED"},
		{Name: "D", BuildFlag: "-DD"},
	})
}

func TestCustomParameters_CatalogOrder(t *testing.T) {
	c := artifactCatalog()
	sel := Selection{}
	sel.Apply(c.Toggle("B", true))
	sel.Apply(c.Toggle("A", true))

	got := CustomParameters(c, sel)
	want := []string{"#define A", "#define B\n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CustomParameters() = %q, want %q", got, want)
	}
}

func TestCustomParameters_ClearedAfterDisable(t *testing.T) {
	c := artifactCatalog()
	sel := Selection{}
	sel.Apply(c.Toggle("A", true))
	sel.Apply(c.Toggle("A", false))

	if got := CustomParameters(c, sel); got != nil {
		t.Errorf("CustomParameters() = %q, want nil", got)
	}
}

func TestBuildFlags_Deduplicated(t *testing.T) {
	c := artifactCatalog()
	sel := Selection{}
	for _, name := range []string{"A", "C", "D"} {
		sel.Apply(c.Toggle(name, true))
	}

	got := BuildFlags(c, sel)
	want := []string{"-DSHARED", "-DD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildFlags() = %v, want %v", got, want)
	}
}

func TestOverrideHeader(t *testing.T) {
	c := artifactCatalog()
	if got := OverrideHeader(c, Selection{}); got != "" {
		t.Errorf("OverrideHeader() with nothing selected = %q, want empty", got)
	}

	sel := Selection{}
	sel.Apply(c.Toggle("A", true))
	sel.Apply(c.Toggle("B", true))
	want := "// Generated by firmwizard\n#define A\n#define B\n"
	if got := OverrideHeader(c, sel); got != want {
		t.Errorf("OverrideHeader() = %q, want %q", got, want)
	}
}

func TestEnabled(t *testing.T) {
	c := artifactCatalog()
	sel := Selection{"A": true, "B": false, "D": true, "extra": true}
	if got := Enabled(c, sel); !reflect.DeepEqual(got, []string{"A", "D"}) {
		t.Errorf("Enabled() = %v, want [A D]", got)
	}
}
