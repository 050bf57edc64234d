// firmwizard - Firmware Build Configuration Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package features

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const yamlCatalog = `features:
  - name: USE_RULES
    value: true
    show: true
    exclude: [USE_SCRIPT]
  - name: USE_SCRIPT
    show: true
    exclude: USE_RULES
    custom: "#define USE_SCRIPT"
  - name: USE_I2C
    value: true
    group: [USE_SHT, USE_HTU]
    buildflag: -DUSE_I2C
`

const tomlCatalog = `[[features]]
name = "USE_RULES"
value = true
show = true
exclude = ["USE_SCRIPT"]

[[features]]
name = "USE_SCRIPT"
show = true
exclude = ["USE_RULES"]
custom = "#define USE_SCRIPT"

[[features]]
name = "USE_I2C"
value = true
group = ["USE_SHT", "USE_HTU"]
buildflag = "-DUSE_I2C"
`

func checkLoadedCatalog(t *testing.T, c *Catalog) {
	t.Helper()
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	script, _ := c.Lookup("USE_SCRIPT")
	if !reflect.DeepEqual(script.Exclude, []string{"USE_RULES"}) {
		t.Errorf("USE_SCRIPT.Exclude = %v, want [USE_RULES]", script.Exclude)
	}
	if script.Value {
		t.Error("USE_SCRIPT.Value should default to false when omitted")
	}
	if script.Custom != "#define USE_SCRIPT" {
		t.Errorf("USE_SCRIPT.Custom = %q", script.Custom)
	}
	i2c, _ := c.Lookup("USE_I2C")
	if i2c.Show {
		t.Error("USE_I2C.Show should default to false when omitted")
	}
	if !reflect.DeepEqual(i2c.Group, []string{"USE_SHT", "USE_HTU"}) {
		t.Errorf("USE_I2C.Group = %v", i2c.Group)
	}
	if i2c.BuildFlag != "-DUSE_I2C" {
		t.Errorf("USE_I2C.BuildFlag = %q", i2c.BuildFlag)
	}
}

func TestParse_YAML(t *testing.T) {
	c, err := Parse([]byte(yamlCatalog), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	checkLoadedCatalog(t, c)
}

func TestParse_TOML(t *testing.T) {
	c, err := Parse([]byte(tomlCatalog), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	checkLoadedCatalog(t, c)
}

func TestParse_DuplicateIsError(t *testing.T) {
	doc := "features:\n  - name: A\n  - name: A\n"
	if _, err := Parse([]byte(doc), FormatYAML); !errors.Is(err, ErrDuplicateFeature) {
		t.Errorf("Parse() error = %v, want ErrDuplicateFeature", err)
	}
}

func TestParse_BadFieldType(t *testing.T) {
	doc := "features:\n  - name: A\n    group: {nested: map}\n"
	if _, err := Parse([]byte(doc), FormatYAML); err == nil {
		t.Error("Parse() with a map as group should fail")
	}
}

func TestParse_UnknownFieldIsError(t *testing.T) {
	doc := "features:\n  - name: A\n    excludes: [B]\n    buildflags: -DA\n  - name: B\n"
	_, err := Parse([]byte(doc), FormatYAML)
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Parse() error = %v, want ErrUnknownField", err)
	}
	if !strings.Contains(err.Error(), "buildflags, excludes") {
		t.Errorf("error %q should name the unknown keys", err)
	}
}

func TestParse_FieldNamesIgnoreCase(t *testing.T) {
	doc := "features:\n  - name: A\n    buildFlag: -DA\n"
	c, err := Parse([]byte(doc), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d, _ := c.Lookup("A"); d.BuildFlag != "-DA" {
		t.Errorf("BuildFlag = %q, want -DA", d.BuildFlag)
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	if _, err := Parse([]byte("{}"), Format("json")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Parse() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"catalog.yaml": yamlCatalog,
		"catalog.yml":  yamlCatalog,
		"catalog.toml": tomlCatalog,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error = %v", name, err)
		}
		checkLoadedCatalog(t, c)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "catalog.json")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile(.json) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestMarshal_RoundTripBuiltin(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Marshal(Builtin(), format)
		if err != nil {
			t.Fatalf("Marshal(%s) error = %v", format, err)
		}
		c, err := Parse(data, format)
		if err != nil {
			t.Fatalf("Parse(Marshal(%s)) error = %v", format, err)
		}
		if !reflect.DeepEqual(c.Descriptors(), Builtin().Descriptors()) {
			t.Errorf("%s round trip changed the builtin catalog", format)
		}
	}
}
