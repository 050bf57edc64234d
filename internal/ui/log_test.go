// firmwizard - Firmware Build Configuration Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
package ui

import (
	"bytes"
	"testing"
)

func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr, oldVerbose := Stdout, Stderr, Verbose
	Stdout, Stderr = out, errOut
	SetColor(false)
	t.Cleanup(func() {
		Stdout, Stderr, Verbose = oldOut, oldErr, oldVerbose
	})
	return out, errOut
}

func TestLevels(t *testing.T) {
	out, errOut := captureOutput(t)

	Infof("catalog %s", "builtin")
	Success("saved")
	Warnf("%d warnings", 2)
	ErrorNoExit("boom")

	if got, want := out.String(), "[INFO] catalog builtin\n[OK] saved\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "[WARN] 2 warnings\n[ERROR] boom\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	_, errOut := captureOutput(t)

	Verbose = false
	Debugf("hidden %d", 1)
	if errOut.Len() != 0 {
		t.Errorf("Debug printed while not verbose: %q", errOut.String())
	}

	Verbose = true
	Debug("shown")
	if got := errOut.String(); got != "[DEBUG] shown\n" {
		t.Errorf("stderr = %q, want [DEBUG] shown", got)
	}
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		noColor string
		tty     bool
		want    bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", true, false},
	}
	for _, tc := range tests {
		if got := colorEnabled(tc.noColor, tc.tty); got != tc.want {
			t.Errorf("colorEnabled(%q, %v) = %v, want %v", tc.noColor, tc.tty, got, tc.want)
		}
	}
}

func TestSetColor(t *testing.T) {
	t.Cleanup(func() { SetColor(false) })
	SetColor(true)
	if Red == "" || NC == "" {
		t.Error("SetColor(true) left codes empty")
	}
	SetColor(false)
	if Red != "" || Cyan != "" || NC != "" {
		t.Error("SetColor(false) left codes set")
	}
}
