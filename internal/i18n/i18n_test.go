// firmwizard - Firmware Build Configuration Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"de", language.German},
		{"de_DE.UTF-8", language.German},
		{"pl_PL.UTF-8@euro", language.Polish},
		{"C", language.English},
		{"POSIX", language.English},
		{"not a language", language.English},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := Resolve(tc.in); got != tc.want {
				t.Errorf("Resolve(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromEnv_Precedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "pl_PL.UTF-8")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := FromEnv(); got != "pl-PL" {
		t.Errorf("FromEnv() = %q, want pl-PL", got)
	}

	t.Setenv("LC_ALL", "de_AT.UTF-8")
	if got := FromEnv(); got != "de-AT" {
		t.Errorf("FromEnv() = %q, want de-AT", got)
	}
}

func TestT_StepMessages(t *testing.T) {
	for _, tag := range Supported() {
		p := Printer(tag)
		for _, id := range []string{StepFeaturesTitle, StepFeaturesDesc} {
			got := T(p, id)
			if got == id {
				t.Errorf("T(%v, %s) returned the id, message not registered", tag, id)
			}
			if got != messages[tag][id] {
				t.Errorf("T(%v, %s) = %q, want %q", tag, id, got, messages[tag][id])
			}
		}
	}
}

func TestT_UnknownID(t *testing.T) {
	if got := T(nil, "noSuchMessage"); got != "noSuchMessage" {
		t.Errorf("T(nil, noSuchMessage) = %q, want the id back", got)
	}
}

func TestMessages_AllLanguagesComplete(t *testing.T) {
	en := messages[language.English]
	for tag, msgs := range messages {
		for id := range en {
			if msgs[id] == "" {
				t.Errorf("%v is missing message %s", tag, id)
			}
		}
	}
}

func TestTf_StepCounter(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.English, "Step 2/4: X"},
		{language.German, "Schritt 2/4: X"},
		{language.Polish, "Krok 2/4: X"},
	}
	for _, tc := range tests {
		if got := Tf(Printer(tc.tag), StepCounter, 2, 4, "X"); got != tc.want {
			t.Errorf("Tf(%v, StepCounter) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}
