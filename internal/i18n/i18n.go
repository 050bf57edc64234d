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

// Package i18n registers the wizard's message ids and resolves the user's
// language.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message ids consumed by the wizard steps.
const (
	StepFeaturesTitle = "stepFeaturesTitle"
	StepFeaturesDesc  = "stepFeaturesDesc"
	ButtonBack        = "buttonBack"
	ButtonNext        = "buttonNext"
	HelpUp            = "helpUp"
	HelpDown          = "helpDown"
	HelpToggle        = "helpToggle"
	HelpNext          = "helpNext"
	HelpBack          = "helpBack"
	HelpQuit          = "helpQuit"
	// StepCounter formats "step n of N: title".
	StepCounter       = "stepCounter"
)

var supportedTags = []language.Tag{
	language.English,
	language.German,
	language.Polish,
}

var tagMatcher = language.NewMatcher(supportedTags)

var messages = map[language.Tag]map[string]string{
	language.English: {
		StepFeaturesTitle: "Select features",
		StepFeaturesDesc:  "Choose the features to compile into the firmware. Some features switch others on or off.",
		ButtonBack:        "Back",
		ButtonNext:        "Next",
		HelpUp:            "up",
		HelpDown:          "down",
		HelpToggle:        "toggle",
		HelpNext:          "next",
		HelpBack:          "back",
		HelpQuit:          "quit",
		StepCounter:       "Step %d/%d: %s",
	},
	language.German: {
		StepFeaturesTitle: "Funktionen auswählen",
		StepFeaturesDesc:  "Wähle die Funktionen, die in die Firmware kompiliert werden. Manche Funktionen schalten andere ein oder aus.",
		ButtonBack:        "Zurück",
		ButtonNext:        "Weiter",
		HelpUp:            "hoch",
		HelpDown:          "runter",
		HelpToggle:        "umschalten",
		HelpNext:          "weiter",
		HelpBack:          "zurück",
		HelpQuit:          "beenden",
		StepCounter:       "Schritt %d/%d: %s",
	},
	language.Polish: {
		StepFeaturesTitle: "Wybierz funkcje",
		StepFeaturesDesc:  "Wybierz funkcje, które zostaną wkompilowane w firmware. Niektóre funkcje włączają lub wyłączają inne.",
		ButtonBack:        "Wstecz",
		ButtonNext:        "Dalej",
		HelpUp:            "w górę",
		HelpDown:          "w dół",
		HelpToggle:        "przełącz",
		HelpNext:          "dalej",
		HelpBack:          "wstecz",
		HelpQuit:          "wyjdź",
		StepCounter:       "Krok %d/%d: %s",
	},
}

func init() {
	for tag, msgs := range messages {
		for key, msg := range msgs {
			message.SetString(tag, key, msg)
		}
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Resolve maps a user-supplied language ("de", "pl_PL.UTF-8", "en-GB") to
// the closest supported tag, or the default.
func Resolve(lang string) language.Tag {
	lang = normalize(lang)
	if lang == "" {
		return Default()
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// FromEnv returns the language requested by the POSIX locale variables,
// in their usual precedence order.
func FromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := normalize(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// T looks up a message id. Unknown ids are returned unchanged.
func T(p *message.Printer, id string) string {
	if p == nil {
		p = Printer(Default())
	}
	return p.Sprintf(id)
}

// Tf looks up a message id that takes format arguments.
func Tf(p *message.Printer, id string, args ...any) string {
	if p == nil {
		p = Printer(Default())
	}
	return p.Sprintf(id, args...)
}

// normalize strips encoding and modifier suffixes from POSIX locale names
// and drops the C/POSIX pseudo-locales.
func normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
