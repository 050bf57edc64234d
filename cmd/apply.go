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
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cloud-exit/firmwizard/internal/features"
	"github.com/cloud-exit/firmwizard/internal/ui"
	"github.com/spf13/cobra"
)

var errInvalidToggle = errors.New("invalid toggle")

// toggle is one NAME[=on|off] argument.
type toggle struct {
	Name    string
	Enabled bool
}

var applyCmd = &cobra.Command{
	Use:   "apply NAME[=on|off]...",
	Short: "Toggle features without the TUI",
	Long: `Apply feature toggles in the order given, exactly as the interactive
step would, starting from the saved selection.

A bare NAME switches the feature on. Enabling a feature forces the features
it excludes off and the features it includes on; disabling never cascades.`,
	Example:           "  firmwizard apply USE_DISPLAY USE_RULES=off\n  firmwizard apply --reset FIRMWARE_MINIMAL --dry-run",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeFeatureNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		toggles, err := parseToggles(args)
		if err != nil {
			return err
		}

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		reset, _ := cmd.Flags().GetBool("reset")
		var sel features.Selection
		if reset {
			sel = s.catalog.Defaults()
		} else if sel, err = s.loadSelection(); err != nil {
			return err
		}

		for _, t := range toggles {
			if !s.catalog.Has(t.Name) {
				ui.Warnf("%s is not in the catalog; setting it anyway", t.Name)
			}
		}
		applyToggles(s.catalog, sel, toggles)

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if !dryRun {
			if err := s.saveSelection(sel); err != nil {
				return err
			}
			ui.Successf("Selection saved to %s", s.selectionPath())
			fmt.Println()
		}
		printSummary(os.Stdout, s.catalog, sel)
		return nil
	},
}

// parseToggles parses NAME, NAME=on and NAME=off style arguments.
func parseToggles(args []string) ([]toggle, error) {
	toggles := make([]toggle, 0, len(args))
	for _, arg := range args {
		t, err := parseToggle(arg)
		if err != nil {
			return nil, err
		}
		toggles = append(toggles, t)
	}
	return toggles, nil
}

func parseToggle(arg string) (toggle, error) {
	name, value, hasValue := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return toggle{}, fmt.Errorf("%w: %q has no feature name", errInvalidToggle, arg)
	}
	if !hasValue {
		return toggle{Name: name, Enabled: true}, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "yes", "1":
		return toggle{Name: name, Enabled: true}, nil
	case "off", "false", "no", "0":
		return toggle{Name: name, Enabled: false}, nil
	}
	return toggle{}, fmt.Errorf("%w: %q (use on or off)", errInvalidToggle, arg)
}

// applyToggles applies each toggle's patch in order.
func applyToggles(c *features.Catalog, sel features.Selection, toggles []toggle) {
	for _, t := range toggles {
		p := c.Toggle(t.Name, t.Enabled)
		ui.Debugf("%s=%v -> %s", t.Name, t.Enabled, formatPatch(p))
		sel.Apply(p)
	}
}

func formatPatch(p features.Patch) string {
	parts := make([]string, 0, len(p))
	for _, k := range p.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%v", k, p[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func init() {
	applyCmd.Flags().Bool("reset", false, "Start from the catalog defaults instead of the saved selection")
	applyCmd.Flags().Bool("dry-run", false, "Print the result without saving")
	rootCmd.AddCommand(applyCmd)
}
