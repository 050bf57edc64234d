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

	"github.com/cloud-exit/firmwizard/internal/config"
	"github.com/cloud-exit/firmwizard/internal/features"
	"github.com/cloud-exit/firmwizard/internal/ui"
	"github.com/cloud-exit/firmwizard/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Run the features step",
	Long: `Interactive step to select the firmware features to compile in.

Enabling a feature may switch related features on or off. Enter saves the
selection and writes the override header; Esc goes back without saving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, _ := cmd.Flags().GetBool("resume")
		return runFeatures(cmd, resume)
	},
}

func runFeatures(cmd *cobra.Command, resume bool) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	// Non-interactive terminal: never touch an existing selection
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ui.Warn("Non-interactive terminal detected.")
		return s.nonInteractive(resume || s.cfg.Settings.Resume)
	}

	var initial features.Selection
	if resume || s.cfg.Settings.Resume {
		if initial, err = s.loadSelection(); err != nil {
			return err
		}
	}

	var next features.Selection
	var back bool
	_, err = wizard.Run(s.catalog, wizard.RunOptions{
		StepOptions: wizard.StepOptions{
			Initial: initial,
			Printer: s.printer,
			OnNext:  func(sel features.Selection) { next = sel },
			OnBack:  func() { back = true },
		},
		AltScreen: s.cfg.Settings.AltScreen,
	})
	if errors.Is(err, wizard.ErrCancelled) {
		ui.Info("Cancelled. Selection not saved.")
		return nil
	}
	if err != nil {
		return err
	}
	if back {
		ui.Info("Back requested. Selection not saved.")
		return nil
	}

	if err := s.saveSelection(next); err != nil {
		return err
	}
	ui.Successf("Selection saved to %s", s.selectionPath())
	fmt.Println()
	printSummary(os.Stdout, s.catalog, next)
	return nil
}

// nonInteractive writes the catalog defaults when no selection exists yet.
// An existing selection is kept; with resume its override header is
// regenerated from it.
func (s *session) nonInteractive(resume bool) error {
	_, err := config.LoadSelection(s.selectionPath())
	if errors.Is(err, os.ErrNotExist) {
		if err := s.saveSelection(s.catalog.Defaults()); err != nil {
			return err
		}
		ui.Successf("Default selection written to %s", s.selectionPath())
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading selection: %w", err)
	}
	if !resume {
		ui.Infof("Keeping existing selection at %s", s.selectionPath())
		return nil
	}
	sel, err := s.loadSelection()
	if err != nil {
		return err
	}
	if err := s.writeHeader(sel); err != nil {
		return err
	}
	ui.Successf("Override header regenerated from %s", s.selectionPath())
	return nil
}

func init() {
	featuresCmd.Flags().BoolP("resume", "r", false, "Start from the saved selection instead of the catalog defaults")
	rootCmd.AddCommand(featuresCmd)
}
