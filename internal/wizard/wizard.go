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

// Package wizard implements the interactive TUI steps of the firmware
// configuration wizard.
package wizard

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/firmwizard/internal/features"
)

// ErrCancelled is returned when the user quits with ctrl+c.
var ErrCancelled = errors.New("setup cancelled")

// RunOptions configures Run.
type RunOptions struct {
	StepOptions
	AltScreen bool
	// Input and Output override the terminal, mainly for embedding.
	Input  io.Reader
	Output io.Writer
}

// Result is the outcome of a finished features step.
type Result struct {
	Outcome   Outcome
	Selection features.Selection // the snapshot handed to OnNext; nil on Back
}

// Run executes the features step TUI until the user goes back or proceeds.
func Run(c *features.Catalog, opts RunOptions) (*Result, error) {
	model := NewFeaturesStep(c, opts.StepOptions)

	var popts []tea.ProgramOption
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		popts = append(popts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		popts = append(popts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(model, popts...)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	fm := finalModel.(FeaturesStep)
	switch fm.Outcome() {
	case OutcomeNext:
		return &Result{Outcome: OutcomeNext, Selection: fm.Selection()}, nil
	case OutcomeBack:
		return &Result{Outcome: OutcomeBack}, nil
	}
	return nil, ErrCancelled
}
