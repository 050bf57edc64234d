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

package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/firmwizard/internal/features"
	"github.com/cloud-exit/firmwizard/internal/i18n"
	"golang.org/x/text/message"
)

// Outcome records which control ended a step.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeNext
	OutcomeBack
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNext:
		return "next"
	case OutcomeBack:
		return "back"
	case OutcomeCancelled:
		return "cancelled"
	}
	return "none"
}

// StepOptions configures a FeaturesStep.
type StepOptions struct {
	// Initial is overlaid on the catalog defaults. Nil starts from defaults.
	Initial features.Selection
	Printer *message.Printer
	// OnNext receives a snapshot of the selection when the user proceeds.
	OnNext func(features.Selection)
	// OnBack is called when the user goes back.
	OnBack func()
	// StepNum and StepCount render "Step n/N" in the title when both are set.
	StepNum   int
	StepCount int
}

// FeaturesStep is the bubbletea model for the features step: one checkbox
// per visible catalog feature plus Back and Next.
type FeaturesStep struct {
	catalog *features.Catalog
	visible []features.Descriptor
	state   features.Selection
	cursor  int
	keys    keyMap
	help    help.Model
	printer *message.Printer
	onNext  func(features.Selection)
	onBack  func()
	stepNum int
	steps   int
	width   int
	outcome Outcome
}

// NewFeaturesStep creates the step with its selection seeded from the
// catalog defaults.
func NewFeaturesStep(c *features.Catalog, opts StepOptions) FeaturesStep {
	state := c.Defaults()
	for k, v := range opts.Initial {
		state[k] = v
	}
	p := opts.Printer
	if p == nil {
		p = i18n.Printer(i18n.Default())
	}
	return FeaturesStep{
		catalog: c,
		visible: c.Visible(),
		state:   state,
		keys:    newKeyMap(p),
		help:    help.New(),
		printer: p,
		onNext:  opts.OnNext,
		onBack:  opts.OnBack,
		stepNum: opts.StepNum,
		steps:   opts.StepCount,
	}
}

func (m FeaturesStep) Init() tea.Cmd {
	return nil
}

func (m FeaturesStep) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.outcome = OutcomeCancelled
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.visible) > 0 {
				m.state.Toggle(m.catalog, m.visible[m.cursor].Name)
			}
		case key.Matches(msg, m.keys.Next):
			m.outcome = OutcomeNext
			if m.onNext != nil {
				m.onNext(m.state.Clone())
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.outcome = OutcomeBack
			if m.onBack != nil {
				m.onBack()
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FeaturesStep) View() string {
	var b strings.Builder

	title := i18n.T(m.printer, i18n.StepFeaturesTitle)
	if m.stepNum > 0 && m.steps > 0 {
		title = i18n.Tf(m.printer, i18n.StepCounter, m.stepNum, m.steps, title)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	desc := subtitleStyle
	if m.width > 0 {
		desc = desc.Width(m.width)
	}
	b.WriteString(desc.Render(i18n.T(m.printer, i18n.StepFeaturesDesc)))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, d := range m.visible {
		if len(d.Name) > nameWidth {
			nameWidth = len(d.Name)
		}
	}

	for i, d := range m.visible {
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.state.Bool(d.Name) {
			check = selectedStyle.Render("[x]")
		}
		// Pad name to fixed width before styling to prevent layout shift
		paddedName := fmt.Sprintf("%-*s", nameWidth, d.Name)
		if m.cursor == i {
			paddedName = selectedStyle.Render(paddedName)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, check, paddedName, dimStyle.Render(d.Description)))
	}

	b.WriteString("\n")
	b.WriteString(buttonStyle.Render(i18n.T(m.printer, i18n.ButtonBack)))
	b.WriteString("  ")
	b.WriteString(primaryButtonStyle.Render(i18n.T(m.printer, i18n.ButtonNext)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selection returns a copy of the current selection.
func (m FeaturesStep) Selection() features.Selection { return m.state.Clone() }

// Outcome returns which control ended the step, if any.
func (m FeaturesStep) Outcome() Outcome { return m.outcome }
