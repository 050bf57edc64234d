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
	"io"
	"os"
	"strings"

	"github.com/cloud-exit/firmwizard/internal/config"
	"github.com/cloud-exit/firmwizard/internal/features"
	"github.com/cloud-exit/firmwizard/internal/i18n"
	"github.com/cloud-exit/firmwizard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

const builtinCatalogName = "builtin"

// session bundles what the commands share: config, catalog, language and
// output location, with persistent flags taking precedence over config.
type session struct {
	cfg         *config.Config
	catalog     *features.Catalog
	catalogName string
	printer     *message.Printer
	outputDir   string
}

func loadSession(cmd *cobra.Command) (*session, error) {
	cfg := config.LoadOrDefault()

	catalogPath, _ := cmd.Flags().GetString("catalog")
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath()
	}
	cat, name, err := loadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = cfg.Language
	}
	if lang == "" {
		lang = i18n.FromEnv()
	}
	tag := i18n.Resolve(lang)

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputPath()
	}

	ui.Debugf("catalog=%s features=%d lang=%s output=%s", name, cat.Len(), tag, outputDir)

	return &session{
		cfg:         cfg,
		catalog:     cat,
		catalogName: name,
		printer:     i18n.Printer(tag),
		outputDir:   outputDir,
	}, nil
}

// loadCatalog returns the catalog at path, or the builtin catalog when path
// is empty.
func loadCatalog(path string) (*features.Catalog, string, error) {
	if path == "" {
		return features.Builtin(), builtinCatalogName, nil
	}
	c, err := features.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

func (s *session) selectionPath() string {
	return config.SelectionFilePath(s.outputDir)
}

// loadSelection returns the saved selection overlaid on the catalog
// defaults, or just the defaults when nothing has been saved yet.
func (s *session) loadSelection() (features.Selection, error) {
	sel := s.catalog.Defaults()
	sf, err := config.LoadSelection(s.selectionPath())
	if errors.Is(err, os.ErrNotExist) {
		ui.Debugf("no saved selection at %s, using defaults", s.selectionPath())
		return sel, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading selection: %w", err)
	}
	foreign := sf.Catalog != "" && sf.Catalog != s.catalogName
	dropped := 0
	for k, v := range sf.Features {
		if foreign && !s.catalog.Owns(k) {
			dropped++
			continue
		}
		sel[k] = v
	}
	if foreign {
		ui.Warnf("Saved selection was made with catalog %q, current catalog is %q; dropped %d unknown keys",
			sf.Catalog, s.catalogName, dropped)
	}
	return sel, nil
}

// saveSelection persists the selection and regenerates the override header.
func (s *session) saveSelection(sel features.Selection) error {
	sf := &config.SelectionFile{
		Version:  1,
		Catalog:  s.catalogName,
		Features: map[string]any(sel.Clone()),
	}
	if err := config.SaveSelection(sf, s.selectionPath()); err != nil {
		return fmt.Errorf("saving selection: %w", err)
	}
	return s.writeHeader(sel)
}

func (s *session) writeHeader(sel features.Selection) error {
	header := features.OverrideHeader(s.catalog, sel)
	if err := os.WriteFile(config.OverrideHeaderPath(s.outputDir), []byte(header), 0644); err != nil {
		return fmt.Errorf("writing override header: %w", err)
	}
	return nil
}

// printSummary writes the enabled features and derived build artefacts.
func printSummary(w io.Writer, c *features.Catalog, sel features.Selection) {
	enabled := features.Enabled(c, sel)
	fmt.Fprintf(w, "Enabled features (%d):\n", len(enabled))
	for _, name := range enabled {
		fmt.Fprintf(w, "  %s\n", name)
	}

	if flags := features.BuildFlags(c, sel); len(flags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Build flags: %s\n", strings.Join(flags, " "))
	}
	if params := features.CustomParameters(c, sel); len(params) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Custom parameters:")
		for _, p := range params {
			for _, line := range strings.Split(strings.TrimRight(p, "\n"), "\n") {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
}
