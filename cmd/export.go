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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloud-exit/firmwizard/internal/features"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print build artefacts derived from the saved selection",
	Long: `Print what the build needs from the saved selection:

  override  custom parameter lines for user_config_override.h
  flags     build flags, one per line
  yaml      the raw selection state`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		sel, err := s.loadSelection()
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return writeExport(os.Stdout, s.catalog, sel, format)
	},
}

func writeExport(w io.Writer, c *features.Catalog, sel features.Selection, format string) error {
	switch format {
	case "override":
		_, err := io.WriteString(w, features.OverrideHeader(c, sel))
		return err
	case "flags":
		for _, f := range features.BuildFlags(c, sel) {
			if _, err := fmt.Fprintln(w, f); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		data, err := yaml.Marshal(map[string]any(sel))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown export format %q (supported: %s)", format, strings.Join(exportFormats, ", "))
}

var exportFormats = []string{"override", "flags", "yaml"}

func init() {
	exportCmd.Flags().StringP("format", "f", "override", "Output format ("+strings.Join(exportFormats, ", ")+")")
	rootCmd.AddCommand(exportCmd)
}
