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
	"github.com/cloud-exit/firmwizard/internal/ui"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate feature catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the features of the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		ui.Cecho(fmt.Sprintf("Catalog: %s", s.catalogName), ui.Cyan)
		fmt.Println()
		printCatalog(os.Stdout, s.catalog)
		fmt.Println()
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := features.LoadFile(args[0])
		if err != nil {
			return err
		}
		warnings := c.Lint()
		for _, w := range warnings {
			ui.Warn(w)
		}
		ui.Successf("%s: %d features, %d warnings", args[0], c.Len(), len(warnings))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the active catalog as YAML or TOML",
	Long:  "Print the active catalog. Useful as a starting point for a custom catalog file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		data, err := features.Marshal(s.catalog, features.Format(format))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// printCatalog writes one row per feature with its default, visibility and
// relations.
func printCatalog(w io.Writer, c *features.Catalog) {
	descs := c.Descriptors()
	nameWidth := len("FEATURE")
	for _, d := range descs {
		if len(d.Name) > nameWidth {
			nameWidth = len(d.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s %-8s %-6s %s\n", nameWidth, "FEATURE", "DEFAULT", "SHOWN", "RELATIONS")
	fmt.Fprintf(w, "  %-*s %-8s %-6s %s\n", nameWidth, "-------", "-------", "-----", "---------")
	for _, d := range descs {
		fmt.Fprintf(w, "  %-*s %-8s %-6s %s\n", nameWidth, d.Name, onOff(d.Value), yesNo(d.Show), relations(d))
	}
}

func relations(d features.Descriptor) string {
	var parts []string
	if len(d.Group) > 0 {
		parts = append(parts, "group: "+strings.Join(d.Group, ","))
	}
	if len(d.Exclude) > 0 {
		parts = append(parts, "excludes: "+strings.Join(d.Exclude, ","))
	}
	if len(d.Include) > 0 {
		parts = append(parts, "includes: "+strings.Join(d.Include, ","))
	}
	if d.Custom != "" {
		parts = append(parts, "custom")
	}
	if d.BuildFlag != "" {
		parts = append(parts, "flag: "+d.BuildFlag)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	catalogExportCmd.Flags().StringP("format", "f", "yaml", "Output format (yaml, toml)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
