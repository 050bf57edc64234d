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
	"os"

	"github.com/cloud-exit/firmwizard/internal/config"
	"github.com/cloud-exit/firmwizard/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:           "firmwizard",
	Short:         "Firmware build configuration wizard",
	Long:          "firmwizard – Select firmware features and generate build overrides",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeatures(cmd, false)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("firmwizard version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("lang", "l", "", "Interface language (en, de, pl); defaults to the locale")
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Feature catalog file (.yaml or .toml); defaults to the builtin catalog")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Directory for selection.yaml and the override header")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("firmwizard version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	config.EnsureDirs()
	if err := config.WriteDefaults(); err != nil {
		ui.Warnf("Could not write default config: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		ui.ErrorNoExit(err.Error())
		os.Exit(1)
	}
}
