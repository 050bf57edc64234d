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
	"path/filepath"
	"strings"

	"github.com/cloud-exit/firmwizard/internal/features"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var supportedShells = []string{"bash", "zsh", "fish"}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell autocompletion",
	Long: `Generate autocompletion for your shell.

If no shell is specified, the current shell is detected from $SHELL.
Feature names of the active catalog complete for "firmwizard apply".`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: supportedShells,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell(os.Getenv("SHELL"))
		if len(args) > 0 {
			shell = args[0]
		}
		if err := writeCompletion(os.Stdout, shell); err != nil {
			return err
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			for _, line := range completionHints(shell) {
				fmt.Fprintln(os.Stderr, line)
			}
		}
		return nil
	},
}

// detectShell maps a login shell path to a supported shell name, defaulting
// to bash.
func detectShell(loginShell string) string {
	base := filepath.Base(loginShell)
	for _, s := range supportedShells {
		if base == s {
			return s
		}
	}
	return "bash"
}

func writeCompletion(w io.Writer, shell string) error {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
	default:
		return fmt.Errorf("unsupported shell: %s (supported: %s)", shell, strings.Join(supportedShells, ", "))
	}
	if err != nil {
		return fmt.Errorf("generating %s completion: %w", shell, err)
	}
	return nil
}

func completionHints(shell string) []string {
	switch shell {
	case "bash":
		return []string{
			"",
			"# To enable autocompletion, add this to your ~/.bashrc:",
			"#",
			"#   eval \"$(firmwizard completion bash)\"",
		}
	case "zsh":
		return []string{
			"",
			"# To enable autocompletion, add this to your ~/.zshrc:",
			"#",
			"#   eval \"$(firmwizard completion zsh)\"",
		}
	case "fish":
		return []string{
			"",
			"# To enable autocompletion, run:",
			"#",
			"#   firmwizard completion fish > ~/.config/fish/completions/firmwizard.fish",
		}
	}
	return nil
}

// completeFeatureNames offers the names of the active catalog as NAME=on|off
// arguments.
func completeFeatureNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := loadSession(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return featureCompletions(s.catalog.Descriptors(), toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func featureCompletions(descs []features.Descriptor, toComplete string) []string {
	var out []string
	if name, _, found := strings.Cut(toComplete, "="); found {
		for _, v := range []string{"on", "off"} {
			out = append(out, name+"="+v)
		}
		return out
	}
	for _, d := range descs {
		if strings.HasPrefix(d.Name, toComplete) {
			out = append(out, d.Name+"\t"+d.Description)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
