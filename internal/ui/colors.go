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
// Package ui provides terminal output: colors and leveled log lines.
package ui

import (
	"os"

	"golang.org/x/term"
)

// ANSI color codes.
var (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[0;33m"
	Cyan   = "\033[0;36m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	NC     = "\033[0m" // No Color / Reset
)

func init() {
	SetColor(colorEnabled(os.Getenv("NO_COLOR"), term.IsTerminal(int(os.Stdout.Fd()))))
}

// colorEnabled reports whether output should be colored. Any non-empty
// NO_COLOR disables color (https://no-color.org).
func colorEnabled(noColor string, tty bool) bool {
	return noColor == "" && tty
}

// SetColor switches the color codes on or off.
func SetColor(on bool) {
	if !on {
		Red, Green, Yellow, Cyan, Bold, Dim, NC = "", "", "", "", "", "", ""
		return
	}
	Red = "\033[0;31m"
	Green = "\033[0;32m"
	Yellow = "\033[0;33m"
	Cyan = "\033[0;36m"
	Bold = "\033[1m"
	Dim = "\033[2m"
	NC = "\033[0m"
}
