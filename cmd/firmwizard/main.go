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
// firmwizard selects the features compiled into a firmware build.
//
// Usage:
//
//	firmwizard                       # interactive features step
//	firmwizard apply USE_DISPLAY     # toggle without the TUI
//	firmwizard export --format flags # print build flags for the saved selection
package main

import "github.com/cloud-exit/firmwizard/cmd"

func main() {
	cmd.Execute()
}
