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

package features

// BuiltinDescriptors defines the firmware features offered when no custom
// catalog is configured.
var BuiltinDescriptors = []Descriptor{
	{
		Name:        "USE_WEBSERVER",
		Description: "Web server and configuration UI",
		Value:       true,
		Show:        false,
	},
	{
		Name:        "USE_RULES",
		Description: "Rules engine",
		Value:       true,
		Show:        true,
		Exclude:     []string{"USE_SCRIPT"},
	},
	{
		Name:        "USE_SCRIPT",
		Description: "Scripting language (replaces rules)",
		Value:       false,
		Show:        true,
		Exclude:     []string{"USE_RULES", "USE_BERRY"},
		Custom:      "#define USE_SCRIPT\n#undef USE_RULES",
	},
	{
		Name:        "USE_BERRY",
		Description: "Berry scripting (ESP32 only)",
		Value:       false,
		Show:        true,
		Exclude:     []string{"USE_SCRIPT"},
		Custom:      "#define USE_BERRY",
		BuildFlag:   "-DUSE_BERRY",
	},
	{
		Name:        "USE_EMULATION",
		Description: "Belkin WeMo and Hue bridge emulation",
		Value:       true,
		Show:        true,
		Group:       []string{"USE_EMULATION_HUE", "USE_EMULATION_WEMO"},
	},
	{
		Name:        "USE_DOMOTICZ",
		Description: "Domoticz integration",
		Value:       true,
		Show:        true,
	},
	{
		Name:        "USE_HOME_ASSISTANT",
		Description: "Home Assistant discovery",
		Value:       true,
		Show:        true,
	},
	{
		Name:        "USE_I2C",
		Description: "I2C bus and common sensors",
		Value:       true,
		Show:        true,
		Group:       []string{"USE_SHT", "USE_HTU", "USE_BMP", "USE_BH1750"},
	},
	{
		Name:        "USE_SPI",
		Description: "SPI bus",
		Value:       false,
		Show:        true,
	},
	{
		Name:        "USE_DISPLAY",
		Description: "Display drivers (enables I2C and SPI)",
		Value:       false,
		Show:        true,
		Group:       []string{"USE_DISPLAY_MODES1TO5", "USE_DISPLAY_SSD1306"},
		Include:     []string{"USE_I2C", "USE_SPI"},
		Custom:      "#define USE_DISPLAY\n#define USE_DISPLAY_SSD1306",
	},
	{
		Name:        "USE_IR_REMOTE",
		Description: "Infrared send and receive",
		Value:       true,
		Show:        true,
		Group:       []string{"USE_IR_RECEIVE"},
	},
	{
		Name:        "USE_IR_REMOTE_FULL",
		Description: "All infrared protocols (large)",
		Value:       false,
		Show:        true,
		Include:     []string{"USE_IR_REMOTE"},
		Custom:      "#define USE_IR_REMOTE_FULL",
		BuildFlag:   "-DUSE_IR_REMOTE_FULL",
	},
	{
		Name:        "USE_ZIGBEE",
		Description: "Zigbee coordinator (CC2530 / ZNP)",
		Value:       false,
		Show:        true,
		Group:       []string{"USE_ZIGBEE_ZNP"},
		Custom:      "#define USE_ZIGBEE\n#define USE_ZIGBEE_ZNP",
	},
	{
		Name:        "FIRMWARE_MINIMAL",
		Description: "Minimal image for two-step OTA upgrades",
		Value:       false,
		Show:        true,
		Exclude: []string{
			"USE_RULES", "USE_SCRIPT", "USE_BERRY", "USE_EMULATION", "USE_DOMOTICZ",
			"USE_HOME_ASSISTANT", "USE_I2C", "USE_SPI", "USE_DISPLAY", "USE_IR_REMOTE",
			"USE_IR_REMOTE_FULL", "USE_ZIGBEE",
		},
		BuildFlag: "-DFIRMWARE_MINIMAL",
	},
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return MustCatalog(BuiltinDescriptors)
}
