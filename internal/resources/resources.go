// Package resources bundles the default settings resource into the binary.
package resources

import "embed"

// SettingsPath is the well-known location of the settings resource inside FS.
const SettingsPath = "settings.properties"

// FS holds the bundled resources.
//
//go:embed settings.properties
var FS embed.FS
