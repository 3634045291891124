// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping stein.
package boot

import _ "embed" // Blank import required by embed.

// Name is the file name reported for locations in the boot script.
const Name = "<boot>"

//go:embed boot.st
var script string //nolint:gochecknoglobals

// Script returns the boot script for stein.
func Script() string {
	return script
}
