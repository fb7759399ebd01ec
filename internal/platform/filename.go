// SPDX-License-Identifier: MPL-2.0

// Package platform checks names that become files or directories on any of
// the platforms the asset catalog is shared across.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

// portableUnsafeChars cannot appear in Windows file names.
const portableUnsafeChars = `<>:"|?*`

// reservedNames are device names Windows reserves regardless of extension.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// ErrNonPortableName is wrapped by every CheckPortableName failure.
var ErrNonPortableName = errors.New("name is not portable")

// IsReservedName reports whether name, ignoring any extension, is a Windows
// device name such as CON or LPT1.
func IsReservedName(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.IndexByte(upper, '.'); idx != -1 {
		upper = upper[:idx]
	}
	return reservedNames[upper]
}

// CheckPortableName returns an error wrapping ErrNonPortableName when name
// cannot be used as a file name on Windows, macOS and Linux alike.
func CheckPortableName(name string) error {
	switch {
	case IsReservedName(name):
		return fmt.Errorf("%w: %q is a reserved device name", ErrNonPortableName, name)
	case strings.ContainsAny(name, portableUnsafeChars):
		return fmt.Errorf("%w: %q contains one of %s", ErrNonPortableName, name, portableUnsafeChars)
	case strings.HasSuffix(name, ".") || strings.HasSuffix(name, " "):
		return fmt.Errorf("%w: %q ends with a dot or space", ErrNonPortableName, name)
	}
	for _, r := range name {
		if r < 0x20 {
			return fmt.Errorf("%w: %q contains a control character", ErrNonPortableName, name)
		}
	}
	return nil
}
