// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/assetkit/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/assetkit/config.cue on macOS, %APPDATA%\assetkit\config.cue
// on Windows), falling back to ./config.cue. Every key can be overridden with an
// ASSETKIT_-prefixed environment variable (ASSETKIT_DESTINATION, ASSETKIT_FETCH_TIMEOUT).
//
// The file is validated against an embedded CUE schema (config_schema.cue) before it is
// merged into Viper. The asset list itself is not configurable.
package config
