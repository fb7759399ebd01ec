// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions selects where configuration is read from. The zero value uses
// the normal lookup: the platform config directory, then ./config.cue.
type LoadOptions struct {
	// ConfigFilePath is the --config flag value. When set, that file must
	// exist and no other location is consulted.
	ConfigFilePath string
	// ConfigDirPath replaces the platform config directory (tests use it).
	ConfigDirPath string
}

// Provider yields the effective assetkit configuration: built-in defaults,
// overlaid by the CUE file that LoadOptions resolves to (if any), overlaid by
// ASSETKIT_* environment variables.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// cueFileProvider is the Provider backed by viper and the embedded CUE schema.
type cueFileProvider struct{}

// NewProvider returns the Provider the CLI uses.
func NewProvider() Provider {
	return cueFileProvider{}
}

// Load resolves, validates and decodes the configuration. Failures are
// *issue.ActionableError values carrying remediation hints.
func (cueFileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
