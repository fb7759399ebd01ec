// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/indiebuilderkit/assetkit/internal/catalog"
	"github.com/indiebuilderkit/assetkit/internal/config"
	"github.com/indiebuilderkit/assetkit/internal/fetch"
	"github.com/indiebuilderkit/assetkit/internal/issue"
)

type (
	// App wires CLI services and shared dependencies. Every Cobra handler
	// receives an App and delegates to it.
	App struct {
		Config  ConfigProvider
		Fetcher fetch.Fetcher
		Assets  []catalog.AssetSpec
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		// Fetcher downloads payloads. When nil, each run builds a fetch.Client
		// from the loaded configuration.
		Fetcher fetch.Fetcher
		// Assets replaces the built-in asset list. Only tests set it.
		Assets []catalog.AssetSpec
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Assets == nil {
		deps.Assets = catalog.Default()
	}

	return &App{
		Config:  deps.Config,
		Fetcher: deps.Fetcher,
		Assets:  deps.Assets,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
}

// loadConfig loads configuration for a command. A load failure renders the
// ConfigLoadFailed issue and is returned as an ExitError; fang prints the
// error itself, so only the verbose chain is written here.
func (a *App) loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		a.renderIssue(issue.ConfigLoadFailedId, string(config.ColorSchemeAuto))
		if flags.verbose {
			fmt.Fprintln(a.stderr, formatErrorForDisplay(err, true))
		}
		return nil, &ExitError{Code: ExitConfig, Err: err}
	}
	return cfg, nil
}

// renderIssue writes the issue page for id to stderr. Rendering problems are
// not reported; the caller still returns its own error.
func (a *App) renderIssue(id issue.Id, style string) {
	page := issue.Get(id)
	if page == nil {
		return
	}
	rendered, err := page.Render(style)
	if err != nil {
		return
	}
	fmt.Fprint(a.stderr, rendered)
}
