// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for assetkit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/indiebuilderkit/assetkit/internal/config"
	"github.com/indiebuilderkit/assetkit/internal/issue"
	"github.com/indiebuilderkit/assetkit/internal/provision"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	verbose    bool
}

// NewRootCommand builds the assetkit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "assetkit",
		Short: "Provision design assets into an asset catalog",
		Long: TitleStyle.Render("assetkit") + SubtitleStyle.Render(" - provision design assets into an asset catalog") + `

assetkit downloads the app's image assets from the design tool's local
asset server and writes each one as an image set: a {name}.imageset
directory holding {name}.png and a Contents.json descriptor.

` + SubtitleStyle.Render("Examples:") + `
  assetkit list                     Show the assets and where they go
  assetkit provision                Provision into the configured catalog
  assetkit provision --dest DIR     Provision into another catalog
  assetkit config show              Show current configuration
  assetkit troubleshoot --list      List known problems and their fixes`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/assetkit/config.cue)")

	rootCmd.AddCommand(newProvisionCommand(app, flags))
	rootCmd.AddCommand(newListCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))
	rootCmd.AddCommand(newTroubleshootCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes the CLI with os.Args and returns the process exit code.
func Run() int {
	return run(context.Background(), NewApp(Dependencies{}))
}

func run(ctx context.Context, app *App) int {
	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	err := fang.Execute(
		ctx,
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitAborted
}

// newLogger returns the progress logger, at debug level when verbose.
func newLogger(app *App, verbose bool) *log.Logger {
	logger := provision.NewLogger(app.stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// issueStyle maps the configured color scheme to a glamour style name.
func issueStyle(cfg *config.Config) string {
	if cfg == nil || cfg.UI.ColorScheme == "" {
		return string(config.ColorSchemeAuto)
	}
	return string(cfg.UI.ColorScheme)
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their own formatting, which includes the error chain when verbose.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
