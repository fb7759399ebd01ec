// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/indiebuilderkit/assetkit/internal/catalog"
	"github.com/indiebuilderkit/assetkit/internal/fetch"
	"github.com/indiebuilderkit/assetkit/internal/imageset"
	"github.com/indiebuilderkit/assetkit/internal/issue"
	"github.com/indiebuilderkit/assetkit/internal/provision"
)

// provisionParams bundles the dependencies and resolved settings for one
// provisioning run, so runProvision can be tested without Cobra.
type provisionParams struct {
	stdout      io.Writer
	stderr      io.Writer
	provisioner *provision.Provisioner
	assets      []catalog.AssetSpec
	dest        string
	verbose     bool
	style       string // glamour style for issue pages
	render      func(id issue.Id, style string)
}

func newProvisionCommand(app *App, flags *rootFlags) *cobra.Command {
	var (
		dest    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Download every asset and write its image set",
		Long: `Download every asset and write its image set.

Assets are processed one at a time, in order. An asset whose download fails
is logged and skipped; its image set gets no Contents.json. If an image set
directory cannot be created the run stops with exit status 1.

Existing payloads and descriptors are overwritten in place.`,
		Example: `  # Provision into the configured catalog
  assetkit provision

  # Provision into another catalog with a longer timeout
  assetkit provision --dest ios/Assets.xcassets --timeout 2m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}

			if dest == "" {
				dest = cfg.Destination
			}
			if timeout <= 0 {
				timeout = cfg.Fetch.Timeout
			}
			verbose := flags.verbose || cfg.UI.Verbose

			fetcher := app.Fetcher
			if fetcher == nil {
				fetcher = fetch.NewClient(
					fetch.WithTimeout(timeout),
					fetch.WithUserAgent(cfg.Fetch.UserAgent),
				)
			}

			return runProvision(cmd.Context(), provisionParams{
				stdout: app.stdout,
				stderr: app.stderr,
				provisioner: provision.New(
					provision.WithFetcher(fetcher),
					provision.WithLogger(newLogger(app, verbose)),
				),
				assets:  app.Assets,
				dest:    dest,
				verbose: verbose,
				style:   issueStyle(cfg),
				render:  app.renderIssue,
			})
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "asset catalog to provision into (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-asset download timeout (default from config)")

	return cmd
}

// runProvision validates the asset list, runs the provisioner and prints a
// summary. Per-asset failures leave the exit status at zero.
func runProvision(ctx context.Context, p provisionParams) error {
	if err := catalog.Validate(p.assets); err != nil {
		p.render(issue.InvalidCatalogId, p.style)
		return &ExitError{Code: ExitConfig, Err: err}
	}

	report, err := p.provisioner.Provision(ctx, p.assets, p.dest)
	printSummary(p.stdout, report)

	if err != nil {
		if errors.Is(err, imageset.ErrDirectory) {
			p.render(issue.DestinationUnwritableId, p.style)
		}
		aerr := issue.NewErrorContext().
			WithOperation("provision assets").
			WithResource(p.dest).
			Wrap(err).
			Build()
		if p.verbose {
			fmt.Fprintln(p.stderr, aerr.Format(true))
		}
		return &ExitError{Code: ExitAborted, Err: aerr}
	}

	if report.Failed() > 0 {
		if p.verbose {
			for _, o := range report.Outcomes {
				if o.OK() {
					continue
				}
				fmt.Fprintln(p.stderr, issue.WrapWithContext(o.Err, outcomeOperation(o.Status), o.Name).Format(true))
			}
			for _, id := range failureIssues(report) {
				p.render(id, p.style)
			}
		} else {
			fmt.Fprintln(p.stderr, SubtitleStyle.Render("Run with --verbose for troubleshooting tips."))
		}
	}

	return nil
}

// printSummary writes one line per attempted asset followed by the totals.
func printSummary(w io.Writer, report *provision.Report) {
	if report == nil {
		return
	}

	for _, o := range report.Outcomes {
		switch o.Status {
		case provision.StatusProvisioned:
			fmt.Fprintf(w, "%s %s %s\n", SuccessStyle.Render("✓"), assetNameStyle.Render(o.Name),
				SubtitleStyle.Render(fmt.Sprintf("%s (%d bytes)", o.Dir, o.Bytes)))
		default:
			fmt.Fprintf(w, "%s %s %s\n", ErrorStyle.Render("✗"), assetNameStyle.Render(o.Name),
				WarningStyle.Render(o.Status.String()))
		}
	}

	total := len(report.Outcomes)
	line := fmt.Sprintf("Provisioned %d of %d assets into %s", report.Provisioned(), total, report.Root)
	if report.Failed() > 0 {
		fmt.Fprintln(w, WarningStyle.Render(line))
		return
	}
	fmt.Fprintln(w, SuccessStyle.Render(line))
}

// outcomeOperation names the step that failed for a non-provisioned outcome.
func outcomeOperation(s provision.Status) string {
	if s == provision.StatusDescriptorFailed {
		return "write descriptor"
	}
	return "fetch asset"
}

// failureIssues returns the issue pages relevant to the failures in report.
func failureIssues(report *provision.Report) []issue.Id {
	var fetchFailed, descriptorFailed bool
	for _, o := range report.Outcomes {
		switch o.Status {
		case provision.StatusFetchFailed:
			fetchFailed = true
		case provision.StatusDescriptorFailed:
			descriptorFailed = true
		case provision.StatusProvisioned:
		}
	}

	var ids []issue.Id
	if fetchFailed {
		ids = append(ids, issue.FetchFailedId)
	}
	if descriptorFailed {
		ids = append(ids, issue.DescriptorWriteFailedId)
	}
	return ids
}
