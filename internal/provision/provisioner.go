// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/indiebuilderkit/assetkit/internal/catalog"
	"github.com/indiebuilderkit/assetkit/internal/fetch"
	"github.com/indiebuilderkit/assetkit/internal/imageset"

	"github.com/charmbracelet/log"
)

type (
	// Provisioner fetches assets and writes their image sets sequentially.
	Provisioner struct {
		fetcher fetch.Fetcher
		logger  *log.Logger
	}

	// Option configures a Provisioner during construction.
	Option func(*Provisioner)
)

// WithFetcher overrides the fetcher used to download payloads.
func WithFetcher(f fetch.Fetcher) Option {
	return func(p *Provisioner) {
		p.fetcher = f
	}
}

// WithLogger sets the logger that receives progress lines.
func WithLogger(l *log.Logger) Option {
	return func(p *Provisioner) {
		p.logger = l
	}
}

// New creates a Provisioner. Without options it fetches with fetch.NewClient()
// and logs to stderr.
func New(opts ...Option) *Provisioner {
	p := &Provisioner{}
	for _, opt := range opts {
		opt(p)
	}
	if p.fetcher == nil {
		p.fetcher = fetch.NewClient()
	}
	if p.logger == nil {
		p.logger = NewLogger(os.Stderr)
	}
	return p
}

// NewLogger returns the progress logger used by the provisioner.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "assetkit",
	})
}

// Provision processes specs in order under root. The returned report covers
// every asset that was attempted. The error is non-nil only when the run was
// aborted: an image set directory could not be created, or ctx was canceled
// between assets. Per-asset fetch and descriptor failures are recorded in the
// report and never abort the run.
func (p *Provisioner) Provision(ctx context.Context, specs []catalog.AssetSpec, root string) (*Report, error) {
	report := &Report{Root: root}

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("provisioning canceled before %q: %w", spec.Name, err)
		}

		dir, err := imageset.EnsureDir(root, spec.Name)
		if err != nil {
			p.logger.Error("cannot create image set directory", "name", spec.Name, "error", err)
			return report, err
		}

		report.Outcomes = append(report.Outcomes, p.provisionOne(ctx, spec, dir))
	}

	p.logger.Info("provisioning complete",
		"provisioned", report.Provisioned(),
		"failed", report.Failed())

	return report, nil
}

// provisionOne fetches the payload into dir and, only if that succeeded,
// writes the descriptor next to it.
func (p *Provisioner) provisionOne(ctx context.Context, spec catalog.AssetSpec, dir string) Outcome {
	out := Outcome{Name: spec.Name, Dir: dir}

	p.logger.Info("fetching", "name", spec.Name, "url", spec.Source)
	res := p.fetcher.Fetch(ctx, spec.Source, filepath.Join(dir, imageset.PayloadName(spec.Name)))
	out.Bytes = res.Bytes
	if !res.OK() {
		p.logger.Warn("fetch failed", "name", spec.Name, "error", res.Err)
		out.Status = StatusFetchFailed
		out.Err = res.Err
		return out
	}
	p.logger.Info("fetched", "name", spec.Name, "bytes", res.Bytes)
	p.logger.Debug("fetch details", "name", spec.Name, "status", res.Status, "took", res.Took, "path", res.Path)

	// The payload stays in place even if this write fails.
	path, err := imageset.WriteDescriptor(dir, spec.Name)
	if err != nil {
		p.logger.Error("descriptor write failed", "name", spec.Name, "error", err)
		out.Status = StatusDescriptorFailed
		out.Err = err
		return out
	}
	p.logger.Debug("wrote descriptor", "name", spec.Name, "path", path)

	out.Status = StatusProvisioned
	return out
}
