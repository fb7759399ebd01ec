// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"errors"
	"fmt"
)

const (
	// StatusProvisioned means the payload and descriptor were both written.
	StatusProvisioned Status = "provisioned"
	// StatusFetchFailed means the payload could not be fetched; no descriptor was written.
	StatusFetchFailed Status = "fetch_failed"
	// StatusDescriptorFailed means the payload was fetched but Contents.json could not be written.
	StatusDescriptorFailed Status = "descriptor_failed"
)

type (
	// Status is the final state of a single asset in a run.
	Status string

	// Outcome records what happened to one asset.
	Outcome struct {
		Name   string
		Dir    string // Image set directory
		Status Status
		Bytes  int64 // Payload bytes written, zero unless the fetch succeeded
		Err    error // Nil when Status is StatusProvisioned
	}

	// Report summarizes a provisioning run in processing order.
	Report struct {
		Root     string
		Outcomes []Outcome
	}
)

// String returns the status value.
func (s Status) String() string { return string(s) }

// OK reports whether the asset was fully provisioned.
func (o Outcome) OK() bool { return o.Status == StatusProvisioned }

// Provisioned returns the number of fully provisioned assets.
func (r *Report) Provisioned() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of assets that were attempted but not fully provisioned.
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Provisioned()
}

// Err joins the per-asset errors, each prefixed with the asset name.
// It returns nil when every attempted asset was provisioned.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Name, o.Err))
		}
	}
	return errors.Join(errs...)
}
