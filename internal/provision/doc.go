// SPDX-License-Identifier: MPL-2.0

// Package provision materializes image assets as asset catalog image sets.
//
// The main entry point is Provisioner. It walks an ordered list of assets one
// at a time and, for each, creates the image set directory, fetches the payload
// and writes the Contents.json descriptor:
//
//	p := provision.New(provision.WithLogger(logger))
//	report, err := p.Provision(ctx, catalog.Default(), "Assets.xcassets")
//
// A failed fetch is logged and only skips that asset. A directory that cannot
// be created aborts the whole run, since it means the destination root is not
// writable.
package provision
