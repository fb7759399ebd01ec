// SPDX-License-Identifier: MPL-2.0

// Package catalog holds the static list of image assets that assetkit provisions.
//
// The list is an ordered sequence rather than a map so that provisioning order
// is deterministic and reproducible in tests.
package catalog
