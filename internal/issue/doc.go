// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and the catalog of user-facing
// issue pages assetkit renders when a run cannot complete cleanly.
//
// ActionableError carries the failed operation, the resource involved and
// suggested remediation steps. Issue pages are Markdown rendered for the
// terminal with glamour.
package issue
