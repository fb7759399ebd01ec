// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover filesystem setup (MustMkdirAll, MustWriteFile) and an
// in-process asset server (NewAssetServer) that stands in for the remote
// image host.
package testutil
