// SPDX-License-Identifier: MPL-2.0

// Package fetch downloads asset payloads over plain HTTP(S) GET and stores
// them verbatim on disk.
//
// Every fetch returns a Result value instead of an error so callers branch on
// success or failure explicitly. A failed fetch never leaves a partially
// written payload at the destination path.
package fetch
