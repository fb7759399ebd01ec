// SPDX-License-Identifier: MPL-2.0

// Package imageset describes the on-disk layout of an asset catalog image set
// and generates its Contents.json descriptor.
//
// For an asset named N rooted at R the layout is:
//
//	R/N.imageset/
//	    N.png
//	    Contents.json
package imageset
