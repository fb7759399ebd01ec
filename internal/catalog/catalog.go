// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/indiebuilderkit/assetkit/internal/platform"
)

// ErrInvalidCatalog is the sentinel error wrapped by InvalidCatalogError.
var ErrInvalidCatalog = errors.New("invalid asset catalog")

type (
	// AssetSpec names a single image asset and the URL it is fetched from.
	AssetSpec struct {
		// Name identifies the asset and becomes the image set and payload file name.
		Name string
		// Source is the absolute http(s) URL of the PNG payload.
		Source string
	}

	// InvalidCatalogError collects every problem found by Validate.
	// It wraps ErrInvalidCatalog for errors.Is() compatibility.
	InvalidCatalogError struct {
		FieldErrors []error
	}
)

//nolint:gochecknoglobals // Built-in asset list; exposed only through Default().
var defaultAssets = []AssetSpec{
	{Name: "onboarding_1", Source: "http://localhost:3845/assets/a7d6c61a97821259b55cf7d7e90e07ed5fe2e54f.png"},
	{Name: "onboarding_2", Source: "http://localhost:3845/assets/2e27449434f55be32d72ecec80335ba926455e8d.png"},
	{Name: "onboarding_3", Source: "http://localhost:3845/assets/1d28f6dbc852285c086120dc3c37193d78502682.png"},
	{Name: "icon_robot", Source: "http://localhost:3845/assets/91f6e38c2193af221cbd17ea26bd270f5292190f.png"},
}

// Default returns a copy of the built-in asset list in provisioning order.
func Default() []AssetSpec {
	return slices.Clone(defaultAssets)
}

// Error implements the error interface.
func (e *InvalidCatalogError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("%s: %v", ErrInvalidCatalog, e.FieldErrors[0])
	}
	return fmt.Sprintf("%s: %d problems", ErrInvalidCatalog, len(e.FieldErrors))
}

// Unwrap returns ErrInvalidCatalog so callers can use errors.Is.
func (e *InvalidCatalogError) Unwrap() error { return ErrInvalidCatalog }

// Validate returns nil if the asset has a usable name and an absolute http(s) source.
func (s AssetSpec) Validate() error {
	var errs []error
	switch {
	case strings.TrimSpace(s.Name) == "":
		errs = append(errs, errors.New("asset name must not be empty"))
	case strings.ContainsAny(s.Name, `/\`) || strings.Contains(s.Name, ".."):
		errs = append(errs, fmt.Errorf("asset name %q must not contain path separators or '..'", s.Name))
	default:
		if err := platform.CheckPortableName(s.Name); err != nil {
			errs = append(errs, fmt.Errorf("asset name: %w", err))
		}
	}

	u, err := url.Parse(s.Source)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("asset %q: invalid source URL: %w", s.Name, err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("asset %q: source %q must use http or https", s.Name, s.Source))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("asset %q: source %q has no host", s.Name, s.Source))
	}

	return errors.Join(errs...)
}

// Validate checks every spec and rejects duplicate names. All problems are
// reported together in a single *InvalidCatalogError.
func Validate(specs []AssetSpec) error {
	var fieldErrs []error
	seen := make(map[string]int, len(specs))

	for i, s := range specs {
		if err := s.Validate(); err != nil {
			fieldErrs = append(fieldErrs, fmt.Errorf("assets[%d]: %w", i, err))
		}
		if first, dup := seen[s.Name]; dup {
			fieldErrs = append(fieldErrs, fmt.Errorf("assets[%d]: duplicate name %q (same as assets[%d])", i, s.Name, first))
			continue
		}
		seen[s.Name] = i
	}

	if len(fieldErrs) > 0 {
		return &InvalidCatalogError{FieldErrors: fieldErrs}
	}
	return nil
}
