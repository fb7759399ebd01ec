// SPDX-License-Identifier: MPL-2.0

package imageset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DescriptorFileName is the metadata file written into every image set.
	DescriptorFileName = "Contents.json"

	// IdiomUniversal marks a variant as applicable to every device class.
	IdiomUniversal = "universal"

	// DescriptorAuthor is the authoring tool tag recorded in the info block.
	DescriptorAuthor = "xcode"
	// DescriptorVersion is the descriptor schema version.
	DescriptorVersion = 1

	dirSuffix     = ".imageset"
	payloadSuffix = ".png"
)

var (
	// ErrDirectory is the sentinel error wrapped by DirectoryError.
	ErrDirectory = errors.New("cannot create image set directory")
	// ErrDescriptorWrite is the sentinel error wrapped by DescriptorWriteError.
	ErrDescriptorWrite = errors.New("cannot write image set descriptor")

	//nolint:gochecknoglobals // Scale variants in descriptor order.
	scales = []string{"1x", "2x", "3x"}
)

type (
	// Descriptor is the Contents.json document of an image set.
	Descriptor struct {
		Images []ImageVariant `json:"images"`
		Info   Info           `json:"info"`
	}

	// ImageVariant is one scale entry. Only the 1x entry names a file.
	ImageVariant struct {
		Filename string `json:"filename,omitempty"`
		Idiom    string `json:"idiom"`
		Scale    string `json:"scale"`
	}

	// Info records which tool authored the descriptor and its schema version.
	Info struct {
		Author  string `json:"author"`
		Version int    `json:"version"`
	}

	// DirectoryError is returned when an image set directory cannot be created.
	// It usually means the destination root is not writable.
	DirectoryError struct {
		Path string
		Err  error
	}

	// DescriptorWriteError is returned when Contents.json cannot be written.
	DescriptorWriteError struct {
		Path string
		Err  error
	}
)

// DirName returns the image set directory name for an asset.
func DirName(name string) string {
	return name + dirSuffix
}

// PayloadName returns the image file name stored inside the image set.
func PayloadName(name string) string {
	return name + payloadSuffix
}

// Dir returns the image set directory for name under root.
func Dir(root, name string) string {
	return filepath.Join(root, DirName(name))
}

// NewDescriptor builds the descriptor for the asset called name.
func NewDescriptor(name string) Descriptor {
	images := make([]ImageVariant, 0, len(scales))
	for i, scale := range scales {
		v := ImageVariant{Idiom: IdiomUniversal, Scale: scale}
		if i == 0 {
			v.Filename = PayloadName(name)
		}
		images = append(images, v)
	}

	return Descriptor{
		Images: images,
		Info:   Info{Author: DescriptorAuthor, Version: DescriptorVersion},
	}
}

// Marshal renders the descriptor as two-space indented JSON with a trailing newline.
func (d Descriptor) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding descriptor: %w", err)
	}
	return append(data, '\n'), nil
}

// EnsureDir creates the image set directory for name under root, along with
// any missing ancestors, and returns its path.
func EnsureDir(root, name string) (string, error) {
	dir := Dir(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &DirectoryError{Path: dir, Err: err}
	}
	return dir, nil
}

// WriteDescriptor writes the Contents.json for name into dir, replacing any
// existing descriptor.
func WriteDescriptor(dir, name string) (string, error) {
	path := filepath.Join(dir, DescriptorFileName)

	data, err := NewDescriptor(name).Marshal()
	if err != nil {
		return "", &DescriptorWriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &DescriptorWriteError{Path: path, Err: err}
	}
	return path, nil
}

// Error implements the error interface.
func (e *DirectoryError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrDirectory, e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *DirectoryError) Unwrap() []error { return []error{ErrDirectory, e.Err} }

// Error implements the error interface.
func (e *DescriptorWriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrDescriptorWrite, e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *DescriptorWriteError) Unwrap() []error { return []error{ErrDescriptorWrite, e.Err} }
