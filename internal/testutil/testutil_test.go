// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestNewAssetServer(t *testing.T) {
	t.Parallel()

	srv := NewAssetServer(t, map[string][]byte{"/a.png": []byte("png")})

	resp, err := http.Get(srv.URL + "/a.png")
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || string(body) != "png" {
		t.Errorf("got %d %q, want 200 %q", resp.StatusCode, body, "png")
	}

	resp, err = http.Get(srv.URL + "/missing.png")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("got status %d for unknown path, want 404", resp.StatusCode)
	}
}

func TestMustWriteFileAndMkdirAll(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	MustMkdirAll(t, dir, 0o755)
	path := filepath.Join(dir, "f.txt")
	MustWriteFile(t, path, []byte("hello"))

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}
