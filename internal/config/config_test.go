// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/indiebuilderkit/assetkit/internal/issue"
	"github.com/indiebuilderkit/assetkit/internal/testutil"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, path, []byte(content))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Destination != DefaultDestination {
		t.Errorf("expected default destination %q, got %q", DefaultDestination, cfg.Destination)
	}
	if cfg.Fetch.Timeout != 30*time.Second {
		t.Errorf("expected default fetch timeout 30s, got %s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.UserAgent != "assetkit/dev" {
		t.Errorf("expected default user agent assetkit/dev, got %q", cfg.Fetch.UserAgent)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got: %v", err)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("expected no resolved config path, got %q", path)
	}
	if cfg.Destination != DefaultDestination {
		t.Errorf("expected default destination, got %q", cfg.Destination)
	}
	if cfg.Fetch.Timeout != DefaultFetchTimeout {
		t.Errorf("expected default timeout, got %s", cfg.Fetch.Timeout)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfig(t, dir, `
destination: "/tmp/out/Assets.xcassets"
fetch: {
	timeout:    "1m30s"
	user_agent: "assetkit/test"
}
ui: {
	color_scheme: "dark"
	verbose:      true
}
`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.Destination != "/tmp/out/Assets.xcassets" {
		t.Errorf("Destination = %q", cfg.Destination)
	}
	if cfg.Fetch.Timeout != 90*time.Second {
		t.Errorf("Fetch.Timeout = %s, want 1m30s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.UserAgent != "assetkit/test" {
		t.Errorf("Fetch.UserAgent = %q", cfg.Fetch.UserAgent)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("UI = %+v, want dark/verbose", cfg.UI)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `destination: "elsewhere"`+"\n")

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Destination != "elsewhere" {
		t.Errorf("Destination = %q, want %q", cfg.Destination, "elsewhere")
	}
	if cfg.Fetch.Timeout != DefaultFetchTimeout {
		t.Errorf("Fetch.Timeout = %s, want default", cfg.Fetch.Timeout)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %s, want auto", cfg.UI.ColorScheme)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", `sources: {}`},
		{"bad color scheme", `ui: color_scheme: "neon"`},
		{"bad timeout", `fetch: timeout: "soon"`},
		{"empty destination", `destination: ""`},
		{"syntax error", `destination: "unterminated`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := writeConfig(t, dir, tt.content+"\n")

			_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *issue.ActionableError, got %T", err)
			}
			if ae.Resource != path {
				t.Errorf("Resource = %q, want %q", ae.Resource, path)
			}
			if len(ae.Suggestions) == 0 {
				t.Error("expected suggestions on config load error")
			}
		})
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ExplicitFileWins(t *testing.T) {
	t.Parallel()

	dirCfg := t.TempDir()
	writeConfig(t, dirCfg, `destination: "from-dir"`+"\n")
	explicit := writeConfig(t, t.TempDir(), `destination: "from-flag"`+"\n")

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: explicit, ConfigDirPath: dirCfg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != explicit || cfg.Destination != "from-flag" {
		t.Errorf("got %q from %q, want from-flag from %q", cfg.Destination, path, explicit)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := loadWithOptions(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ASSETKIT_DESTINATION", "/env/Assets.xcassets")
	t.Setenv("ASSETKIT_FETCH_TIMEOUT", "5s")

	dir := t.TempDir()
	writeConfig(t, dir, `destination: "from-file"`+"\n")

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Destination != "/env/Assets.xcassets" {
		t.Errorf("Destination = %q, want env override", cfg.Destination)
	}
	if cfg.Fetch.Timeout != 5*time.Second {
		t.Errorf("Fetch.Timeout = %s, want 5s", cfg.Fetch.Timeout)
	}
}

func TestLoad_EnvOverrideInvalid(t *testing.T) {
	t.Setenv("ASSETKIT_UI_COLOR_SCHEME", "neon")

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err == nil {
		t.Fatal("expected validation error for invalid env override")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got: %v", err)
	}
}

func TestProvider_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `ui: verbose: true`+"\n")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("expected verbose from config file")
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	want := DefaultConfig()
	want.Destination = "/tmp/x/Assets.xcassets"
	want.Fetch.Timeout = 2 * time.Minute
	want.UI.Verbose = true

	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(want))

	got, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated CUE should load, got: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", *got, *want)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "assetkit")
	path, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("path = %q", path)
	}

	// An existing file is left alone.
	testutil.MustWriteFile(t, path, []byte(`destination: "custom"`+"\n"))
	if _, err := CreateDefaultConfig(dir); err != nil {
		t.Fatalf("second call: %v", err)
	}
	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Destination != "custom" {
		t.Errorf("existing config was overwritten, destination = %q", cfg.Destination)
	}
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
}

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if err := cs.Validate(); err != nil {
			t.Errorf("%s should be valid, got: %v", cs, err)
		}
	}

	err := ColorScheme("neon").Validate()
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("expected ErrInvalidColorScheme, got: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := &Config{Destination: " ", Fetch: FetchConfig{Timeout: -time.Second}, UI: UIConfig{ColorScheme: "neon"}}
	err := cfg.Validate()

	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", err)
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	if cfgErr.Error() != "invalid config: 3 field errors" {
		t.Errorf("Error() = %q", cfgErr.Error())
	}
}
