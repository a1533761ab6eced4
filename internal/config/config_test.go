package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CALGRID_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults; got %+v", cfg)
	}
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CALGRID_CONFIG_DIR", dir)

	body := "format: edn\nrender:\n  width: 1024\n  output: out.png\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "edn" || cfg.Render.Width != 1024 || cfg.Render.Output != "out.png" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Render.Height != 600 || cfg.Render.CellSize != 30 || cfg.Theme != "auto" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CALGRID_CONFIG_DIR", dir)

	for _, body := range []string{
		"format: xml\n",
		"theme: neon\n",
		"render:\n  width: 4\n",
		"render: [1, 2\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(); err == nil {
			t.Errorf("expected error for %q", body)
		} else if !strings.Contains(err.Error(), "config.yaml") {
			t.Errorf("expected error to name the file; got %v", err)
		}
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CALGRID_CONFIG_DIR", filepath.Join(dir, "nested"))

	cfg := Default()
	cfg.Theme = "dark"
	cfg.Render.DPI = 72
	path, err := Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Fatalf("unexpected path %s", path)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip:\n got: %+v\nwant: %+v", got, cfg)
	}
	ents, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Fatalf("expected only config.yaml to remain; got %d entries", len(ents))
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	t.Setenv("CALGRID_CONFIG_DIR", t.TempDir())

	cfg := Default()
	cfg.Render.Width = 0
	if _, err := Save(cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidateFormatAndTheme(t *testing.T) {
	t.Parallel()

	for _, f := range []string{"json", "edn", "EDN", " json "} {
		if err := ValidateFormat(f); err != nil {
			t.Fatalf("ValidateFormat(%q): %v", f, err)
		}
	}
	for _, f := range []string{"", "xml", "yaml"} {
		if err := ValidateFormat(f); err == nil || !strings.Contains(err.Error(), "unknown format") {
			t.Fatalf("ValidateFormat(%q) err=%v", f, err)
		}
	}

	for _, th := range []string{"auto", "light", "dark", "Dark"} {
		if err := ValidateTheme(th); err != nil {
			t.Fatalf("ValidateTheme(%q): %v", th, err)
		}
	}
	for _, th := range []string{"", "purple"} {
		if err := ValidateTheme(th); err == nil || !strings.Contains(err.Error(), "unknown theme") {
			t.Fatalf("ValidateTheme(%q) err=%v", th, err)
		}
	}
}
