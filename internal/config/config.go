package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"calgrid/internal/format"

	"gopkg.in/yaml.v3"
)

// Config is the global calgrid configuration (~/.calgrid/config.yaml).
type Config struct {
	// Format is the default --format for machine-readable output.
	Format string `json:"format" yaml:"format,omitempty"`
	// Theme forces the terminal palette: "auto", "light" or "dark".
	Theme  string       `json:"theme" yaml:"theme,omitempty"`
	Render RenderConfig `json:"render" yaml:"render,omitempty"`
}

// RenderConfig holds image renderer defaults.
type RenderConfig struct {
	Width  int `json:"width" yaml:"width,omitempty"`
	Height int `json:"height" yaml:"height,omitempty"`
	// DPI converts point sizes to pixels.
	DPI       float64 `json:"dpi" yaml:"dpi,omitempty"`
	TitleSize float64 `json:"titleSize" yaml:"titleSize,omitempty"`
	CellSize  float64 `json:"cellSize" yaml:"cellSize,omitempty"`
	// Output is the default image path; its extension picks the encoder.
	Output string `json:"output" yaml:"output,omitempty"`
}

func Default() Config {
	return Config{
		Format: "json",
		Theme:  "auto",
		Render: RenderConfig{
			Width:     800,
			Height:    600,
			DPI:       96,
			TitleSize: 20,
			CellSize:  30,
			Output:    "Calendar.bmp",
		},
	}
}

// withDefaults fills zero fields from Default.
func (c Config) withDefaults() Config {
	d := Default()
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.Render.Width == 0 {
		c.Render.Width = d.Render.Width
	}
	if c.Render.Height == 0 {
		c.Render.Height = d.Render.Height
	}
	if c.Render.DPI == 0 {
		c.Render.DPI = d.Render.DPI
	}
	if c.Render.TitleSize == 0 {
		c.Render.TitleSize = d.Render.TitleSize
	}
	if c.Render.CellSize == 0 {
		c.Render.CellSize = d.Render.CellSize
	}
	if c.Render.Output == "" {
		c.Render.Output = d.Render.Output
	}
	return c
}

// Themes lists the accepted theme values.
var Themes = []string{"auto", "light", "dark"}

// ValidateFormat checks an output format from any source (file, env, flag).
func ValidateFormat(f string) error {
	for _, ok := range format.Formats {
		if strings.EqualFold(strings.TrimSpace(f), ok) {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (expected %s)", f, strings.Join(format.Formats, "|"))
}

// ValidateTheme checks a terminal theme from any source (file, env, flag).
func ValidateTheme(theme string) error {
	for _, ok := range Themes {
		if strings.EqualFold(strings.TrimSpace(theme), ok) {
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q (expected %s)", theme, strings.Join(Themes, "|"))
}

func (c Config) Validate() error {
	if err := ValidateFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	r := c.Render
	if r.Width < 8 || r.Height < 8 {
		return fmt.Errorf("config: render size %dx%d is too small (minimum 8x8)", r.Width, r.Height)
	}
	if r.DPI <= 0 || r.TitleSize <= 0 || r.CellSize <= 0 {
		return errors.New("config: render dpi and font sizes must be positive")
	}
	return nil
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.calgrid).
	if v := strings.TrimSpace(os.Getenv("CALGRID_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".calgrid"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file. A missing file yields Default().
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Save writes cfg atomically and returns the path written.
func Save(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	path, err := Path()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return path, atomicWriteFile(dir, "config.yaml.*.tmp", path, b, 0o644)
}
