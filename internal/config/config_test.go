package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/govec/internal/report"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
debug: true
output:
  format: json
  precision: 3
watch:
  debounce_ms: 50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
	opts, err := cfg.ReportOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Format != report.FormatJSON || opts.Precision != 3 {
		t.Errorf("unexpected report options: %+v", opts)
	}
	if cfg.Watch.Debounce() != 50*time.Millisecond {
		t.Errorf("unexpected debounce: %v", cfg.Watch.Debounce())
	}
}

func TestLoad_defaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "debug: false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("format should default to text, got %q", cfg.Output.Format)
	}
	if *cfg.Output.Precision != -1 {
		t.Errorf("precision should default to -1, got %d", *cfg.Output.Precision)
	}
	if cfg.Watch.DebounceMS != 300 {
		t.Errorf("debounce should default to 300ms, got %d", cfg.Watch.DebounceMS)
	}
}

func TestLoad_zeroPrecisionKept(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "output:\n  precision: 0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.Output.Precision != 0 {
		t.Errorf("explicit zero precision should be kept, got %d", *cfg.Output.Precision)
	}
}

func TestLoad_invalid(t *testing.T) {
	dir := t.TempDir()
	for _, content := range []string{
		"output:\n  format: xml\n",
		"output:\n  precision: 40\n",
		"watch:\n  debounce_ms: -5\n",
		"output: [not, a, map]\n",
	} {
		path := writeConfig(t, dir, content)
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%q) should fail", content)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	cfg, loaded, err := Resolve("", dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != "" || cfg.Output.Format != "text" {
		t.Errorf("expected defaults without a config file, got %q %+v", loaded, cfg)
	}

	path := writeConfig(t, dir, "output:\n  format: yaml\n")
	cfg, loaded, err = Resolve("", dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != path || cfg.Output.Format != "yaml" {
		t.Errorf("expected %s to be picked up, got %q %+v", path, loaded, cfg)
	}
}

func TestReportOptions_invalidFormat(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "xml"
	if _, err := cfg.ReportOptions(); err == nil {
		t.Error("expected an error for an unknown output format")
	}
}
