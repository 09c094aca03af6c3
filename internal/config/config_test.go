package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadPartialConfig(t *testing.T) {
	path := writeConfig(t, "service.json", `{"listen": ":9999", "units": "rad"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if *cfg.Listen != ":9999" {
		t.Errorf("Listen = %q, want :9999", *cfg.Listen)
	}
	if *cfg.Units != "rad" {
		t.Errorf("Units = %q, want rad", *cfg.Units)
	}
	// Fields omitted from the file keep defaults.
	if *cfg.DBPath != "motion_data.db" {
		t.Errorf("DBPath = %q, want default motion_data.db", *cfg.DBPath)
	}
	if *cfg.SampleRateHz != 60 {
		t.Errorf("SampleRateHz = %v, want default 60", *cfg.SampleRateHz)
	}
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
	}{
		{"wrong extension", "service.yaml", `{}`},
		{"malformed json", "service.json", `{not json`},
		{"invalid units", "service.json", `{"units": "furlongs"}`},
		{"non-positive sample rate", "service.json", `{"sample_rate_hz": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.contents)
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestMergeNil(t *testing.T) {
	cfg := Defaults()
	cfg.Merge(nil)
	if *cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want default :8080", *cfg.Listen)
	}
}
