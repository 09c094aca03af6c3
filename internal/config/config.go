package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/motion.report/internal/units"
)

// ServiceConfig represents the root configuration for the service.
// All fields are pointers so a partial JSON file only overrides what it
// names; omitted fields keep their defaults.
type ServiceConfig struct {
	// Listen is the HTTP listen address.
	Listen *string `json:"listen,omitempty"`

	// DBPath is the sqlite database file.
	DBPath *string `json:"db_path,omitempty"`

	// MigrationsDir holds the golang-migrate SQL files.
	MigrationsDir *string `json:"migrations_dir,omitempty"`

	// Units is the default output unit for joint angles ("deg" or "rad").
	Units *string `json:"units,omitempty"`

	// SampleRateHz is the capture sample rate assumed when a frame dump
	// does not carry one.
	SampleRateHz *float64 `json:"sample_rate_hz,omitempty"`

	// DevFixture is the frame dump loaded at startup in dev mode.
	DevFixture *string `json:"dev_fixture,omitempty"`
}

// Helper functions to create pointers
func ptrString(v string) *string    { return &v }
func ptrFloat64(v float64) *float64 { return &v }

// Defaults returns a fully populated ServiceConfig.
func Defaults() *ServiceConfig {
	return &ServiceConfig{
		Listen:        ptrString(":8080"),
		DBPath:        ptrString("motion_data.db"),
		MigrationsDir: ptrString("migrations"),
		Units:         ptrString(units.DEG),
		SampleRateHz:  ptrFloat64(60),
		DevFixture:    ptrString("fixtures/capture.json"),
	}
}

// Load reads a ServiceConfig from a JSON file and overlays it on the
// defaults. The file is validated to ensure it has a .json extension and
// is under the max file size, so partial configs are safe.
func Load(path string) (*ServiceConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var overrides ServiceConfig
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Defaults()
	cfg.Merge(&overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays non-nil fields of other onto c.
func (c *ServiceConfig) Merge(other *ServiceConfig) {
	if other == nil {
		return
	}
	if other.Listen != nil {
		c.Listen = other.Listen
	}
	if other.DBPath != nil {
		c.DBPath = other.DBPath
	}
	if other.MigrationsDir != nil {
		c.MigrationsDir = other.MigrationsDir
	}
	if other.Units != nil {
		c.Units = other.Units
	}
	if other.SampleRateHz != nil {
		c.SampleRateHz = other.SampleRateHz
	}
	if other.DevFixture != nil {
		c.DevFixture = other.DevFixture
	}
}

// Validate checks semantic constraints on a merged config.
func (c *ServiceConfig) Validate() error {
	if c.Units != nil && !units.IsValid(*c.Units) {
		return fmt.Errorf("invalid units %q (valid: %s)", *c.Units, units.GetValidUnitsString())
	}
	if c.SampleRateHz != nil && *c.SampleRateHz <= 0 {
		return fmt.Errorf("sample_rate_hz must be positive, got %v", *c.SampleRateHz)
	}
	return nil
}
