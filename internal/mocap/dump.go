package mocap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dump is the on-disk JSON interchange form of an already-parsed capture:
// the frame records plus the session metadata the loader carried along.
// This is not the raw MVN export; parsing that belongs to the capture
// tooling upstream of this service.
type Dump struct {
	Label        string  `json:"label,omitempty"`
	SampleRateHz float64 `json:"sample_rate_hz,omitempty"`
	Frames       []Frame `json:"frames"`
}

// ReadDump loads a frame dump from a JSON file.
func ReadDump(path string) (*Dump, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("frame dump must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame dump: %w", err)
	}

	var d Dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse frame dump: %w", err)
	}
	return &d, nil
}

// WriteDump writes a frame dump as indented JSON.
func WriteDump(path string, d *Dump) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal frame dump: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0644); err != nil {
		return fmt.Errorf("failed to write frame dump: %w", err)
	}
	return nil
}
