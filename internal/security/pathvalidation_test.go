package security

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePathWithinDirectory(t *testing.T) {
	safeDir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"file inside dir", filepath.Join(safeDir, "plot.png"), false},
		{"nested file inside dir", filepath.Join(safeDir, "a", "b", "plot.png"), false},
		{"dot components collapse inside", filepath.Join(safeDir, "a", "..", "plot.png"), false},
		{"parent escape", filepath.Join(safeDir, "..", "escape.png"), true},
		{"deep parent escape", filepath.Join(safeDir, "a", "..", "..", "escape.png"), true},
		{"absolute path outside", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathWithinDirectory(tt.path, safeDir)
			if tt.wantErr && err == nil {
				t.Errorf("ValidatePathWithinDirectory(%q) = nil, want error", tt.path)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePathWithinDirectory(%q) = %v, want nil", tt.path, err)
			}
		})
	}
}

func TestValidatePathSymlinkEscape(t *testing.T) {
	safeDir := t.TempDir()
	outside := t.TempDir()

	link := filepath.Join(safeDir, "link")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	if err := ValidatePathWithinDirectory(filepath.Join(link, "file.png"), safeDir); err == nil {
		t.Error("expected error for symlink escaping the safe directory")
	}
}
