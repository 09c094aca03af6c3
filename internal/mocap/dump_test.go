package mocap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDumpRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.json")

	want := &Dump{
		Label:        "treadmill-walk",
		SampleRateHz: 60,
		Frames: []Frame{
			{Index: 0, TimeMS: 0, JointAngle: []float64{1, 2, 3}, Orientation: []float64{1, 0, 0, 0}},
			{Index: 1, TimeMS: 17, JointAngle: []float64{4, 5, 6}, Orientation: []float64{0, 1, 0, 0}},
		},
	}

	if err := WriteDump(path, want); err != nil {
		t.Fatalf("WriteDump returned error: %v", err)
	}
	got, err := ReadDump(path)
	if err != nil {
		t.Fatalf("ReadDump returned error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDumpErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("wrong extension", func(t *testing.T) {
		if _, err := ReadDump(filepath.Join(dir, "capture.mvnx")); err == nil {
			t.Error("expected error for non-json extension")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadDump(filepath.Join(dir, "missing.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadDump(path); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})
}
