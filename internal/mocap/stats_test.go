package mocap

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	m := Matrix{
		{10, 0, -5},
		{20, 0, 5},
		{30, 0, 0},
	}

	got, err := Summarize(m)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(summaries) = %d, want 3", len(got))
	}

	first := got[0]
	if first.Min != 10 || first.Max != 30 || first.Range != 20 {
		t.Errorf("column 0 min/max/range = %v/%v/%v, want 10/30/20", first.Min, first.Max, first.Range)
	}
	if math.Abs(first.Mean-20) > 1e-9 {
		t.Errorf("column 0 mean = %v, want 20", first.Mean)
	}
	if math.Abs(first.StdDev-10) > 1e-9 {
		t.Errorf("column 0 stddev = %v, want 10", first.StdDev)
	}

	constant := got[1]
	if constant.StdDev != 0 || constant.Range != 0 {
		t.Errorf("constant column stddev/range = %v/%v, want 0/0", constant.StdDev, constant.Range)
	}
}

func TestSummarizeSingleFrame(t *testing.T) {
	got, err := Summarize(Matrix{{1, 2, 3, 4}})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	for _, s := range got {
		if s.StdDev != 0 {
			t.Errorf("column %d stddev = %v, want 0 for single frame", s.Column, s.StdDev)
		}
		if s.Min != s.Max {
			t.Errorf("column %d min %v != max %v for single frame", s.Column, s.Min, s.Max)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(Matrix{}); err == nil {
		t.Error("expected error for empty matrix")
	}
}
