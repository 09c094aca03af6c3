package mocap

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChannelSummary describes one column of an extracted matrix.
type ChannelSummary struct {
	Column int     `json:"column"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	// Range is max - min; for joint angles this is the range of motion
	// over the extracted frames.
	Range float64 `json:"range"`
}

// Summarize computes per-column statistics over an extracted matrix.
// It returns an error for an empty matrix rather than NaN-filled summaries.
func Summarize(m Matrix) ([]ChannelSummary, error) {
	rows, cols := m.Dims()
	if rows == 0 {
		return nil, fmt.Errorf("cannot summarize empty matrix")
	}

	out := make([]ChannelSummary, cols)
	for j := 0; j < cols; j++ {
		col := m.Col(j)
		min := floats.Min(col)
		max := floats.Max(col)
		mean, std := stat.MeanStdDev(col, nil)
		if rows == 1 {
			// StdDev of a single sample is NaN under the unbiased
			// estimator; report zero spread instead.
			std = 0
		}
		out[j] = ChannelSummary{
			Column: j,
			Min:    min,
			Max:    max,
			Mean:   mean,
			StdDev: std,
			Range:  max - min,
		}
	}
	return out, nil
}
