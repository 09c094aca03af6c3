package mocap

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports an extraction whose index or frame count does not
// fit the available data. It is wrapped with frame-level detail; use
// errors.Is to detect it.
var ErrOutOfRange = errors.New("extraction out of range")

// Matrix is a dense frames-by-width result: one row per frame, each row a
// freshly allocated copy of the requested value range. Rows never alias the
// source frame storage.
type Matrix [][]float64

// Dims returns the row and column counts. Columns are 0 for an empty
// matrix.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Col returns a copy of column j.
func (m Matrix) Col(j int) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		out[i] = row[j]
	}
	return out
}

// JointAngles copies the 3-value angle triple starting at index out of the
// first frameCount frames, producing a frameCount x 3 matrix. Row i holds
// frames[i].JointAngle[index : index+3]. The index is 0-based into the flat
// joint-angle array; for joint ordinals use JointAnglesByName or
// JointOffset.
func JointAngles(frames []Frame, frameCount, index int) (Matrix, error) {
	return extract(frames, frameCount, index, JointWidth, "joint angle", func(f *Frame) []float64 {
		return f.JointAngle
	})
}

// SegmentOrientations copies the 4-component quaternion starting at index
// out of the first frameCount frames, producing a frameCount x 4 matrix.
// Row i holds frames[i].Orientation[index : index+4]. The index is 0-based
// into the flat orientation array; for segment ordinals use
// SegmentOrientationsByName or SegmentOffset.
func SegmentOrientations(frames []Frame, frameCount, index int) (Matrix, error) {
	return extract(frames, frameCount, index, SegmentWidth, "orientation", func(f *Frame) []float64 {
		return f.Orientation
	})
}

// extract is the shared single-pass slice copy behind both extractors.
// It fails on the first frame whose source array cannot supply the
// requested range; no partial matrix is returned.
func extract(frames []Frame, frameCount, index, width int, field string, source func(*Frame) []float64) (Matrix, error) {
	if frameCount < 0 {
		return nil, fmt.Errorf("%w: frame count %d is negative", ErrOutOfRange, frameCount)
	}
	if frameCount > len(frames) {
		return nil, fmt.Errorf("%w: frame count %d exceeds %d available frames", ErrOutOfRange, frameCount, len(frames))
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: %s index %d is negative", ErrOutOfRange, field, index)
	}

	out := make(Matrix, frameCount)
	for i := 0; i < frameCount; i++ {
		src := source(&frames[i])
		if index+width > len(src) {
			return nil, fmt.Errorf("%w: %s index %d width %d exceeds %d values in frame %d",
				ErrOutOfRange, field, index, width, len(src), i)
		}
		row := make([]float64, width)
		copy(row, src[index:index+width])
		out[i] = row
	}
	return out, nil
}
