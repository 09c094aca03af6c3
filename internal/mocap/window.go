package mocap

import "fmt"

// Windows slices a frame sequence into overlapping fixed-length windows:
// window k covers frames[k*stride : k*stride+size]. Windows are sub-slice
// views into the input, not copies; callers must not mutate the frames
// while windows are in use. Trailing frames that do not fill a whole
// window are dropped.
func Windows(frames []Frame, size, stride int) ([][]Frame, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size %d must be positive", size)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("window stride %d must be positive", stride)
	}

	var out [][]Frame
	for start := 0; start+size <= len(frames); start += stride {
		out = append(out, frames[start:start+size])
	}
	return out, nil
}

// Downsample keeps every factor-th frame starting from the first. The
// returned slice is new but the retained frames still share their payload
// arrays with the input. A factor of 1 selects every frame.
func Downsample(frames []Frame, factor int) ([]Frame, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("downsample factor %d must be positive", factor)
	}

	out := make([]Frame, 0, (len(frames)+factor-1)/factor)
	for i := 0; i < len(frames); i += factor {
		out = append(out, frames[i])
	}
	return out, nil
}
