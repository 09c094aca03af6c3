// Package mocap provides in-memory types and transformations for
// motion-capture frame sequences exported from an XSens MVN suit.
//
// A capture session is an ordered slice of Frame records, one per time
// sample. Each frame carries flat arrays of per-joint angles and per-segment
// orientation quaternions in the fixed MVN export layout. The package
// extracts dense frames-by-width matrices for a single joint or segment,
// and offers windowing, downsampling and channel summaries over them.
package mocap

// JointWidth is the number of values describing one joint per frame
// (flexion, abduction, extension, in degrees).
const JointWidth = 3

// SegmentWidth is the number of values describing one segment orientation
// per frame (quaternion w, x, y, z).
const SegmentWidth = 4

// Frame is one time-sampled record of motion-capture data. The slices hold
// the capture format's flat per-frame layout: JointAngle concatenates
// 3-value angle triples for every joint, Orientation concatenates 4-value
// quaternions for every segment.
type Frame struct {
	// Index is the frame's ordinal in the capture, as exported.
	Index int `json:"index"`

	// TimeMS is the frame timestamp in milliseconds since capture start.
	TimeMS int64 `json:"time_ms"`

	// JointAngle holds flexion/abduction/extension triples in degrees,
	// one triple per joint, in MVN joint order.
	JointAngle []float64 `json:"joint_angle"`

	// Orientation holds w,x,y,z quaternions, one per body segment, in
	// MVN segment order.
	Orientation []float64 `json:"orientation"`
}
