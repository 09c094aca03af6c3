package mocap

import (
	"fmt"
	"strings"
)

// Segments lists the 23 body segments in MVN export order. A segment's
// ordinal position determines where its quaternion sits in the flat
// orientation array (ordinal * SegmentWidth).
var Segments = []string{
	"Pelvis",
	"L5",
	"L3",
	"T12",
	"T8",
	"Neck",
	"Head",
	"RightShoulder",
	"RightUpperArm",
	"RightForearm",
	"RightHand",
	"LeftShoulder",
	"LeftUpperArm",
	"LeftForearm",
	"LeftHand",
	"RightUpperLeg",
	"RightLowerLeg",
	"RightFoot",
	"RightToe",
	"LeftUpperLeg",
	"LeftLowerLeg",
	"LeftFoot",
	"LeftToe",
}

// Joints lists the 22 joints in MVN export order. A joint's ordinal
// position determines where its angle triple sits in the flat joint-angle
// array (ordinal * JointWidth).
var Joints = []string{
	"jL5S1",
	"jL4L3",
	"jL1T12",
	"jT9T8",
	"jT1C7",
	"jC1Head",
	"jRightT4Shoulder",
	"jRightShoulder",
	"jRightElbow",
	"jRightWrist",
	"jLeftT4Shoulder",
	"jLeftShoulder",
	"jLeftElbow",
	"jLeftWrist",
	"jRightHip",
	"jRightKnee",
	"jRightAnkle",
	"jRightBallFoot",
	"jLeftHip",
	"jLeftKnee",
	"jLeftAnkle",
	"jLeftBallFoot",
}

// JointOffset resolves a joint label to its 0-based start offset in the
// flat joint-angle array. Matching is case-insensitive and tolerates a
// missing leading "j".
func JointOffset(name string) (int, error) {
	for i, j := range Joints {
		if equalLabel(name, j) || equalLabel("j"+name, j) {
			return i * JointWidth, nil
		}
	}
	return 0, fmt.Errorf("unknown joint %q (valid: %s)", name, strings.Join(Joints, ", "))
}

// SegmentOffset resolves a segment label to its 0-based start offset in the
// flat orientation array. Matching is case-insensitive.
func SegmentOffset(name string) (int, error) {
	for i, s := range Segments {
		if equalLabel(name, s) {
			return i * SegmentWidth, nil
		}
	}
	return 0, fmt.Errorf("unknown segment %q (valid: %s)", name, strings.Join(Segments, ", "))
}

func equalLabel(a, b string) bool {
	return strings.EqualFold(a, b)
}

// JointAnglesByName extracts the angle triple for the named joint across
// the first frameCount frames.
func JointAnglesByName(frames []Frame, frameCount int, name string) (Matrix, error) {
	offset, err := JointOffset(name)
	if err != nil {
		return nil, err
	}
	return JointAngles(frames, frameCount, offset)
}

// SegmentOrientationsByName extracts the quaternion for the named segment
// across the first frameCount frames.
func SegmentOrientationsByName(frames []Frame, frameCount int, name string) (Matrix, error) {
	offset, err := SegmentOffset(name)
	if err != nil {
		return nil, err
	}
	return SegmentOrientations(frames, frameCount, offset)
}
