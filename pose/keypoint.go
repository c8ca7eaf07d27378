package pose

import (
	"image"
	"math"
)

// MaxCoord is the largest pixel coordinate magnitude Point returns.  OpenCV
// drawing takes 32 bit coordinates and shifts them for sub pixel precision,
// so larger values would wrap around back onto the image.
const MaxCoord = 1 << 24

// Keypoint is a single 2D joint coordinate in image pixel space
type Keypoint struct {
	X float64
	Y float64
}

// Point returns the keypoint as integer pixel coordinates.  Fractional parts
// are truncated toward zero and values are clamped to +/-MaxCoord.
func (k Keypoint) Point() image.Point {
	return image.Pt(clampCoord(k.X), clampCoord(k.Y))
}

// clampCoord converts v to an int within +/-MaxCoord, NaN becomes 0
func clampCoord(v float64) int {

	if math.IsNaN(v) {
		return 0
	}

	return int(math.Max(-MaxCoord, math.Min(MaxCoord, v)))
}

// Frame is one time step of the sequence.  The position of a Keypoint in
// Keypoints is the joint index it represents.
type Frame struct {
	Index     int
	Keypoints []Keypoint
}
