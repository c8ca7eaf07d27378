package render

import (
	"github.com/swdee/go-posevideo/pose"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"math"
	"strconv"
)

// drawMargin is how far outside the image, in pixels, a joint may lie and
// still have part of its marker or label visible
const drawMargin = 64

// SkeletonStyle defines the parameters used for rendering a pose skeleton
type SkeletonStyle struct {
	JointColor    color.RGBA
	JointRadius   int
	BoneColor     color.RGBA
	BoneThickness int
	// LabelFont is used to write the joint index next to each joint
	LabelFont Font
	// LabelOffset is added to the joint position to place its label
	LabelOffset image.Point
}

// DefaultSkeletonStyle returns default skeleton style settings
func DefaultSkeletonStyle() SkeletonStyle {
	return SkeletonStyle{
		JointColor:    Red,
		JointRadius:   5,
		BoneColor:     Green,
		BoneThickness: 2,
		LabelFont:     LabelFont(),
		LabelOffset:   image.Pt(5, 5),
	}
}

// Skeleton renders the keypoints of a single person with their index labels,
// then the bone lines between them.  Connections referencing a joint not
// present in keyPoints are skipped, as are joints too far outside the image
// to be seen.
func Skeleton(img *gocv.Mat, keyPoints []pose.Keypoint,
	connections []pose.Connection, style SkeletonStyle) {

	// area outside of which nothing drawn can be seen
	minX, minY := -float64(drawMargin), -float64(drawMargin)
	maxX := float64(img.Cols() + drawMargin)
	maxY := float64(img.Rows() + drawMargin)

	// draw circles at skeleton joints and label them
	for i, kp := range keyPoints {

		if kp.X < minX || kp.X > maxX || kp.Y < minY || kp.Y > maxY ||
			math.IsNaN(kp.X) || math.IsNaN(kp.Y) {
			continue
		}

		pt := kp.Point()

		gocv.Circle(img, pt, style.JointRadius, style.JointColor, -1)

		putText(img, strconv.Itoa(i), pt.Add(style.LabelOffset), style.LabelFont)
	}

	// draw skeleton lines
	for _, conn := range connections {

		if !conn.Within(len(keyPoints)) {
			// frame does not hold one of the joints
			continue
		}

		// clip the bone so far away joints keep its direction on the image
		a, b, ok := clipSegment(keyPoints[conn.A], keyPoints[conn.B], minX, minY, maxX, maxY)

		if !ok {
			continue
		}

		gocv.Line(img, a.Point(), b.Point(), style.BoneColor, style.BoneThickness)
	}
}

// clipSegment clips the line a-b to the given rectangle using the
// Liang-Barsky algorithm.  It returns false if no part of the line lies
// within the rectangle.
func clipSegment(a, b pose.Keypoint, minX, minY, maxX, maxY float64) (pose.Keypoint, pose.Keypoint, bool) {

	dx := b.X - a.X
	dy := b.Y - a.Y

	if !finite(a.X) || !finite(a.Y) || !finite(dx) || !finite(dy) {
		return a, b, false
	}

	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - minX, maxX - a.X, a.Y - minY, maxY - a.Y}

	for i := 0; i < 4; i++ {

		if p[i] == 0 {
			// parallel to this edge and outside of it
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}

		r := q[i] / p[i]

		if p[i] < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	// unclipped ends are returned as is to avoid rounding error
	start, end := a, b

	if t0 > 0 {
		start = pose.Keypoint{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}

	if t1 < 1 {
		end = pose.Keypoint{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}

	return start, end, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
