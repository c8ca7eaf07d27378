package render

import (
	"github.com/swdee/go-posevideo/pose"
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

const (
	// DefaultWidth is the canvas width in pixels
	DefaultWidth = 640
	// DefaultHeight is the canvas height in pixels
	DefaultHeight = 480
)

// Options holds the fixed settings a Renderer draws every frame with
type Options struct {
	Width       int
	Height      int
	Connections []pose.Connection
	Background  color.RGBA
	Skeleton    SkeletonStyle
	CaptionFont Font
	// CaptionPos is the bottom left corner of the timestamp caption
	CaptionPos image.Point
}

// DefaultOptions returns the options for a 640x480 white canvas with the
// CrowdPose skeleton
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Connections: pose.CrowdPoseConnections(),
		Background:  White,
		Skeleton:    DefaultSkeletonStyle(),
		CaptionFont: CaptionFont(),
		CaptionPos:  image.Pt(10, 30),
	}
}

// Renderer draws frames of a keypoint sequence onto canvases of a fixed size
type Renderer struct {
	opts Options
}

// NewRenderer returns a Renderer using the given options.  The connection
// table is copied so later changes by the caller have no effect.
func NewRenderer(opts Options) *Renderer {
	conns := make([]pose.Connection, len(opts.Connections))
	copy(conns, opts.Connections)
	opts.Connections = conns

	return &Renderer{opts: opts}
}

// Size returns the width and height of canvases produced by Render
func (r *Renderer) Size() (int, int) {
	return r.opts.Width, r.opts.Height
}

// NewCanvas returns a BGR Mat of the renderer's size filled with the
// background color
func (r *Renderer) NewCanvas() gocv.Mat {
	bg := r.opts.Background

	return gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(bg.B), float64(bg.G), float64(bg.R), 0),
		r.opts.Height, r.opts.Width, gocv.MatTypeCV8UC3)
}

// Render draws the keypoints of one frame and its timestamp onto a new
// canvas.  The caller must Close the returned Mat.
func (r *Renderer) Render(keyPoints []pose.Keypoint, frameIndex int,
	frameRate float64) gocv.Mat {

	img := r.NewCanvas()

	Skeleton(&img, keyPoints, r.opts.Connections, r.opts.Skeleton)

	Caption(&img, TimestampCaption(frameIndex, frameRate), r.opts.CaptionPos,
		r.opts.CaptionFont)

	return img
}
