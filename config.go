package posevideo

import (
	"errors"
	"fmt"
	"github.com/swdee/go-posevideo/encode"
	"github.com/swdee/go-posevideo/render"
)

const (
	// DefaultFrameRate is the output video frame rate in frames per second
	DefaultFrameRate = 30.0
	// DefaultOutputPath is where the video is written when no path is given
	DefaultOutputPath = "skeleton_video.mp4"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config defines the parameters of a conversion run
type Config struct {
	// InputPath is the JSON keypoint sequence to read
	InputPath string
	// OutputPath is the MP4 video file to write
	OutputPath string
	// FrameRate is the output video frame rate in frames per second
	FrameRate float64
	// Width is the canvas and video width in pixels
	Width int
	// Height is the canvas and video height in pixels
	Height int
	// FramesDir is an optional directory every rendered frame is also
	// saved to as a still image
	FramesDir string
	// FramesFormat is the still image format used for FramesDir
	FramesFormat encode.Format
}

// DefaultConfig returns default conversion settings.  InputPath must still
// be set.
func DefaultConfig() Config {
	return Config{
		OutputPath:   DefaultOutputPath,
		FrameRate:    DefaultFrameRate,
		Width:        render.DefaultWidth,
		Height:       render.DefaultHeight,
		FramesFormat: encode.FormatBMP,
	}
}

// Validate checks the config holds usable values
func (c Config) Validate() error {

	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}

	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}

	// also rejects NaN
	if !(c.FrameRate > 0) {
		return fmt.Errorf("%w: frame rate must be positive, got %v", ErrInvalidConfig, c.FrameRate)
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: invalid video size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}

	if c.FramesDir != "" {
		if _, err := encode.ParseFormat(string(c.FramesFormat)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}
