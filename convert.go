package posevideo

import (
	"fmt"
	"github.com/swdee/go-posevideo/encode"
	"github.com/swdee/go-posevideo/pose"
	"github.com/swdee/go-posevideo/render"
	"os"
	"time"
)

// Result describes the video produced by Convert
type Result struct {
	OutputPath string
	// Frames is the number of frames written, equal to the number of frame
	// entries in the input
	Frames int
	// Duration is the play time of the video
	Duration time.Duration
}

// Convert renders the keypoint sequence at cfg.InputPath into a video at
// cfg.OutputPath.  On failure after the video has been opened the partially
// written file is removed.
func Convert(cfg Config) (res Result, err error) {

	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	frames, err := pose.Load(cfg.InputPath)

	if err != nil {
		return Result{}, err
	}

	opts := render.DefaultOptions()
	opts.Width = cfg.Width
	opts.Height = cfg.Height

	renderer := render.NewRenderer(opts)

	var snap *encode.Snapshotter

	if cfg.FramesDir != "" {
		snap, err = encode.NewSnapshotter(cfg.FramesDir, cfg.FramesFormat)

		if err != nil {
			return Result{}, err
		}
	}

	enc, err := encode.Open(cfg.OutputPath, cfg.FrameRate, cfg.Width, cfg.Height)

	if err != nil {
		return Result{}, err
	}

	defer func() {
		closeErr := enc.Close()

		if err == nil {
			err = closeErr
		}

		if err != nil {
			os.Remove(cfg.OutputPath)
			res = Result{}
		}
	}()

	for _, frame := range frames {
		if err := writeFrame(renderer, enc, snap, frame, cfg.FrameRate); err != nil {
			return Result{}, err
		}
	}

	return Result{
		OutputPath: cfg.OutputPath,
		Frames:     enc.Frames(),
		Duration:   time.Duration(float64(enc.Frames()) / cfg.FrameRate * float64(time.Second)),
	}, nil
}

// writeFrame renders a single frame and hands it to the encoder and
// optional snapshotter
func writeFrame(renderer *render.Renderer, enc *encode.Encoder,
	snap *encode.Snapshotter, frame pose.Frame, frameRate float64) error {

	img := renderer.Render(frame.Keypoints, frame.Index, frameRate)
	defer img.Close()

	if err := enc.Append(img); err != nil {
		return fmt.Errorf("frame %d: %w", frame.Index, err)
	}

	if snap != nil {
		if err := snap.Write(img); err != nil {
			return fmt.Errorf("frame %d: %w", frame.Index, err)
		}
	}

	return nil
}
