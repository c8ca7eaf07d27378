package encode

import (
	"errors"
	"fmt"
	"gocv.io/x/gocv"
	"os"
	"path/filepath"
)

// FourCC is the codec used for video output, MPEG-4 part 2 which OpenCV
// places in an MP4 container
const FourCC = "mp4v"

var (
	// ErrFrameSize is returned when appending a canvas that does not match
	// the size and type the Encoder was opened with
	ErrFrameSize = errors.New("frame does not match video size")
	// ErrClosed is returned when appending to a closed Encoder
	ErrClosed = errors.New("encoder is closed")
)

// EncodeInitError is returned when the output video can not be created
type EncodeInitError struct {
	Path string
	Err  error
}

func (e *EncodeInitError) Error() string {
	return fmt.Sprintf("error opening video %s for writing: %v", e.Path, e.Err)
}

func (e *EncodeInitError) Unwrap() error {
	return e.Err
}

// Encoder writes BGR canvases as frames of a fixed size, fixed frame rate
// video file
type Encoder struct {
	path   string
	width  int
	height int
	writer *gocv.VideoWriter
	frames int
	closed bool
}

// Open creates or truncates the video file at path and prepares it to
// receive frames of width x height at frameRate frames per second
func Open(path string, frameRate float64, width, height int) (*Encoder, error) {

	if frameRate <= 0 {
		return nil, &EncodeInitError{Path: path,
			Err: fmt.Errorf("frame rate must be positive, got %v", frameRate)}
	}

	if width <= 0 || height <= 0 {
		return nil, &EncodeInitError{Path: path,
			Err: fmt.Errorf("invalid video size %dx%d", width, height)}
	}

	// OpenCV fails silently on a missing directory so check it first
	dir := filepath.Dir(path)

	if info, err := os.Stat(dir); err != nil {
		return nil, &EncodeInitError{Path: path, Err: err}
	} else if !info.IsDir() {
		return nil, &EncodeInitError{Path: path,
			Err: fmt.Errorf("%s is not a directory", dir)}
	}

	writer, err := gocv.VideoWriterFile(path, FourCC, frameRate, width, height, true)

	if err != nil {
		return nil, &EncodeInitError{Path: path, Err: err}
	}

	if !writer.IsOpened() {
		writer.Close()
		return nil, &EncodeInitError{Path: path,
			Err: fmt.Errorf("codec %s unavailable or file not writable", FourCC)}
	}

	return &Encoder{
		path:   path,
		width:  width,
		height: height,
		writer: writer,
	}, nil
}

// Append writes img as the next frame of the video
func (e *Encoder) Append(img gocv.Mat) error {

	if e.closed {
		return ErrClosed
	}

	if img.Empty() || img.Cols() != e.width || img.Rows() != e.height ||
		img.Type() != gocv.MatTypeCV8UC3 {
		return fmt.Errorf("%w: expected %dx%d BGR, got %dx%d type %v",
			ErrFrameSize, e.width, e.height, img.Cols(), img.Rows(), img.Type())
	}

	if err := e.writer.Write(img); err != nil {
		return fmt.Errorf("error writing frame %d: %w", e.frames, err)
	}

	e.frames++

	return nil
}

// Frames returns the number of frames appended so far
func (e *Encoder) Frames() int {
	return e.frames
}

// Path returns the video file location
func (e *Encoder) Path() string {
	return e.path
}

// Close finalizes the video file.  It is safe to call more than once, only
// the first call releases the writer.
func (e *Encoder) Close() error {

	if e.closed {
		return nil
	}

	e.closed = true

	if err := e.writer.Close(); err != nil {
		return fmt.Errorf("error finalizing video %s: %w", e.path, err)
	}

	return nil
}
