package encode

import (
	"fmt"
	"gocv.io/x/gocv"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is a still image file format frames can be exported as
type Format string

const (
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ParseFormat returns the Format named by s, which may have a leading dot
func ParseFormat(s string) (Format, error) {

	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}

	return "", fmt.Errorf("unsupported image format %q", s)
}

// Snapshotter writes each canvas it is given to a numbered still image file
// in a directory, frame_000000.bmp, frame_000001.bmp and so on
type Snapshotter struct {
	dir    string
	format Format
	next   int
}

// NewSnapshotter creates dir if needed and returns a Snapshotter writing
// images of the given format into it
func NewSnapshotter(dir string, format Format) (*Snapshotter, error) {

	format, err := ParseFormat(string(format))

	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating frames directory: %w", err)
	}

	return &Snapshotter{dir: dir, format: format}, nil
}

// FramePath returns the file the frame with the given index is written to
func (s *Snapshotter) FramePath(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("frame_%06d.%s", index, s.format))
}

// Write saves img as the next numbered frame
func (s *Snapshotter) Write(img gocv.Mat) error {

	pic, err := img.ToImage()

	if err != nil {
		return fmt.Errorf("error converting frame %d to image: %w", s.next, err)
	}

	file := s.FramePath(s.next)

	f, err := os.Create(file)

	if err != nil {
		return fmt.Errorf("error creating frame file: %w", err)
	}

	if err := s.encode(f, pic); err != nil {
		f.Close()
		return fmt.Errorf("error encoding frame %s: %w", file, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing frame file: %w", err)
	}

	s.next++

	return nil
}

func (s *Snapshotter) encode(w io.Writer, pic image.Image) error {

	switch s.format {
	case FormatTIFF:
		return tiff.Encode(w, pic, &tiff.Options{Compression: tiff.Deflate})
	default:
		return bmp.Encode(w, pic)
	}
}
