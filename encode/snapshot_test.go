package encode

import (
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {

	tests := []struct {
		input    string
		expected Format
		ok       bool
	}{
		{"bmp", FormatBMP, true},
		{".BMP", FormatBMP, true},
		{"tiff", FormatTIFF, true},
		{"tif", FormatTIFF, true},
		{"png", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.input)

		if tc.ok && (err != nil || got != tc.expected) {
			t.Errorf("ParseFormat(%q) expected %q, got %q err %v", tc.input, tc.expected, got, err)
		}

		if !tc.ok && err == nil {
			t.Errorf("ParseFormat(%q) expected error", tc.input)
		}
	}
}

func TestSnapshotterWrite(t *testing.T) {

	for _, format := range []Format{FormatBMP, FormatTIFF} {

		dir := filepath.Join(t.TempDir(), "frames")

		snap, err := NewSnapshotter(dir, format)

		if err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}

		for i := 0; i < 2; i++ {
			frame := newFrame(64, 48, 0)
			err := snap.Write(frame)
			frame.Close()

			if err != nil {
				t.Fatalf("%s: error writing frame %d: %v", format, i, err)
			}
		}

		for i := 0; i < 2; i++ {
			file := snap.FramePath(i)

			f, err := os.Open(file)

			if err != nil {
				t.Fatalf("%s: expected frame file %s: %v", format, file, err)
			}

			var pic image.Image

			if format == FormatTIFF {
				pic, err = tiff.Decode(f)
			} else {
				pic, err = bmp.Decode(f)
			}

			f.Close()

			if err != nil {
				t.Fatalf("%s: error decoding %s: %v", format, file, err)
			}

			if pic.Bounds().Dx() != 64 || pic.Bounds().Dy() != 48 {
				t.Errorf("%s: unexpected image size %v", format, pic.Bounds())
			}

			// canvas was filled with BGR (0,255,255), yellow in RGB
			r, g, b, _ := pic.At(10, 10).RGBA()

			if r>>8 != 255 || g>>8 != 255 || b>>8 != 0 {
				t.Errorf("%s: unexpected pixel color %d,%d,%d", format, r>>8, g>>8, b>>8)
			}
		}

		if filepath.Base(snap.FramePath(0)) != "frame_000000."+string(format) {
			t.Errorf("unexpected frame file name %s", snap.FramePath(0))
		}
	}
}

func TestNewSnapshotterBadFormat(t *testing.T) {

	if _, err := NewSnapshotter(t.TempDir(), Format("gif")); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}
