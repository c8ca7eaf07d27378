package render

import (
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
}

// LabelFont returns the small font used for joint index labels
func LabelFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.4,
		Color:     Black,
		Thickness: 1,
		LineType:  gocv.Line8,
	}
}

// CaptionFont returns the font used for the frame timestamp caption
func CaptionFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     1,
		Color:     Black,
		Thickness: 2,
		LineType:  gocv.Line8,
	}
}

// putText draws text with its bottom left corner at pt
func putText(img *gocv.Mat, text string, pt image.Point, font Font) {
	gocv.PutTextWithParams(img, text, pt, font.Face, font.Scale, font.Color,
		font.Thickness, font.LineType, false)
}
