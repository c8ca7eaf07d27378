package render

import "image/color"

// gocv converts color.RGBA to a BGR Scalar when drawing, so Red is stored in
// the Mat as (0,0,255)
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)
