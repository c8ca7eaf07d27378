package render

import (
	"fmt"
	"gocv.io/x/gocv"
	"image"
)

// TimestampCaption returns the caption text for the frame at frameIndex of a
// sequence played at frameRate frames per second
func TimestampCaption(frameIndex int, frameRate float64) string {
	return fmt.Sprintf("Time: %.2fs", float64(frameIndex)/frameRate)
}

// Caption writes text onto the image with its baseline starting at pt
func Caption(img *gocv.Mat, text string, pt image.Point, font Font) {
	putText(img, text, pt, font)
}
