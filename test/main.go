package main

import (
	"flag"
	"fmt"
	"github.com/swdee/go-posevideo/pose"
	"github.com/swdee/go-posevideo/render"
	"gocv.io/x/gocv"
	"log"
)

func main() {

	inFile := flag.String("i", "../example/data/keypoints.json", "JSON keypoint sequence")
	frameNum := flag.Int("f", 0, "Frame number to render")
	outFile := flag.String("o", "/tmp/skeleton-frame.jpg", "Image file to save the frame to")

	flag.Parse()

	frames, err := pose.Load(*inFile)

	if err != nil {
		log.Fatal(err)
	}

	if *frameNum < 0 || *frameNum >= len(frames) {
		log.Fatalf("frame %d out of range, sequence has %d frames", *frameNum, len(frames))
	}

	r := render.NewRenderer(render.DefaultOptions())

	img := r.Render(frames[*frameNum].Keypoints, *frameNum, 30)
	defer img.Close()

	if ok := gocv.IMWrite(*outFile, img); !ok {
		log.Fatal("Failed to save the image to: ", *outFile)
	}

	fmt.Print("done\n")
}
