package main

import (
	"flag"
	"fmt"
	"github.com/swdee/go-posevideo"
	"github.com/swdee/go-posevideo/encode"
	"log"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	cfg := posevideo.DefaultConfig()

	// read in cli flags
	flag.StringVar(&cfg.InputPath, "i", "../data/keypoints.json", "JSON keypoint sequence to render")
	flag.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "MP4 video file to write")
	flag.Float64Var(&cfg.FrameRate, "fps", cfg.FrameRate, "Frame rate of the output video")
	flag.StringVar(&cfg.FramesDir, "frames", "", "Optional directory to also save each frame as a still image")
	format := flag.String("format", string(cfg.FramesFormat), "Still image format for -frames [bmp|tiff]")

	flag.Parse()

	imgFormat, err := encode.ParseFormat(*format)

	if err != nil {
		log.Fatal("Error parsing -format: ", err)
	}

	cfg.FramesFormat = imgFormat

	log.Printf("Rendering %s at %.2f fps\n", cfg.InputPath, cfg.FrameRate)

	res, err := posevideo.Convert(cfg)

	if err != nil {
		log.Fatal("Error rendering skeleton video: ", err)
	}

	if cfg.FramesDir != "" {
		log.Printf("Frame images saved to %s\n", cfg.FramesDir)
	}

	log.Printf("Wrote %d frames, %s of video\n", res.Frames, res.Duration)

	fmt.Printf("Skeleton video saved to %s\n", res.OutputPath)
}
