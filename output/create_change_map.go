package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/land-watch/lulc-change-api/internal/lulc"
)

// CreateChangeMap renders the unified change mask as a black and white PNG:
// white where classification flipped between the two dates, black elsewhere.
func CreateChangeMap(mask lulc.Grid, outputImagePath string) error {
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	height, width := mask.Dims()
	newImage := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := uint8(0)
			if mask[y][x] == 1 {
				value = 255
			}
			newImage.Set(x, y, color.RGBA{R: value, G: value, B: value, A: 255})
		}
	}

	outputFile, err := os.Create(outputImagePath)
	if err != nil {
		return fmt.Errorf("failed to create change map file: %w", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, newImage); err != nil {
		return fmt.Errorf("failed to encode change map PNG: %w", err)
	}

	fmt.Println("Change map created successfully as", outputImagePath)
	return nil
}
