package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/land-watch/lulc-change-api/internal/lulc"
	"github.com/land-watch/lulc-change-api/internal/properties"
)

// CreateClassificationImage renders the class masks as a colored PNG using
// the configured class colors. Pixels outside every class stay black.
func CreateClassificationImage(cls lulc.Classification, outputImagePath string) error {
	height, width := cls.BuiltUp.Dims()
	newImage := image.NewRGBA(image.Rect(0, 0, width, height))

	masks := cls.Masks()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixelColor := color.RGBA{A: 255}
			for _, label := range lulc.Labels {
				if masks[label][y][x] == 1 {
					pixelColor = color.RGBA{
						R: properties.ColorMap[label].R,
						G: properties.ColorMap[label].G,
						B: properties.ColorMap[label].B,
						A: 255,
					}
					break
				}
			}
			newImage.Set(x, y, pixelColor)
		}
	}

	outputFile, err := os.Create(outputImagePath)
	if err != nil {
		return fmt.Errorf("failed to create classification image file: %w", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, newImage); err != nil {
		return fmt.Errorf("failed to encode classification PNG: %w", err)
	}

	fmt.Println("Classification image created successfully as", outputImagePath)
	return nil
}
