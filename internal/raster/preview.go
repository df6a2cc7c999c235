package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"sort"

	"github.com/land-watch/lulc-change-api/internal/lulc"
)

// WritePreview renders a natural color composite of the image as a PNG.
// Images with at least three bands use Red/Green/Blue; single band images
// render grayscale. No-data pixels (zero in every channel) come out
// transparent. Preview failures never fail a run: anything unrenderable
// degrades to a flat placeholder.
func WritePreview(im lulc.Image, outputPath string) error {
	var red, green, blue lulc.Grid
	switch {
	case len(im.Bands) >= 3:
		red, green, blue = im.Bands[2], im.Bands[1], im.Bands[0]
	case len(im.Bands) >= 1:
		red, green, blue = im.Bands[0], im.Bands[0], im.Bands[0]
	default:
		fmt.Println("\033[33mWarning: insufficient bands for RGB preview\033[0m")
		return writePlaceholder(outputPath)
	}

	if im.Height == 0 || im.Width == 0 {
		return writePlaceholder(outputPath)
	}

	stretched := [3]lulc.Grid{
		stretchChannel(red),
		stretchChannel(green),
		stretchChannel(blue),
	}

	preview := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			alpha := uint8(0)
			if red[y][x] > 0 || green[y][x] > 0 || blue[y][x] > 0 {
				alpha = 255
			}
			preview.SetRGBA(x, y, color.RGBA{
				R: uint8(stretched[0][y][x] * 255),
				G: uint8(stretched[1][y][x] * 255),
				B: uint8(stretched[2][y][x] * 255),
				A: alpha,
			})
		}
	}

	return writePNG(preview, outputPath)
}

// stretchChannel applies a 2-98 percentile contrast stretch over the
// channel's nonzero pixels and returns values normalized to [0,1].
func stretchChannel(grid lulc.Grid) lulc.Grid {
	height, width := grid.Dims()

	var valid []float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := grid[y][x]
			if v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
				valid = append(valid, v)
			}
		}
	}

	out := lulc.NewGrid(height, width)
	if len(valid) == 0 {
		return out
	}

	sort.Float64s(valid)
	low := percentile(valid, 2)
	high := percentile(valid, 98)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := grid[y][x]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			if v < low {
				v = low
			}
			if v > high {
				v = high
			}
			if high-low > 0 {
				v = (v - low) / (high - low)
			}
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			out[y][x] = v
		}
	}
	return out
}

// percentile interpolates linearly between the two nearest ranks of an
// ascending sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func writePlaceholder(outputPath string) error {
	placeholder := image.NewRGBA(image.Rect(0, 0, 500, 500))
	gray := color.RGBA{128, 128, 128, 255}
	for y := 0; y < 500; y++ {
		for x := 0; x < 500; x++ {
			placeholder.SetRGBA(x, y, gray)
		}
	}
	return writePNG(placeholder, outputPath)
}

func writePNG(img image.Image, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode preview PNG: %w", err)
	}
	return nil
}
