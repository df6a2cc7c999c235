package raster

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/land-watch/lulc-change-api/internal/lulc"
)

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	if got := percentile(sorted, 0); got != 1 {
		t.Errorf("p0 = %v, want 1", got)
	}
	if got := percentile(sorted, 100); got != 5 {
		t.Errorf("p100 = %v, want 5", got)
	}
	if got := percentile(sorted, 50); got != 3 {
		t.Errorf("p50 = %v, want 3", got)
	}
	// Rank 0.25*(5-1)=1 exactly, no interpolation.
	if got := percentile(sorted, 25); got != 2 {
		t.Errorf("p25 = %v, want 2", got)
	}
	if got := percentile([]float64{7}, 98); got != 7 {
		t.Errorf("p98 of one value = %v, want 7", got)
	}
}

func TestStretchChannelNormalizes(t *testing.T) {
	grid := lulc.Grid{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
	}
	stretched := stretchChannel(grid)

	for y := range stretched {
		for x := range stretched[y] {
			if stretched[y][x] < 0 || stretched[y][x] > 1 {
				t.Errorf("stretched[%d][%d] = %v, outside [0,1]", y, x, stretched[y][x])
			}
		}
	}
	if stretched[0][0] >= stretched[1][2] {
		t.Errorf("stretch should preserve ordering: %v >= %v", stretched[0][0], stretched[1][2])
	}
}

func TestStretchChannelAllZero(t *testing.T) {
	stretched := stretchChannel(lulc.NewGrid(2, 2))
	for y := range stretched {
		for x := range stretched[y] {
			if stretched[y][x] != 0 {
				t.Errorf("stretched[%d][%d] = %v, want 0 for an empty channel", y, x, stretched[y][x])
			}
		}
	}
}

func TestWritePreviewTransparency(t *testing.T) {
	// One no-data pixel (all bands zero), one valid pixel.
	im := lulc.Image{
		Height: 1,
		Width:  2,
		Bands: []lulc.Grid{
			{{0, 0.2}},
			{{0, 0.4}},
			{{0, 0.6}},
		},
	}
	outputPath := filepath.Join(t.TempDir(), "preview.png")

	if err := WritePreview(im, outputPath); err != nil {
		t.Fatalf("WritePreview failed: %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("failed to open preview: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("preview is not a valid PNG: %v", err)
	}

	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("no-data pixel alpha = %d, want 0", a>>8)
	}
	_, _, _, a = img.At(1, 0).RGBA()
	if a>>8 != 255 {
		t.Errorf("valid pixel alpha = %d, want 255", a>>8)
	}
}

func TestWritePreviewNoBands(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "preview.png")
	if err := WritePreview(lulc.Image{}, outputPath); err != nil {
		t.Fatalf("WritePreview failed: %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("failed to open placeholder preview: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("placeholder is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 500 {
		t.Errorf("placeholder is %dx%d, want 500x500", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
