package lulc

import (
	"math"
	"testing"
)

// uniformImage builds an image whose bands each hold one constant value.
func uniformImage(height, width int, bandValues ...float64) Image {
	bands := make([]Grid, len(bandValues))
	for i, value := range bandValues {
		grid := NewGrid(height, width)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				grid[y][x] = value
			}
		}
		bands[i] = grid
	}
	return Image{Bands: bands, Height: height, Width: width}
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestComputeIndicesValues(t *testing.T) {
	// blue=0.1 green=0.4 red=0.2 nir=0.6 swir=0.3
	im := uniformImage(3, 4, 0.1, 0.4, 0.2, 0.6, 0.3)
	idx := ComputeIndices(im)

	wantNDVI := (0.6 - 0.2) / (0.6 + 0.2 + epsilon)
	wantNDWI := (0.4 - 0.6) / (0.4 + 0.6 + epsilon)
	wantNDBI := (0.3 - 0.6) / (0.3 + 0.6 + epsilon)

	if !almostEqual(idx.NDVI[1][2], wantNDVI, 1e-9) {
		t.Errorf("NDVI = %v, want %v", idx.NDVI[1][2], wantNDVI)
	}
	if !almostEqual(idx.NDWI[0][0], wantNDWI, 1e-9) {
		t.Errorf("NDWI = %v, want %v", idx.NDWI[0][0], wantNDWI)
	}
	if !almostEqual(idx.NDBI[2][3], wantNDBI, 1e-9) {
		t.Errorf("NDBI = %v, want %v", idx.NDBI[2][3], wantNDBI)
	}
}

func TestIndicesClippedToUnitRange(t *testing.T) {
	cases := []struct {
		name  string
		bands []float64
	}{
		{"extreme nir", []float64{0, 0, 0, 1e6, 0}},
		{"extreme red", []float64{0, 0, 1e6, 0, 0}},
		{"negative swir", []float64{0, 0, 0.5, 1e6, -0.5e6}},
		{"negative nir", []float64{0, 1e6, 0.5, -0.5e6, 0.2}},
	}

	for _, tc := range cases {
		im := uniformImage(2, 2, tc.bands...)
		idx := ComputeIndices(im)
		for name, grid := range map[string]Grid{"NDVI": idx.NDVI, "NDWI": idx.NDWI, "NDBI": idx.NDBI} {
			for y := range grid {
				for x := range grid[y] {
					if grid[y][x] < -1 || grid[y][x] > 1 {
						t.Errorf("%s: %s[%d][%d] = %v, outside [-1,1]", tc.name, name, y, x, grid[y][x])
					}
					if math.IsNaN(grid[y][x]) {
						t.Errorf("%s: %s[%d][%d] is NaN", tc.name, name, y, x)
					}
				}
			}
		}
	}
}

func TestMissingBandsDegradeToZero(t *testing.T) {
	threeBands := uniformImage(4, 5, 0.2, 0.3, 0.4)
	idx := ComputeIndices(threeBands)

	for name, grid := range map[string]Grid{"NDVI": idx.NDVI, "NDWI": idx.NDWI, "NDBI": idx.NDBI} {
		height, width := grid.Dims()
		if height != 4 || width != 5 {
			t.Fatalf("%s shape = %dx%d, want 4x5", name, width, height)
		}
		for y := range grid {
			for x := range grid[y] {
				if grid[y][x] != 0 {
					t.Errorf("%s[%d][%d] = %v, want 0 for a 3-band image", name, y, x, grid[y][x])
				}
			}
		}
	}

	fourBands := uniformImage(2, 2, 0.1, 0.4, 0.2, 0.6)
	idx = ComputeIndices(fourBands)
	if idx.NDVI[0][0] == 0 {
		t.Error("NDVI should be computed for a 4-band image")
	}
	if idx.NDBI[0][0] != 0 {
		t.Errorf("NDBI = %v, want 0 for a 4-band image", idx.NDBI[0][0])
	}
}

func TestZeroBandsGiveZeroIndices(t *testing.T) {
	im := uniformImage(2, 3, 0, 0, 0, 0, 0)
	idx := ComputeIndices(im)

	if idx.NDVI[1][1] != 0 || idx.NDWI[1][1] != 0 || idx.NDBI[1][1] != 0 {
		t.Errorf("indices of an all-zero image = (%v, %v, %v), want zeros",
			idx.NDVI[1][1], idx.NDWI[1][1], idx.NDBI[1][1])
	}
}
