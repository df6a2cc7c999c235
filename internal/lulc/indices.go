package lulc

import "fmt"

// epsilon keeps the normalized difference denominator away from zero.
const epsilon = 1e-8

// Indices holds the three spectral index grids derived from one image.
type Indices struct {
	NDVI Grid
	NDWI Grid
	NDBI Grid
}

// ComputeIndices derives NDVI, NDWI and NDBI from a band-stacked image.
// An index whose bands are missing comes back as an all-zero grid of the
// image's spatial shape rather than an error.
func ComputeIndices(im Image) Indices {
	return Indices{
		NDVI: normalizedDifference(im, "NDVI", BandNIR, BandRed),
		NDWI: normalizedDifference(im, "NDWI", BandGreen, BandNIR),
		NDBI: normalizedDifference(im, "NDBI", BandSWIR, BandNIR),
	}
}

// normalizedDifference computes (first-second)/(first+second+epsilon)
// clipped to [-1,1]. Clipping happens after the division.
func normalizedDifference(im Image, name string, first, second BandRole) Grid {
	a, okA := im.Band(first)
	b, okB := im.Band(second)
	if !okA || !okB {
		fmt.Printf("\033[33mWarning: insufficient bands for %s calculation, image has %d bands\033[0m\n", name, len(im.Bands))
		return NewGrid(im.Height, im.Width)
	}

	out := NewGrid(im.Height, im.Width)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			value := (a[y][x] - b[y][x]) / (a[y][x] + b[y][x] + epsilon)
			if value > 1 {
				value = 1
			}
			if value < -1 {
				value = -1
			}
			out[y][x] = value
		}
	}
	return out
}
