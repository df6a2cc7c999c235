package lulc

// Grid is a row-major raster plane indexed as grid[y][x].
type Grid [][]float64

func NewGrid(height, width int) Grid {
	grid := make(Grid, height)
	for y := range grid {
		grid[y] = make([]float64, width)
	}
	return grid
}

func (g Grid) Dims() (height, width int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// BandRole identifies the meaning of a band slot in a stacked image.
type BandRole string

const (
	BandBlue  BandRole = "blue"
	BandGreen BandRole = "green"
	BandRed   BandRole = "red"
	BandNIR   BandRole = "nir"
	BandSWIR  BandRole = "swir"
)

// BandOrder is the fixed band layout of input imagery. Index math looks
// bands up through this table instead of hard-coding positions, so a
// different sensor layout only needs a different table.
var BandOrder = []BandRole{BandBlue, BandGreen, BandRed, BandNIR, BandSWIR}

// Image is a band-stacked raster with values normalized to [0,1].
type Image struct {
	Bands  []Grid
	Height int
	Width  int
}

// Band returns the grid filling the given role, or false when the image
// does not carry enough bands to cover it.
func (im Image) Band(role BandRole) (Grid, bool) {
	for i, r := range BandOrder {
		if r != role {
			continue
		}
		if i >= len(im.Bands) {
			return nil, false
		}
		return im.Bands[i], true
	}
	return nil, false
}
