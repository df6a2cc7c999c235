package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/land-watch/lulc-change-api/internal/lulc"
	"github.com/paulmach/orb"
)

// Raster is a decoded multispectral image plus its source metadata.
type Raster struct {
	lulc.Image
	Path string
	// Footprint is the geographic bounding box from the geotransform,
	// zero when the file carries none.
	Footprint orb.Bound
}

// Read opens a TIFF with GDAL and decodes every band into a float grid.
// Band values are normalized to [0,1] by dividing by 255 when the source
// range exceeds 1, matching typical 8-bit composites.
func Read(path string) (*Raster, error) {
	ds, err := godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal error %d: %s", code, msg)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open TIFF file %s: %w", path, err)
	}
	defer ds.Close()

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY

	bands := ds.Bands()
	grids := make([]lulc.Grid, len(bands))
	maxValue := 0.0
	for i, band := range bands {
		grid := make(lulc.Grid, height)
		for y := 0; y < height; y++ {
			grid[y] = make([]float64, width)
			if err := band.Read(0, y, grid[y], width, 1); err != nil {
				return nil, fmt.Errorf("failed to read band %d of %s: %w", i+1, path, err)
			}
			for x := 0; x < width; x++ {
				if grid[y][x] > maxValue {
					maxValue = grid[y][x]
				}
			}
		}
		grids[i] = grid
	}

	if maxValue > 1 {
		for _, grid := range grids {
			for y := range grid {
				for x := range grid[y] {
					grid[y][x] /= 255
				}
			}
		}
	}

	raster := &Raster{
		Image: lulc.Image{Bands: grids, Height: height, Width: width},
		Path:  path,
	}

	if gt, err := ds.GeoTransform(); err == nil {
		xMin := gt[0]
		yMax := gt[3]
		xMax := xMin + gt[1]*float64(width)
		yMin := yMax + gt[5]*float64(height)
		raster.Footprint = orb.Bound{
			Min: orb.Point{xMin, yMin},
			Max: orb.Point{xMax, yMax},
		}
	}

	fmt.Printf("Loaded %s: %dx%d pixels, %d bands\n", path, width, height, len(grids))
	return raster, nil
}
