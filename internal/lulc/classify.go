package lulc

// Land cover class labels, fixed across percentages, deltas and the CSV export.
const (
	LabelBuiltUp    = "Built-up Area"
	LabelWater      = "Water"
	LabelForest     = "Forest"
	LabelVegetation = "Vegetation"
	LabelBarren     = "Barren Land"
)

// Labels lists the five classes in reporting order.
var Labels = []string{LabelBuiltUp, LabelWater, LabelForest, LabelVegetation, LabelBarren}

// Classification holds one binary membership mask per land cover class.
// After Classify at most one mask is 1 for any pixel; a pixel matching no
// predicate stays out of every class.
type Classification struct {
	BuiltUp    Grid
	Water      Grid
	Forest     Grid
	Vegetation Grid
	Barren     Grid
}

// Masks returns the class masks keyed by label.
func (c Classification) Masks() map[string]Grid {
	return map[string]Grid{
		LabelBuiltUp:    c.BuiltUp,
		LabelWater:      c.Water,
		LabelForest:     c.Forest,
		LabelVegetation: c.Vegetation,
		LabelBarren:     c.Barren,
	}
}

// overrideRules encodes class precedence: wherever the winner's mask is set,
// each loser's mask is cleared. Applied in order, so water ends up beating
// everything and built-up beats the NDVI-derived classes.
var overrideRules = []struct {
	winner string
	losers []string
}{
	{LabelBuiltUp, []string{LabelVegetation, LabelForest, LabelBarren}},
	{LabelWater, []string{LabelForest, LabelVegetation, LabelBarren, LabelBuiltUp}},
}

// Classify turns the three index grids into five mutually exclusive class
// masks. The primary predicates are evaluated independently, then the
// override rules resolve overlaps. Inputs are never mutated.
func Classify(idx Indices) Classification {
	height, width := idx.NDVI.Dims()

	cls := Classification{
		BuiltUp:    threshold(idx.NDBI, func(v float64) bool { return v > 0 }),
		Forest:     threshold(idx.NDVI, func(v float64) bool { return v > 0.5 }),
		Vegetation: threshold(idx.NDVI, func(v float64) bool { return v > 0.1 && v <= 0.5 }),
		Water:      threshold(idx.NDWI, func(v float64) bool { return v > 0 }),
		Barren:     threshold(idx.NDVI, func(v float64) bool { return v >= -0.1 && v <= 0.1 }),
	}

	masks := cls.Masks()
	for _, rule := range overrideRules {
		winner := masks[rule.winner]
		for _, label := range rule.losers {
			loser := masks[label]
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if winner[y][x] == 1 {
						loser[y][x] = 0
					}
				}
			}
		}
	}

	return cls
}

func threshold(grid Grid, predicate func(float64) bool) Grid {
	height, width := grid.Dims()
	mask := NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if predicate(grid[y][x]) {
				mask[y][x] = 1
			}
		}
	}
	return mask
}
