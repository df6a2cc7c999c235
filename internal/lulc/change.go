package lulc

import "math"

// changeThreshold separates "same" from "flipped" per-class membership.
// Masks are strictly binary so any per-pixel difference is 0 or 1.
const changeThreshold = 0.1

// ChangeStats reports how cover shifted between the two dates.
type ChangeStats struct {
	// Deltas holds the signed percentage-point change per class
	// (image 2 minus image 1).
	Deltas map[string]float64
	// TotalChangeArea is half the sum of absolute deltas; the half corrects
	// for double counting when area moves from one class to another.
	TotalChangeArea float64
}

// ChangeMask combines per-class membership flips into one binary grid:
// 1 where the pixel changed class membership in any of the five classes.
func ChangeMask(pre, post Classification) Grid {
	height, width := pre.BuiltUp.Dims()
	changed := NewGrid(height, width)

	preMasks := pre.Masks()
	postMasks := post.Masks()
	for _, label := range Labels {
		before := preMasks[label]
		after := postMasks[label]
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if math.Abs(after[y][x]-before[y][x]) > changeThreshold {
					changed[y][x] = 1
				}
			}
		}
	}
	return changed
}

// ChangeBetween computes signed per-class deltas and the aggregate change area
// from the two percentage records.
func ChangeBetween(pre, post Percentages) ChangeStats {
	stats := ChangeStats{Deltas: make(map[string]float64, len(Labels))}
	for _, label := range Labels {
		delta := post[label] - pre[label]
		stats.Deltas[label] = delta
		stats.TotalChangeArea += math.Abs(delta)
	}
	stats.TotalChangeArea /= 2
	return stats
}
