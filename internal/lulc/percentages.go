package lulc

// Percentages maps a class label to its share of the image area in [0,100].
// The shares of one image may sum to less than 100 because pixels matching
// no predicate belong to no class.
type Percentages map[string]float64

// CoverPercentages reduces the class masks to percentage-of-area values.
// No rounding happens here; display layers round as they see fit.
func CoverPercentages(c Classification) Percentages {
	height, width := c.BuiltUp.Dims()
	total := float64(height * width)

	percentages := make(Percentages, len(Labels))
	for label, mask := range c.Masks() {
		count := 0.0
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				count += mask[y][x]
			}
		}
		percentages[label] = count / total * 100
	}
	return percentages
}
