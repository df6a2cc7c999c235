package lulc

import "fmt"

// Result is the composite outcome of one change detection run.
type Result struct {
	Image1          Percentages
	Image2          Percentages
	Change          map[string]float64
	TotalChangeArea float64
	ChangeMask      Grid

	// Kept for rendering the classification artifacts.
	Classification1 Classification
	Classification2 Classification
}

// Run executes the full pipeline over two co-registered images: indices,
// classification, change mask, percentages and deltas. Either image may lack
// the NIR or SWIR band and degrade independently; mismatched spatial
// dimensions are a hard error.
func Run(image1, image2 Image) (*Result, error) {
	if image1.Height != image2.Height || image1.Width != image2.Width {
		return nil, fmt.Errorf("image dimensions do not match: %dx%d vs %dx%d",
			image1.Width, image1.Height, image2.Width, image2.Height)
	}

	cls1 := Classify(ComputeIndices(image1))
	cls2 := Classify(ComputeIndices(image2))

	perc1 := CoverPercentages(cls1)
	perc2 := CoverPercentages(cls2)
	stats := ChangeBetween(perc1, perc2)

	return &Result{
		Image1:          perc1,
		Image2:          perc2,
		Change:          stats.Deltas,
		TotalChangeArea: stats.TotalChangeArea,
		ChangeMask:      ChangeMask(cls1, cls2),
		Classification1: cls1,
		Classification2: cls2,
	}, nil
}
