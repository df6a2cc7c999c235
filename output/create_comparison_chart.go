package output

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/land-watch/lulc-change-api/internal/lulc"
)

const (
	chartWidth   = 1000
	chartHeight  = 600
	marginLeft   = 80
	marginRight  = 180
	marginTop    = 60
	marginBottom = 80
)

// CreateComparisonChart plots the per-class percentages of both images as a
// scatter chart: five categories on the x axis, 0-100 percent on the y axis,
// blue markers for the first image and green for the second.
func CreateComparisonChart(perc1, perc2 lulc.Percentages, file1Name, file2Name, outputImagePath string) error {
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotWidth := float64(chartWidth - marginLeft - marginRight)
	plotHeight := float64(chartHeight - marginTop - marginBottom)

	xFor := func(category int) float64 {
		step := plotWidth / float64(len(lulc.Labels))
		return marginLeft + step*(float64(category)+0.5)
	}
	yFor := func(percent float64) float64 {
		return marginTop + plotHeight*(1-percent/100)
	}

	// Gridlines and y axis labels every 10 percent.
	for tick := 0; tick <= 100; tick += 10 {
		y := yFor(float64(tick))
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.SetLineWidth(1)
		dc.DrawLine(marginLeft, y, marginLeft+plotWidth, y)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%d", tick), marginLeft-10, y, 1, 0.5)
	}

	// Axis frame.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(2)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotHeight)
	dc.DrawLine(marginLeft, marginTop+plotHeight, marginLeft+plotWidth, marginTop+plotHeight)
	dc.Stroke()

	// Category labels.
	for i, label := range lulc.Labels {
		dc.DrawStringAnchored(label, xFor(i), marginTop+plotHeight+25, 0.5, 0.5)
	}

	blue := [3]float64{0.12, 0.29, 0.85}
	green := [3]float64{0.13, 0.55, 0.13}

	for i, label := range lulc.Labels {
		x := xFor(i)
		v1 := perc1[label]
		v2 := perc2[label]

		dc.SetRGB(blue[0], blue[1], blue[2])
		dc.DrawCircle(x, yFor(v1), 7)
		dc.Fill()
		dc.SetRGB(green[0], green[1], green[2])
		dc.DrawCircle(x, yFor(v2), 7)
		dc.Fill()

		// Stagger the value labels so overlapping points stay readable.
		offset1, offset2 := 2.0, 10.0
		if v1 <= v2 {
			offset1, offset2 = 10.0, 2.0
		}
		dc.SetRGB(blue[0], blue[1], blue[2])
		dc.DrawStringAnchored(fmt.Sprintf("%.2f%%", v1), x, yFor(v1+offset1), 0.5, 0.5)
		dc.SetRGB(green[0], green[1], green[2])
		dc.DrawStringAnchored(fmt.Sprintf("%.2f%%", v2), x, yFor(v2+offset2), 0.5, 0.5)
	}

	// Title and axis captions.
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("Land Cover Changes", chartWidth/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored("Land Cover Categories", marginLeft+plotWidth/2, chartHeight-25, 0.5, 0.5)

	// Legend with the original upload names.
	legendX := marginLeft + plotWidth + 20
	dc.SetRGB(blue[0], blue[1], blue[2])
	dc.DrawCircle(legendX, marginTop+10, 6)
	dc.Fill()
	dc.DrawStringAnchored(file1Name, legendX+12, marginTop+10, 0, 0.5)
	dc.SetRGB(green[0], green[1], green[2])
	dc.DrawCircle(legendX, marginTop+32, 6)
	dc.Fill()
	dc.DrawStringAnchored(file2Name, legendX+12, marginTop+32, 0, 0.5)

	if err := dc.SavePNG(outputImagePath); err != nil {
		return fmt.Errorf("failed to save comparison chart: %w", err)
	}

	fmt.Println("Comparison chart created successfully as", outputImagePath)
	return nil
}
