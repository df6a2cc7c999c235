package output

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/land-watch/lulc-change-api/internal/lulc"
)

type ChangeMatrixRow struct {
	Category       string  `csv:"Category"`
	Image1Percent  float64 `csv:"Image 1 (%)"`
	Image2Percent  float64 `csv:"Image 2 (%)"`
	ChangePercent  float64 `csv:"Change (%)"`
	AbsoluteChange float64 `csv:"Absolute Change (%)"`
}

// CreateChangeMatrix writes the per-class change matrix as a CSV, one row per
// land cover class in reporting order.
func CreateChangeMatrix(result *lulc.Result, outputPath string) error {
	rows := make([]ChangeMatrixRow, 0, len(lulc.Labels))
	for _, label := range lulc.Labels {
		change := result.Change[label]
		rows = append(rows, ChangeMatrixRow{
			Category:       label,
			Image1Percent:  result.Image1[label],
			Image2Percent:  result.Image2[label],
			ChangePercent:  change,
			AbsoluteChange: math.Abs(change),
		})
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create change matrix file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write change matrix: %w", err)
	}

	fmt.Println("Change matrix created successfully at", outputPath)
	return nil
}
