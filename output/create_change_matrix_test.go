package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/land-watch/lulc-change-api/internal/lulc"
)

func TestCreateChangeMatrix(t *testing.T) {
	result := &lulc.Result{
		Image1: lulc.Percentages{
			lulc.LabelBuiltUp: 10, lulc.LabelWater: 5, lulc.LabelForest: 40,
			lulc.LabelVegetation: 25, lulc.LabelBarren: 15,
		},
		Image2: lulc.Percentages{
			lulc.LabelBuiltUp: 25, lulc.LabelWater: 5, lulc.LabelForest: 20,
			lulc.LabelVegetation: 30, lulc.LabelBarren: 15,
		},
		Change: map[string]float64{
			lulc.LabelBuiltUp: 15, lulc.LabelWater: 0, lulc.LabelForest: -20,
			lulc.LabelVegetation: 5, lulc.LabelBarren: 0,
		},
	}
	outputPath := filepath.Join(t.TempDir(), "change_matrix.csv")

	if err := CreateChangeMatrix(result, outputPath); err != nil {
		t.Fatalf("CreateChangeMatrix failed: %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("failed to open change matrix: %v", err)
	}
	defer file.Close()

	var rows []ChangeMatrixRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		t.Fatalf("failed to read change matrix back: %v", err)
	}
	if len(rows) != len(lulc.Labels) {
		t.Fatalf("change matrix has %d rows, want %d", len(rows), len(lulc.Labels))
	}

	for i, label := range lulc.Labels {
		if rows[i].Category != label {
			t.Errorf("row %d category = %q, want %q", i, rows[i].Category, label)
		}
	}

	forest := rows[2]
	if forest.ChangePercent != -20 || forest.AbsoluteChange != 20 {
		t.Errorf("Forest row change = (%v, %v), want (-20, 20)", forest.ChangePercent, forest.AbsoluteChange)
	}
}
