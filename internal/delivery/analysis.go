package delivery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/land-watch/lulc-change-api/internal/cache"
	"github.com/land-watch/lulc-change-api/internal/lulc"
	"github.com/land-watch/lulc-change-api/internal/notification"
	"github.com/land-watch/lulc-change-api/internal/properties"
	"github.com/land-watch/lulc-change-api/internal/raster"
	"github.com/land-watch/lulc-change-api/output"
	"github.com/paulmach/orb"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

type ImageInfo struct {
	Name      string    `json:"name"`
	Bands     int       `json:"bands"`
	Footprint orb.Bound `json:"footprint"`
}

// Artifacts holds the rendered output files of one run, as paths relative to
// the output directory.
type Artifacts struct {
	PreviewImage1        string `json:"preview_image1"`
	PreviewImage2        string `json:"preview_image2"`
	ClassificationImage1 string `json:"classification_image1"`
	ClassificationImage2 string `json:"classification_image2"`
	ChangeMap            string `json:"change_map"`
	ComparisonGraph      string `json:"comparison_graph"`
	ChangeMatrix         string `json:"change_matrix"`
}

// RunResult is the composite payload of one change detection run.
type RunResult struct {
	RunID           string             `json:"run_id"`
	Image1          lulc.Percentages   `json:"image1"`
	Image2          lulc.Percentages   `json:"image2"`
	Change          map[string]float64 `json:"change"`
	TotalChangeArea float64            `json:"total_change_area"`
	Images          [2]ImageInfo       `json:"images"`
	Artifacts       Artifacts          `json:"artifacts"`
}

var resultCache = cache.NewFileCache[RunResult]("cache")

// RunChangeAnalysis executes a full change detection run over two TIFF files:
// decode, previews, core pipeline, rendered artifacts and CSV export. All
// outputs land in a run-private directory under the output dir, so concurrent
// runs never share intermediate state. Identical input pairs are served from
// the result cache while their run directory still exists.
func RunChangeAnalysis(image1Path, image2Path, file1Name, file2Name string) (*RunResult, error) {
	cacheKey, err := resultCache.KeyForFiles(image1Path, image2Path)
	if err == nil {
		if cached, ok := resultCache.Get(cacheKey); ok {
			if _, err := os.Stat(filepath.Join(properties.OutputDir(), cached.RunID)); err == nil {
				fmt.Printf("Serving cached analysis %s for %s + %s\n", cached.RunID, file1Name, file2Name)
				return &cached, nil
			}
		}
	}

	runID := uuid.NewString()
	runDir := filepath.Join(properties.OutputDir(), runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	fmt.Printf("Starting change detection analysis %s\n", runID)
	fmt.Printf("File 1: %s\nFile 2: %s\n", file1Name, file2Name)

	// Decode both images and render their previews; the two halves are
	// independent, each touching only its own arrays.
	var rasters [2]*raster.Raster
	paths := [2]string{image1Path, image2Path}
	g := new(errgroup.Group)
	for i := range paths {
		g.Go(func() error {
			r, err := raster.Read(paths[i])
			if err != nil {
				return err
			}
			rasters[i] = r
			previewPath := filepath.Join(runDir, fmt.Sprintf("preview_image%d.png", i+1))
			if err := raster.WritePreview(r.Image, previewPath); err != nil {
				fmt.Printf("\033[33mWarning: preview for image %d failed: %v\033[0m\n", i+1, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		reportFailure(err)
		return nil, err
	}

	result, err := lulc.Run(rasters[0].Image, rasters[1].Image)
	if err != nil {
		reportFailure(err)
		return nil, err
	}

	artifacts := Artifacts{
		PreviewImage1:        filepath.Join(runID, "preview_image1.png"),
		PreviewImage2:        filepath.Join(runID, "preview_image2.png"),
		ClassificationImage1: filepath.Join(runID, "classification_image1.png"),
		ClassificationImage2: filepath.Join(runID, "classification_image2.png"),
		ChangeMap:            filepath.Join(runID, "change_map.png"),
		ComparisonGraph:      filepath.Join(runID, "comparison_graph.png"),
		ChangeMatrix:         filepath.Join(runID, "change_matrix.csv"),
	}

	renders := []func() error{
		func() error {
			return output.CreateChangeMap(result.ChangeMask, filepath.Join(runDir, "change_map.png"))
		},
		func() error {
			return output.CreateClassificationImage(result.Classification1, filepath.Join(runDir, "classification_image1.png"))
		},
		func() error {
			return output.CreateClassificationImage(result.Classification2, filepath.Join(runDir, "classification_image2.png"))
		},
		func() error {
			return output.CreateComparisonChart(result.Image1, result.Image2, file1Name, file2Name, filepath.Join(runDir, "comparison_graph.png"))
		},
		func() error { return output.CreateChangeMatrix(result, filepath.Join(runDir, "change_matrix.csv")) },
	}
	progressBar := progressbar.Default(int64(len(renders)), "Rendering artifacts")
	for _, render := range renders {
		if err := render(); err != nil {
			reportFailure(err)
			return nil, err
		}
		progressBar.Add(1)
	}
	fmt.Println()

	printResults(result)

	runResult := &RunResult{
		RunID:           runID,
		Image1:          result.Image1,
		Image2:          result.Image2,
		Change:          result.Change,
		TotalChangeArea: result.TotalChangeArea,
		Images: [2]ImageInfo{
			{Name: file1Name, Bands: len(rasters[0].Bands), Footprint: rasters[0].Footprint},
			{Name: file2Name, Bands: len(rasters[1].Bands), Footprint: rasters[1].Footprint},
		},
		Artifacts: artifacts,
	}

	if cacheKey != "" {
		if err := resultCache.Set(cacheKey, *runResult); err != nil {
			fmt.Printf("\033[33mWarning: failed to cache analysis result: %v\033[0m\n", err)
		}
	}

	err = notification.SendDiscordSuccessNotification(fmt.Sprintf(
		"Change detection %s finished for %s + %s. Total change area: %.2f%%", runID, file1Name, file2Name, result.TotalChangeArea))
	if err != nil {
		fmt.Printf("\033[33mWarning: failed to send notification: %v\033[0m\n", err)
	}

	return runResult, nil
}

func reportFailure(runErr error) {
	if err := notification.SendDiscordErrorNotification(runErr.Error()); err != nil {
		fmt.Printf("\033[33mWarning: failed to send notification: %v\033[0m\n", err)
	}
}

func printResults(result *lulc.Result) {
	fmt.Println("============================================================")
	fmt.Println("LAND COVER ANALYSIS RESULTS")
	fmt.Println("============================================================")
	for _, label := range lulc.Labels {
		fmt.Printf("%-20s | Image1: %6.2f%% | Image2: %6.2f%% | Change: %+6.2f%%\n",
			label, result.Image1[label], result.Image2[label], result.Change[label])
	}
	fmt.Printf("Total change area: %.2f%%\n", result.TotalChangeArea)
	fmt.Println("============================================================")
}
