package ui

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/land-watch/lulc-change-api/internal/delivery"
	"github.com/land-watch/lulc-change-api/internal/lulc"
	"github.com/land-watch/lulc-change-api/internal/properties"
)

// AnalyzeChange handles the UI for running change detection on a local image pair
func AnalyzeChange() {
	fmt.Println("\033[33m\nWarning:\033[0m")
	fmt.Println("\033[33m- Both images must be co-registered TIFFs with the same dimensions.\033[0m")
	fmt.Println("\033[33m- Band order is expected as Blue, Green, Red, NIR, SWIR.\n\033[0m")
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("\033[34mEnter the path of the earlier image: \033[0m")
	image1Path, _ := reader.ReadString('\n')
	image1Path = strings.TrimSpace(image1Path)

	fmt.Print("\033[34mEnter the path of the later image: \033[0m")
	image2Path, _ := reader.ReadString('\n')
	image2Path = strings.TrimSpace(image2Path)

	for _, path := range []string{image1Path, image2Path} {
		lower := strings.ToLower(path)
		if !strings.HasSuffix(lower, ".tif") && !strings.HasSuffix(lower, ".tiff") {
			fmt.Printf("\n\033[31mInvalid file type: %s. Please provide a .tif or .tiff image.\033[0m\n", path)
			return
		}
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("\n\033[31mCannot access %s: %s\033[0m\n", path, err.Error())
			return
		}
	}

	result, err := delivery.RunChangeAnalysis(image1Path, image2Path, filepath.Base(image1Path), filepath.Base(image2Path))
	if err != nil {
		fmt.Printf("\n\033[31mError running change detection: %s\033[0m\n", err.Error())
		return
	}

	fmt.Printf("\n\033[32mAnalysis %s finished.\033[0m\n", result.RunID)
	for _, label := range lulc.Labels {
		fmt.Printf("\033[32m%-20s %+.2f%%\033[0m\n", label, result.Change[label])
	}
	fmt.Printf("\033[32mTotal change area: %.2f%%\033[0m\n", result.TotalChangeArea)
	fmt.Printf("\033[32mArtifacts saved under %s\033[0m\n", filepath.Join(properties.OutputDir(), result.RunID))
}
