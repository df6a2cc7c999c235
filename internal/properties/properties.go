package properties

import (
	"os"
	"strconv"
)

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func OutputDir() string {
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		return dir
	}
	return "./outputs"
}

func ListenAddr() string {
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		return addr
	}
	return ":8000"
}

// MaxConcurrentRuns bounds how many analysis runs execute at once. Each run
// keeps its own arrays and output directory, so the bound is about memory,
// not correctness.
func MaxConcurrentRuns() int {
	if v, err := strconv.Atoi(os.Getenv("MAX_CONCURRENT_RUNS")); err == nil && v > 0 {
		return v
	}
	return 2
}

type Color struct {
	R, G, B uint8
}

// ColorMap assigns a render color to every land cover class label.
var ColorMap = map[string]Color{
	"Built-up Area": {217, 72, 47},
	"Water":         {52, 112, 216},
	"Forest":        {22, 102, 30},
	"Vegetation":    {123, 199, 82},
	"Barren Land":   {194, 178, 128},
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
