package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gammazero/workerpool"
	"github.com/land-watch/lulc-change-api/internal/delivery"
	"github.com/land-watch/lulc-change-api/internal/properties"
)

// maxUploadBytes caps the in-memory part of multipart parsing.
const maxUploadBytes = 512 << 20

type Handler struct {
	runs *workerpool.WorkerPool
}

// NewHandler builds the API handler. Analysis runs are admitted through a
// bounded worker pool; each run still owns its private arrays and output
// directory, the pool only limits how many execute at once.
func NewHandler() *Handler {
	return &Handler{runs: workerpool.New(properties.MaxConcurrentRuns())}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", h.Analyze)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(properties.OutputDir()))))
	mux.HandleFunc("/", h.Root)
	return mux
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "LULC Change Detection API is running"})
}

type analyzeResponse struct {
	Results *delivery.RunResult `json:"results"`
	Outputs map[string]string   `json:"outputs"`
}

// Analyze accepts two multispectral TIFF uploads, runs change detection and
// responds with the percentage records plus links to the rendered artifacts.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart payload: %v", err))
		return
	}

	fields := [2]string{"image1", "image2"}
	files := [2]multipart.File{}
	names := [2]string{}
	for i, field := range fields {
		file, header, err := r.FormFile(field)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("missing upload field %q", field))
			return
		}
		defer file.Close()

		if !isTiffName(header.Filename) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf(
				"Invalid file type for %s: %s. Please upload a valid .TIF or .TIFF file.", field, header.Filename))
			return
		}
		files[i] = file
		names[i] = header.Filename
	}

	// Uploads go into a request-private temp dir, removed no matter how the
	// run ends.
	tmpDir, err := os.MkdirTemp("", "lulc-upload-")
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to stage uploads: %v", err))
		return
	}
	defer os.RemoveAll(tmpDir)

	paths := [2]string{}
	for i, file := range files {
		paths[i] = filepath.Join(tmpDir, fmt.Sprintf("image%d.tif", i+1))
		if err := saveUpload(file, paths[i]); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save %s: %v", names[i], err))
			return
		}
	}

	type outcome struct {
		result *delivery.RunResult
		err    error
	}
	done := make(chan outcome, 1)
	h.runs.Submit(func() {
		result, err := delivery.RunChangeAnalysis(paths[0], paths[1], names[0], names[1])
		done <- outcome{result, err}
	})
	o := <-done
	if o.err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", o.err))
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Results: o.result,
		Outputs: artifactURLs(o.result.Artifacts),
	})
}

func artifactURLs(artifacts delivery.Artifacts) map[string]string {
	return map[string]string{
		"preview_image1":        "/static/" + filepath.ToSlash(artifacts.PreviewImage1),
		"preview_image2":        "/static/" + filepath.ToSlash(artifacts.PreviewImage2),
		"classification_image1": "/static/" + filepath.ToSlash(artifacts.ClassificationImage1),
		"classification_image2": "/static/" + filepath.ToSlash(artifacts.ClassificationImage2),
		"change_map":            "/static/" + filepath.ToSlash(artifacts.ChangeMap),
		"comparison_graph":      "/static/" + filepath.ToSlash(artifacts.ComparisonGraph),
		"change_matrix":         "/static/" + filepath.ToSlash(artifacts.ChangeMatrix),
	}
}

func isTiffName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".tif") || strings.HasSuffix(lower, ".tiff")
}

func saveUpload(file multipart.File, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, file)
	return err
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fmt.Printf("Error encoding response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
