package daemon

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"frameview/internal/store"
)

// maxUploadBytes caps the in-memory portion of a multipart upload; larger
// bodies spill to temp files.
const maxUploadBytes = 64 << 20

// handleExtract godoc
// @Summary Submit a video for frame extraction
// @Description Accepts either a video file or a remote video URL plus method and threshold, forwards it to the extraction backend, and caches the resulting frames locally.
// @Tags extraction
// @Accept mpfd
// @Produce json
// @Param source formData string false "Source type: file or url" default(file)
// @Param video_file formData file false "Video file (file mode)"
// @Param reel_url formData string false "Remote video URL (url mode)"
// @Param method formData string true "Comparison method: ssim or pixel"
// @Param threshold formData number true "Difference threshold in [0,1]"
// @Success 200 {object} ExtractionResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/extract [post]
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}

	method := r.FormValue("method")
	if method != MethodSSIM && method != MethodPixel {
		writeFieldError(w, "method", "method must be ssim or pixel")
		return
	}
	threshold, err := strconv.ParseFloat(r.FormValue("threshold"), 64)
	if err != nil || threshold < 0 || threshold > 1 {
		writeFieldError(w, "threshold", "threshold must be a number between 0.0 and 1.0")
		return
	}
	params := ExtractParams{Method: method, Threshold: threshold}

	var result ExtractionResult
	switch source := r.FormValue("source"); source {
	case "url":
		reelURL := strings.TrimSpace(r.FormValue("reel_url"))
		if reelURL == "" {
			writeFieldError(w, "reel_url", "Please enter a video URL.")
			return
		}
		result, err = s.extractor.ExtractURL(r.Context(), reelURL, params)
	case "", "file":
		f, hdr, ferr := r.FormFile("video_file")
		if ferr != nil {
			writeFieldError(w, "video_file", "Please select a file.")
			return
		}
		defer f.Close()
		result, err = s.extractor.ExtractFile(r.Context(), hdr.Filename, f, params)
	default:
		writeFieldError(w, "source", "source must be file or url")
		return
	}
	if err != nil {
		s.log.Error("extraction failed", "error", err)
		var berr *BackendError
		if errors.As(err, &berr) {
			writeError(w, http.StatusBadGateway, berr.UserMessage())
			return
		}
		writeError(w, http.StatusBadGateway, "An error occurred while processing the video.")
		return
	}

	s.persistFrames(r, result)

	s.mu.Lock()
	s.state = submitSucceeded(s.state, result)
	s.mu.Unlock()

	// The page renders fresh results through the get-frame endpoint.
	resolved := make(map[string]string, len(result.Frames))
	for name := range result.Frames {
		resolved[name] = s.extractor.FrameURL(result.UniqueID, name)
	}
	writeJSON(w, http.StatusOK, ExtractionResult{UniqueID: result.UniqueID, Frames: resolved})
}

// persistFrames caches one record per extracted frame. Caching is
// best-effort: a failed write is logged and the response still succeeds.
func (s *Server) persistFrames(r *http.Request, result ExtractionResult) {
	for name, url := range result.Frames {
		rec := store.FrameRecord{
			Name:     name,
			URL:      s.extractor.RelativeURL(url),
			UniqueID: result.UniqueID,
		}
		if _, err := s.store.Add(r.Context(), rec); err != nil {
			s.log.Warn("failed to cache frame", "name", name, "error", err)
		}
	}
}
