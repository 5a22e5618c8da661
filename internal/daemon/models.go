package daemon

// Extraction methods understood by the backend.
const (
	MethodSSIM  = "ssim"
	MethodPixel = "pixel"
)

// ExtractionResult is the backend's answer to one submission. It lives in
// memory only; individual frames are persisted separately.
type ExtractionResult struct {
	UniqueID string            `json:"unique_id" example:"abc123"`
	Frames   map[string]string `json:"frames"`
}

// ExtractParams are the tuning knobs sent along with every submission.
type ExtractParams struct {
	Method    string  `json:"method" example:"ssim"`
	Threshold float64 `json:"threshold" example:"0.8"`
}

// ErrorResponse is the standard error payload. Field names the offending
// form field for validation errors.
type ErrorResponse struct {
	Error string `json:"error" example:"description of the error"`
	Field string `json:"field,omitempty" example:"video_file"`
}

// HealthResponse describes the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
}

// StateResponse summarizes the shell state for the served page.
type StateResponse struct {
	View            string            `json:"view" example:"idle"`
	HasCachedFrames bool              `json:"has_cached_frames" example:"true"`
	Result          *ExtractionResult `json:"result,omitempty"`
}

// CachedFrame is one persisted frame record with its URL resolved against
// the backend base.
type CachedFrame struct {
	ID       uint64 `json:"id" example:"3"`
	Name     string `json:"name" example:"frame_0001.jpg"`
	URL      string `json:"url" example:"http://127.0.0.1:8000/frames/abc123/frame_0001.jpg"`
	UniqueID string `json:"unique_id" example:"abc123"`
}

// FramesResponse is the "all cached frames" view payload.
type FramesResponse struct {
	Frames  map[string]string `json:"frames"`
	Records []CachedFrame     `json:"records"`
}

// StatusResponse is a generic status wrapper.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
