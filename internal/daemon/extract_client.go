package daemon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ExtractorClient wraps the HTTP calls to the frame-extraction backend.
type ExtractorClient struct {
	baseURL string
	http    *http.Client
	probe   *http.Client
}

// BackendError carries the status and optional detail string of a failed
// backend call. Detail, when present, is surfaced to the user verbatim.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend request failed (%d)", e.Status)
}

// UserMessage returns the text shown under the submission form.
func (e *BackendError) UserMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "An error occurred while processing the video."
}

func NewExtractorClient(baseURL string, extractTimeout, probeTimeout time.Duration) *ExtractorClient {
	return &ExtractorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: extractTimeout},
		probe:   &http.Client{Timeout: probeTimeout},
	}
}

// BaseURL returns the backend base every request and image URL is resolved
// against.
func (c *ExtractorClient) BaseURL() string {
	return c.baseURL
}

func validateParams(p ExtractParams) error {
	if p.Method != MethodSSIM && p.Method != MethodPixel {
		return fmt.Errorf("method must be %q or %q", MethodSSIM, MethodPixel)
	}
	if p.Threshold < 0 || p.Threshold > 1 {
		return fmt.Errorf("threshold must be between 0.0 and 1.0")
	}
	return nil
}

// ExtractFile submits raw video bytes to the /extract-frames endpoint.
func (c *ExtractorClient) ExtractFile(ctx context.Context, filename string, video io.Reader, p ExtractParams) (ExtractionResult, error) {
	if err := validateParams(p); err != nil {
		return ExtractionResult{}, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("video_file", filename)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, video); err != nil {
		return ExtractionResult{}, fmt.Errorf("copy video: %w", err)
	}
	writeParams(writer, p)
	if err := writer.Close(); err != nil {
		return ExtractionResult{}, fmt.Errorf("finalize form: %w", err)
	}

	return c.post(ctx, "/extract-frames", &body, writer.FormDataContentType())
}

// ExtractURL submits a remote video URL to the /extract-frames-url endpoint.
// No file part is sent.
func (c *ExtractorClient) ExtractURL(ctx context.Context, reelURL string, p ExtractParams) (ExtractionResult, error) {
	if err := validateParams(p); err != nil {
		return ExtractionResult{}, err
	}
	if strings.TrimSpace(reelURL) == "" {
		return ExtractionResult{}, fmt.Errorf("reel URL is required")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	_ = writer.WriteField("reel_url", reelURL)
	writeParams(writer, p)
	if err := writer.Close(); err != nil {
		return ExtractionResult{}, fmt.Errorf("finalize form: %w", err)
	}

	return c.post(ctx, "/extract-frames-url", &body, writer.FormDataContentType())
}

func writeParams(writer *multipart.Writer, p ExtractParams) {
	_ = writer.WriteField("method", p.Method)
	_ = writer.WriteField("threshold", strconv.FormatFloat(p.Threshold, 'f', -1, 64))
}

func (c *ExtractorClient) post(ctx context.Context, path string, body io.Reader, contentType string) (ExtractionResult, error) {
	if c.baseURL == "" {
		return ExtractionResult{}, fmt.Errorf("backend base URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ExtractionResult{}, decodeBackendError(resp)
	}

	var result ExtractionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ExtractionResult{}, fmt.Errorf("decode backend response: %w", err)
	}
	if result.UniqueID == "" {
		return ExtractionResult{}, fmt.Errorf("backend returned empty unique id")
	}
	return result, nil
}

func decodeBackendError(resp *http.Response) error {
	berr := &BackendError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		berr.Detail = strings.TrimSpace(payload.Detail)
	}
	return berr
}

// Probe checks whether a previously cached frame's image is still
// retrievable. Any transport error or non-2xx status means stale.
func (c *ExtractorClient) Probe(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}
	resp, err := c.probe.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("probe %s: status %d", rawURL, resp.StatusCode)
	}
	return nil
}

// FrameURL builds the image URL for one frame of an extraction job.
func (c *ExtractorClient) FrameURL(uniqueID, name string) string {
	return fmt.Sprintf("%s/get-frame/%s/%s", c.baseURL, uniqueID, name)
}

// ResolveURL turns a stored server-relative path into an absolute URL.
// Already-absolute URLs pass through unchanged.
func (c *ExtractorClient) ResolveURL(stored string) string {
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	if !strings.HasPrefix(stored, "/") {
		stored = "/" + stored
	}
	return c.baseURL + stored
}

// RelativeURL strips the backend base from a URL so only the
// server-relative path is persisted.
func (c *ExtractorClient) RelativeURL(raw string) string {
	return strings.TrimPrefix(raw, c.baseURL)
}
