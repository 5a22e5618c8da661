package daemon

import (
	"net/http"

	"frameview/internal/web"
)

// handleIndex serves the single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	hasCached := s.state.HasCachedFrames
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderIndex(w, web.PageData{
		BackendURL:      s.extractor.BaseURL(),
		HasCachedFrames: hasCached,
		Version:         Version,
	}); err != nil {
		s.log.Error("render index", "error", err)
	}
}

// handleHealth godoc
// @Summary Health check
// @Description Returns service health and version.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: Version})
}

// handleState godoc
// @Summary Current shell state
// @Description Returns which view is active, whether cached frames exist, and the in-memory extraction result if any.
// @Tags system
// @Produce json
// @Success 200 {object} StateResponse
// @Router /api/state [get]
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := StateResponse{
		View:            string(s.state.View),
		HasCachedFrames: s.state.HasCachedFrames,
		Result:          s.state.Result,
	}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, resp)
}

// handleReset godoc
// @Summary Discard the current result
// @Description Clears the in-memory extraction result ("try another video"). Persisted records are untouched.
// @Tags system
// @Produce json
// @Success 200 {object} StateResponse
// @Router /api/reset [post]
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.state = resetRequested(s.state)
	resp := StateResponse{
		View:            string(s.state.View),
		HasCachedFrames: s.state.HasCachedFrames,
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}
