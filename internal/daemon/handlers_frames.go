package daemon

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleFrames godoc
// @Summary List all cached frames
// @Description Returns every cached frame record with its URL resolved against the backend base, plus the name-to-URL mapping the gallery renders.
// @Tags frames
// @Produce json
// @Success 200 {object} FramesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/frames [get]
func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListAll(r.Context())
	if err != nil {
		s.log.Error("list cached frames", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read cached frames")
		return
	}

	resp := FramesResponse{
		Frames:  make(map[string]string, len(records)),
		Records: make([]CachedFrame, 0, len(records)),
	}
	for _, rec := range records {
		resolved := s.extractor.ResolveURL(rec.URL)
		resp.Frames[rec.Name] = resolved
		resp.Records = append(resp.Records, CachedFrame{
			ID:       rec.ID,
			Name:     rec.Name,
			URL:      resolved,
			UniqueID: rec.UniqueID,
		})
	}

	s.mu.Lock()
	s.state = showAllRequested(s.state)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// handleDeleteFrame godoc
// @Summary Delete a cached frame
// @Description Removes one frame record from the local cache. Deleting an absent id succeeds.
// @Tags frames
// @Produce json
// @Param frameID path int true "Frame record ID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/frames/{frameID} [delete]
func (s *Server) handleDeleteFrame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "frameID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "frame id must be a positive integer")
		return
	}
	if err := s.store.DeleteByID(r.Context(), id); err != nil {
		s.log.Error("delete cached frame", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete cached frame")
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
