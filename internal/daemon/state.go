package daemon

// View names which screen the shell is showing.
type View string

const (
	// ViewIdle shows the upload form with no result.
	ViewIdle View = "idle"
	// ViewShowingResult shows the frames of a just-completed extraction.
	ViewShowingResult View = "showing_result"
	// ViewShowingAllCached shows every frame surviving in the local store.
	ViewShowingAllCached View = "showing_all_cached"
)

// AppState is the shell's whole state value. Transitions below are pure
// functions from (state, event) to new state; the Server serializes access.
type AppState struct {
	View            View
	Result          *ExtractionResult
	HasCachedFrames bool
}

// submitSucceeded records a fresh extraction result and shows it.
func submitSucceeded(s AppState, result ExtractionResult) AppState {
	s.View = ViewShowingResult
	s.Result = &result
	s.HasCachedFrames = true
	return s
}

// resetRequested returns to the upload form ("try another video"). The
// in-memory result is discarded; persisted records are untouched.
func resetRequested(s AppState) AppState {
	s.View = ViewIdle
	s.Result = nil
	return s
}

// showAllRequested switches to the cached gallery. The current result is
// retained so the user can switch back.
func showAllRequested(s AppState) AppState {
	s.View = ViewShowingAllCached
	return s
}

// cacheValidated records the outcome of the startup liveness check.
// hadAny reflects whether any record existed before pruning.
func cacheValidated(s AppState, hadAny bool) AppState {
	s.HasCachedFrames = hadAny
	return s
}
