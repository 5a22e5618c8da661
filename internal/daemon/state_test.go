package daemon

import "testing"

func TestSubmitSucceededShowsResult(t *testing.T) {
	s := AppState{View: ViewIdle}
	result := ExtractionResult{
		UniqueID: "abc123",
		Frames:   map[string]string{"frame_0001.jpg": "/frames/abc123/frame_0001.jpg"},
	}

	next := submitSucceeded(s, result)

	if next.View != ViewShowingResult {
		t.Fatalf("unexpected view: %q", next.View)
	}
	if next.Result == nil || next.Result.UniqueID != "abc123" {
		t.Fatalf("expected result to be stored, got %+v", next.Result)
	}
	if !next.HasCachedFrames {
		t.Fatalf("expected has-cached-frames to be set")
	}
	if s.View != ViewIdle || s.Result != nil {
		t.Fatalf("transition mutated its input: %+v", s)
	}
}

func TestResetClearsResultButNotCacheFlag(t *testing.T) {
	s := AppState{
		View:            ViewShowingResult,
		Result:          &ExtractionResult{UniqueID: "abc123"},
		HasCachedFrames: true,
	}

	next := resetRequested(s)

	if next.View != ViewIdle {
		t.Fatalf("unexpected view: %q", next.View)
	}
	if next.Result != nil {
		t.Fatalf("expected result cleared, got %+v", next.Result)
	}
	if !next.HasCachedFrames {
		t.Fatalf("reset must not forget cached frames")
	}
}

func TestShowAllRetainsResult(t *testing.T) {
	s := AppState{
		View:   ViewShowingResult,
		Result: &ExtractionResult{UniqueID: "abc123"},
	}

	next := showAllRequested(s)

	if next.View != ViewShowingAllCached {
		t.Fatalf("unexpected view: %q", next.View)
	}
	if next.Result == nil {
		t.Fatalf("switching views must not discard the result")
	}
}

func TestCacheValidatedSetsFlagFromPrePruneCount(t *testing.T) {
	if next := cacheValidated(AppState{}, true); !next.HasCachedFrames {
		t.Fatalf("expected flag set when records existed")
	}
	if next := cacheValidated(AppState{HasCachedFrames: true}, false); next.HasCachedFrames {
		t.Fatalf("expected flag cleared when no records existed")
	}
}
