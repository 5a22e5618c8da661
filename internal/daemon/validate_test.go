package daemon

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frameview/internal/config"
	"frameview/internal/store"
)

func TestPruneStaleKeepsOnlyLiveRecords(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/frames/abc123/frame_0001.jpg" {
			_, _ = w.Write([]byte("jpeg bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer backend.Close()

	ctx := context.Background()
	st := store.NewMemoryStore()
	liveID, err := st.Add(ctx, store.FrameRecord{Name: "frame_0001.jpg", URL: "/frames/abc123/frame_0001.jpg", UniqueID: "abc123"})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	if _, err := st.Add(ctx, store.FrameRecord{Name: "frame_0002.jpg", URL: "/frames/expired/frame_0002.jpg", UniqueID: "expired"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	client := NewExtractorClient(backend.URL, 5*time.Second, 2*time.Second)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kept, pruned, total, err := PruneStale(ctx, st, client, logger)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if total != 2 || pruned != 1 {
		t.Fatalf("unexpected counts: total=%d pruned=%d", total, pruned)
	}
	if len(kept) != 1 || kept[0].ID != liveID {
		t.Fatalf("unexpected survivors: %+v", kept)
	}

	records, err := st.ListAll(ctx)
	if err != nil {
		t.Fatalf("list store: %v", err)
	}
	if len(records) != 1 || records[0].ID != liveID {
		t.Fatalf("stale record must be deleted from the store, got %+v", records)
	}
}

func TestPruneStaleTreatsNetworkErrorAsStale(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	baseURL := backend.URL
	backend.Close() // every probe now fails at the transport level

	ctx := context.Background()
	st := store.NewMemoryStore()
	if _, err := st.Add(ctx, store.FrameRecord{Name: "frame_0001.jpg", URL: "/frames/a/frame_0001.jpg", UniqueID: "a"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	client := NewExtractorClient(baseURL, 5*time.Second, time.Second)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kept, pruned, total, err := PruneStale(ctx, st, client, logger)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if total != 1 || pruned != 1 || len(kept) != 0 {
		t.Fatalf("network failure must prune the record: total=%d pruned=%d kept=%d", total, pruned, len(kept))
	}
}

func TestValidateCacheSetsCachedFlagAndSurvivorsVisible(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/frames/live/frame_0001.jpg" {
			_, _ = w.Write([]byte("jpeg bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer backend.Close()

	ctx := context.Background()
	st := store.NewMemoryStore()
	if _, err := st.Add(ctx, store.FrameRecord{Name: "frame_0001.jpg", URL: "/frames/live/frame_0001.jpg", UniqueID: "live"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	if _, err := st.Add(ctx, store.FrameRecord{Name: "frame_0002.jpg", URL: "/frames/gone/frame_0002.jpg", UniqueID: "gone"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	cfg := config.Config{BackendURL: backend.URL, ExtractTimeoutSeconds: 5, ProbeTimeoutSeconds: 2}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewExtractorClient(backend.URL, 5*time.Second, 2*time.Second)
	srv := NewServer(cfg, logger, st, client)

	if err := srv.ValidateCache(ctx); err != nil {
		t.Fatalf("validate cache: %v", err)
	}

	srv.mu.RLock()
	hasCached := srv.state.HasCachedFrames
	srv.mu.RUnlock()
	if !hasCached {
		t.Fatalf("expected has-cached-frames after validation")
	}

	// The all-cached-frames view shows exactly the surviving record.
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/frames", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("frames view: unexpected status %d", rec.Code)
	}
	var resp FramesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Records) != 1 || resp.Records[0].Name != "frame_0001.jpg" {
		t.Fatalf("expected only the surviving frame, got %+v", resp.Records)
	}
}

func TestValidateCacheWithEmptyStore(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()

	cfg := config.Config{BackendURL: backend.URL, ExtractTimeoutSeconds: 5, ProbeTimeoutSeconds: 2}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewExtractorClient(backend.URL, 5*time.Second, 2*time.Second)
	srv := NewServer(cfg, logger, store.NewMemoryStore(), client)

	if err := srv.ValidateCache(context.Background()); err != nil {
		t.Fatalf("validate cache: %v", err)
	}
	srv.mu.RLock()
	hasCached := srv.state.HasCachedFrames
	srv.mu.RUnlock()
	if hasCached {
		t.Fatalf("empty store must not report cached frames")
	}
}
