package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s := NewBoltStore(filepath.Join(t.TempDir(), "frames.db"))
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return s
}

func TestAddListRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	in := FrameRecord{Name: "frame_0001.jpg", URL: "/frames/abc123/frame_0001.jpg", UniqueID: "abc123"}
	id, err := s.Add(ctx, in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero assigned id")
	}

	records, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got.ID != id {
		t.Fatalf("unexpected id: got %d, want %d", got.ID, id)
	}
	if got.Name != in.Name || got.URL != in.URL || got.UniqueID != in.UniqueID {
		t.Fatalf("record does not match input: %+v", got)
	}
}

func TestListAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	names := []string{"frame_0001.jpg", "frame_0002.jpg", "frame_0003.jpg"}
	for _, name := range names {
		if _, err := s.Add(ctx, FrameRecord{Name: name, URL: "/frames/x/" + name, UniqueID: "x"}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	records, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != len(names) {
		t.Fatalf("expected %d records, got %d", len(names), len(records))
	}
	for i, rec := range records {
		if rec.Name != names[i] {
			t.Fatalf("position %d: got %q, want %q", i, rec.Name, names[i])
		}
	}
}

func TestDeleteByIDIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Add(ctx, FrameRecord{Name: "frame_0001.jpg", URL: "/frames/a/frame_0001.jpg", UniqueID: "a"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	keep, err := s.Add(ctx, FrameRecord{Name: "frame_0002.jpg", URL: "/frames/a/frame_0002.jpg", UniqueID: "a"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.DeleteByID(ctx, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.DeleteByID(ctx, id); err != nil {
		t.Fatalf("second delete of same id should not error: %v", err)
	}
	if err := s.DeleteByID(ctx, 9999); err != nil {
		t.Fatalf("delete of absent id should not error: %v", err)
	}

	records, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].ID != keep {
		t.Fatalf("expected only record %d to survive, got %+v", keep, records)
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.Add(ctx, FrameRecord{Name: "frame_0001.jpg", UniqueID: "a"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.DeleteByID(ctx, first); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second, err := s.Add(ctx, FrameRecord{Name: "frame_0002.jpg", UniqueID: "a"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second <= first {
		t.Fatalf("expected monotonically increasing ids, got %d then %d", first, second)
	}
}

func TestLazyOpenCreatesFileOnFirstUse(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "frames.db")
	s := NewBoltStore(path)
	defer s.Close()

	// No file yet; first operation opens and upgrades the schema.
	records, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list on fresh store: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store, got %d records", len(records))
	}
}

func TestOpenFailureReturnsUnavailable(t *testing.T) {
	ctx := context.Background()
	// A directory path cannot be opened as a bolt file.
	s := NewBoltStore(t.TempDir())
	defer s.Close()

	_, err := s.Add(ctx, FrameRecord{Name: "frame_0001.jpg"})
	if err == nil {
		t.Fatalf("expected storage-unavailable error")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
