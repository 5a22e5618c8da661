package store

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Add(ctx, FrameRecord{Name: "frame_0001.jpg", URL: "/frames/a/frame_0001.jpg", UniqueID: "a"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	records, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].ID != id || records[0].Name != "frame_0001.jpg" {
		t.Fatalf("unexpected records: %+v", records)
	}

	if err := s.DeleteByID(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteByID(ctx, id); err != nil {
		t.Fatalf("second delete should not error: %v", err)
	}
	records, err = s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store, got %+v", records)
	}
}
