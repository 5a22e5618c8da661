package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory FrameStore used when the durable engine cannot
// be opened. Records survive for the process lifetime only.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  uint64
	records []FrameRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(ctx context.Context, rec FrameRecord) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rec.ID = s.nextID
	s.records = append(s.records, rec)
	return rec.ID, nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]FrameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FrameRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
