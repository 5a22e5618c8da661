package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	framesBucket = "frames"
	metaBucket   = "meta"

	// schemaVersion is bumped when the record layout changes; ensureSchema
	// runs the upgrade exactly once per bump and is safe to re-run.
	schemaVersion uint64 = 1
)

// BoltStore is a FrameStore backed by a single bbolt file. The file is opened
// lazily on the first operation and reused for the process lifetime.
type BoltStore struct {
	path string

	once    sync.Once
	openErr error
	db      *bolt.DB
}

func NewBoltStore(path string) *BoltStore {
	return &BoltStore{path: path}
}

// open performs the lazy, idempotent initialization of the database file and
// its schema.
func (s *BoltStore) open() (*bolt.DB, error) {
	s.once.Do(func() {
		db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
		if err != nil {
			s.openErr = fmt.Errorf("%w: open %s: %v", ErrUnavailable, s.path, err)
			return
		}
		if err := db.Update(ensureSchema); err != nil {
			_ = db.Close()
			s.openErr = fmt.Errorf("%w: init schema: %v", ErrUnavailable, err)
			return
		}
		s.db = db
	})
	return s.db, s.openErr
}

func ensureSchema(tx *bolt.Tx) error {
	if _, err := tx.CreateBucketIfNotExists([]byte(framesBucket)); err != nil {
		return fmt.Errorf("create frames bucket: %w", err)
	}
	meta, err := tx.CreateBucketIfNotExists([]byte(metaBucket))
	if err != nil {
		return fmt.Errorf("create meta bucket: %w", err)
	}
	if v := meta.Get([]byte("schema_version")); v != nil && binary.BigEndian.Uint64(v) >= schemaVersion {
		return nil
	}
	return meta.Put([]byte("schema_version"), itob(schemaVersion))
}

func (s *BoltStore) Add(ctx context.Context, rec FrameRecord) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	db, err := s.open()
	if err != nil {
		return 0, err
	}

	var id uint64
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(framesBucket))
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		rec.ID = seq
		buf, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		if err := b.Put(itob(seq), buf); err != nil {
			return fmt.Errorf("put record: %w", err)
		}
		id = seq
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *BoltStore) ListAll(ctx context.Context) ([]FrameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	records := []FrameRecord{}
	err = db.View(func(tx *bolt.Tx) error {
		// Keys are big-endian sequence numbers, so a forward cursor walk
		// yields insertion order.
		return tx.Bucket([]byte(framesBucket)).ForEach(func(k, v []byte) error {
			var rec FrameRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode record %d: %w", binary.BigEndian.Uint64(k), err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *BoltStore) DeleteByID(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(framesBucket)).Delete(itob(id))
	})
}

func (s *BoltStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
