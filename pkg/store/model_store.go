// Package store persists trained models. Snapshots are msgpack-encoded,
// s2-compressed, and kept in a bolt bucket so the server can come up without
// re-reading the corpus.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/dlevanto/contextspell/pkg/spell"

	"github.com/klauspost/compress/s2"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

const modelBucket = "contextspell"

var (
	modelKey       = []byte("model")
	errorTablesKey = []byte("error_tables")

	ErrSnapshotNotFound = errors.New("snapshot not found")
)

type ModelStore struct {
	db *bbolt.DB
	sync.Mutex
}

func NewModelStore(db *bbolt.DB) (*ModelStore, error) {
	if db.IsReadOnly() {
		return &ModelStore{db: db}, nil
	}
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(modelBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error when creating model bucket: %w", err)
	}
	return &ModelStore{db: db}, nil
}

func (s *ModelStore) put(key []byte, value interface{}) error {
	s.Lock()
	defer s.Unlock()

	encoded, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("error when marshalling snapshot: %w", err)
	}
	compressed := s2.Encode(nil, encoded)

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(modelBucket)).Put(key, compressed)
	})
}

func (s *ModelStore) get(key []byte, value interface{}) error {
	var compressed []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(modelBucket))
		if bucket == nil {
			return ErrSnapshotNotFound
		}
		raw := bucket.Get(key)
		if raw == nil {
			return ErrSnapshotNotFound
		}
		compressed = append(compressed, raw...)
		return nil
	})
	if err != nil {
		return err
	}

	encoded, err := s2.Decode(nil, compressed)
	if err != nil {
		return fmt.Errorf("error when decompressing snapshot: %w", err)
	}
	if err := msgpack.Unmarshal(encoded, value); err != nil {
		return fmt.Errorf("error when unmarshalling snapshot: %w", err)
	}
	return nil
}

// SaveModel writes the language model snapshot.
func (s *ModelStore) SaveModel(snap *lm.Snapshot) error {
	return s.put(modelKey, snap)
}

// LoadModel reads the language model snapshot, ErrSnapshotNotFound if absent.
func (s *ModelStore) LoadModel() (*lm.Snapshot, error) {
	snap := &lm.Snapshot{}
	if err := s.get(modelKey, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// SaveErrorTables writes the confusion matrices.
func (s *ModelStore) SaveErrorTables(tables *spell.ErrorTables) error {
	return s.put(errorTablesKey, tables)
}

// LoadErrorTables reads the confusion matrices, ErrSnapshotNotFound if absent.
func (s *ModelStore) LoadErrorTables() (*spell.ErrorTables, error) {
	tables := spell.NewErrorTables()
	if err := s.get(errorTablesKey, tables); err != nil {
		return nil, err
	}
	return tables, nil
}
