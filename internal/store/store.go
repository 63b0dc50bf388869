package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketSession = []byte("session")

// StateStore implements domain.StateStore on BoltDB. It holds only the
// persisted session slots (access_token, user); content is never
// written here. With an empty directory it runs memory-only, which the
// tests and one-shot commands use.
type StateStore struct {
	db *bolt.DB

	mu  sync.RWMutex
	mem map[string][]byte
}

// Open opens (or creates) the state database under dir.
func Open(dir string) (*StateStore, error) {
	if dir == "" {
		return &StateStore{mem: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	dbPath := filepath.Join(dir, "eduadmin.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open state db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &StateStore{db: db, mem: make(map[string][]byte)}, nil
}

func (s *StateStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	if v, ok := s.mem[key]; ok {
		s.mu.RUnlock()
		return v, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return nil, false
	}

	s.mu.Lock()
	s.mem[key] = data
	s.mu.Unlock()
	return data, true
}

func (s *StateStore) Put(key string, value []byte) error {
	s.mu.Lock()
	s.mem[key] = value
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put([]byte(key), value)
	})
}

func (s *StateStore) Delete(keys ...string) error {
	s.mu.Lock()
	for _, k := range keys {
		delete(s.mem, k)
	}
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		for _, k := range keys {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *StateStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
