package memstore

import (
	"encoding/json"
	"sync"

	"github.com/pg84s/loankv/lib/store"
)

// storeImpl holds the whole table behind one exclusive lock. Whole-store
// operations (Keys, Clear) need an atomic view of every entry, so a single
// coarse lock is the contract here rather than a sharded map.
type storeImpl struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewMemStore creates a new in-memory store instance. The store starts empty
// and lives for the lifetime of the process.
func NewMemStore() store.IStore {
	return &storeImpl{
		data: make(map[string]json.RawMessage),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *storeImpl) Get(key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	return val, ok, nil
}

func (s *storeImpl) Delete(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.data[key]
	delete(s.data, key)
	return existed, nil
}

func (s *storeImpl) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *storeImpl) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	return nil
}
