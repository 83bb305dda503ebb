package repository

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-process DocumentStore used when no DATABASE_URL is
// configured, and by tests. Semantics match PostgresStore: documents are
// normalized through JSON on insert, filters match on key equality, results
// come back in insertion order.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]storedDoc
}

type storedDoc struct {
	id   string
	data Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]storedDoc)}
}

func (s *MemoryStore) Create(_ context.Context, collection string, doc Document) (string, error) {
	// Round-trip so stored values carry the same types a JSONB read would
	// (numbers as float64, nested maps as map[string]interface{}).
	normalized, err := asDocument(doc)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.docs[collection] = append(s.docs[collection], storedDoc{id: id, data: normalized})
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter Document, limit int) ([]Document, error) {
	normalized, err := asDocument(filter)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Document
	for _, d := range s.docs[collection] {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !matchesFilter(d.data, normalized) {
			continue
		}
		withID := Document{"_id": d.id}
		for k, v := range d.data {
			withID[k] = v
		}
		out = append(out, withID)
	}
	return out, nil
}

// matchesFilter reports whether every filter key is present in doc with a
// deep-equal value. An empty filter matches everything.
func matchesFilter(doc, filter Document) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
