package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

type memoryRecord struct {
	value   json.RawMessage
	version int64
}

// MemoryStore is an in-process RecordStore used for tests and the "memory"
// store driver. It mirrors the Postgres implementation's semantics, including
// versioned compare-and-swap writes and key-ordered prefix scans.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]memoryRecord),
	}
}

// Get retrieves a record's value and version by key
func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, 0, false, nil
	}
	return rec.value, rec.version, true, nil
}

// Set writes a record unconditionally, bumping its version
func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	version := int64(1)
	if existing, ok := s.records[key]; ok {
		version = existing.version + 1
	}
	s.records[key] = memoryRecord{value: encoded, version: version}
	return nil
}

// CompareAndSwap writes only when the stored version matches expectedVersion.
// expectedVersion 0 means the key must not exist yet.
func (s *MemoryStore) CompareAndSwap(_ context.Context, key string, value any, expectedVersion int64) (bool, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[key]
	if expectedVersion == 0 {
		if ok {
			return false, nil
		}
		s.records[key] = memoryRecord{value: encoded, version: 1}
		return true, nil
	}

	if !ok || existing.version != expectedVersion {
		return false, nil
	}
	s.records[key] = memoryRecord{value: encoded, version: existing.version + 1}
	return true, nil
}

// Delete removes a record by key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

// ListByPrefix returns all record values whose key starts with prefix
func (s *MemoryStore) ListByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.records {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	values := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		values = append(values, s.records[key].value)
	}
	return values, nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() {}
