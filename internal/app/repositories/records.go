package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordStore is the flat key-value persistence boundary. Keys are strings of
// the form "<type-prefix>:<id>"; values are whole JSON documents. Version
// numbers start at 1 and increment on every successful write, which lets
// read-modify-write callers use CompareAndSwap to avoid lost updates.
type RecordStore interface {
	// Get returns the raw value and its current version. found is false when
	// the key does not exist; that is not an error.
	Get(ctx context.Context, key string) (value json.RawMessage, version int64, found bool, err error)

	// Set writes the value unconditionally, creating the key if needed.
	Set(ctx context.Context, key string, value any) error

	// CompareAndSwap writes the value only if the key's current version still
	// equals expectedVersion (0 means "key must not exist"). Returns false
	// without writing when the version has moved on.
	CompareAndSwap(ctx context.Context, key string, value any, expectedVersion int64) (bool, error)

	// Delete removes the key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// ListByPrefix returns the values of all keys with the given prefix,
	// ordered by key ascending.
	ListByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)

	// Close releases any underlying resources.
	Close()
}

// NewRecordID builds a store key for a freshly created record: the type
// prefix, the creation time in unix milliseconds, and a short random suffix
// so simultaneous creations cannot collide. The millisecond component keeps
// keys roughly creation-ordered under prefix scans.
func NewRecordID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%d-%s", prefix, now.UnixMilli(), uuid.NewString()[:8])
}

// GetRecord fetches and decodes a single record. Returns (nil, 0, nil) when
// the key is absent.
func GetRecord[T any](ctx context.Context, store RecordStore, key string) (*T, int64, error) {
	raw, version, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, 0, fmt.Errorf("get record %s: %w", key, err)
	}
	if !found {
		return nil, 0, nil
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, 0, fmt.Errorf("decode record %s: %w", key, err)
	}
	return &out, version, nil
}

// ListRecords fetches and decodes all records under a prefix, preserving the
// store's key ordering. Undecodable entries are skipped rather than failing
// the whole scan.
func ListRecords[T any](ctx context.Context, store RecordStore, prefix string) ([]T, error) {
	raws, err := store.ListByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list records %s: %w", prefix, err)
	}

	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
