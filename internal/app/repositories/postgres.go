package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements RecordStore on a single jsonb table. All writes go
// through upserts; prefix scans ride the primary key pattern index.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get retrieves a record's value and version by key
func (s *PostgresStore) Get(ctx context.Context, key string) (json.RawMessage, int64, bool, error) {
	var value json.RawMessage
	var version int64

	query := `SELECT record_value, version FROM records WHERE record_key = $1`
	err := s.db.QueryRow(ctx, query, key).Scan(&value, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, false, nil
		}
		return nil, 0, false, fmt.Errorf("query record: %w", err)
	}

	return value, version, true, nil
}

// Set writes a record unconditionally, bumping its version
func (s *PostgresStore) Set(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	query := `
		INSERT INTO records (record_key, record_value, version, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (record_key) DO UPDATE
		SET record_value = EXCLUDED.record_value,
		    version = records.version + 1,
		    updated_at = NOW()`
	if _, err := s.db.Exec(ctx, query, key, encoded); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

// CompareAndSwap writes only when the stored version matches expectedVersion.
// expectedVersion 0 means the key must not exist yet.
func (s *PostgresStore) CompareAndSwap(ctx context.Context, key string, value any, expectedVersion int64) (bool, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("encode record: %w", err)
	}

	if expectedVersion == 0 {
		query := `
			INSERT INTO records (record_key, record_value, version, updated_at)
			VALUES ($1, $2, 1, NOW())
			ON CONFLICT (record_key) DO NOTHING`
		tag, err := s.db.Exec(ctx, query, key, encoded)
		if err != nil {
			return false, fmt.Errorf("insert record: %w", err)
		}
		return tag.RowsAffected() == 1, nil
	}

	query := `
		UPDATE records
		SET record_value = $2, version = version + 1, updated_at = NOW()
		WHERE record_key = $1 AND version = $3`
	tag, err := s.db.Exec(ctx, query, key, encoded, expectedVersion)
	if err != nil {
		return false, fmt.Errorf("update record: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes a record by key
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM records WHERE record_key = $1`, key); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// ListByPrefix returns all record values whose key starts with prefix
func (s *PostgresStore) ListByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	query := `SELECT record_value FROM records WHERE record_key LIKE $1 || '%' ORDER BY record_key`
	rows, err := s.db.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	defer rows.Close()

	var values []json.RawMessage
	for rows.Next() {
		var value json.RawMessage
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan record row: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return values, nil
}

// Close releases the connection pool
func (s *PostgresStore) Close() {
	if s.db != nil {
		s.db.Close()
	}
}
