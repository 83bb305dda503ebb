package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

// PostgresStore keeps every document in a single JSONB-backed table.
// Filters are applied with JSONB containment, so an empty filter matches
// every document in the collection.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, collection, data, created_at)
		VALUES ($1, $2, $3, NOW())
	`, id, collection, raw)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) Find(ctx context.Context, collection string, filter Document, limit int) ([]Document, error) {
	if filter == nil {
		filter = Document{}
	}
	rawFilter, err := json.Marshal(filter)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, data FROM documents
		WHERE collection = $1 AND data @> $2::jsonb
		ORDER BY created_at
	`
	args := []interface{}{collection, rawFilter}
	// Non-positive limit means unbounded, same as MemoryStore.
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		doc["_id"] = id
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
