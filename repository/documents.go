package repository

import (
	"context"
	"encoding/json"
)

// Logical collection names. One collection per entity kind, keyed by the
// lowercase entity name.
const (
	CollectionUsers    = "user"
	CollectionSessions = "authsession"
	CollectionProjects = "project"
	CollectionAssets   = "mediaasset"
	CollectionJobs     = "renderjob"
	CollectionTemplate = "template"
)

// Collections lists every logical collection, for the schema endpoint.
func Collections() []string {
	return []string{
		CollectionUsers,
		CollectionSessions,
		CollectionProjects,
		CollectionAssets,
		CollectionJobs,
		CollectionTemplate,
	}
}

// Document is a schemaless stored record. Documents returned by Find carry
// their identifier under the "_id" key as a string.
type Document = map[string]interface{}

// DocumentStore is the persistence boundary: schemaless create and filtered
// find, nothing else. No transactions, no migrations beyond the backing
// table itself. A non-positive limit means unbounded.
type DocumentStore interface {
	Create(ctx context.Context, collection string, doc Document) (string, error)
	Find(ctx context.Context, collection string, filter Document, limit int) ([]Document, error)
}

// asDocument converts a typed model into its stored map form via a JSON
// round-trip, so both store backends see identical value types.
func asDocument(v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
