package repository

import (
	"context"

	"reelkit-api/models"
)

type TemplatesRepository struct {
	store DocumentStore
}

func NewTemplatesRepository(store DocumentStore) *TemplatesRepository {
	return &TemplatesRepository{store: store}
}

func (r *TemplatesRepository) List(ctx context.Context, limit int) ([]Document, error) {
	return r.store.Find(ctx, CollectionTemplate, nil, limit)
}

// EnsureTemplate creates the template if no document with its key exists yet.
// Called on startup for the built-in catalog.
func (r *TemplatesRepository) EnsureTemplate(ctx context.Context, tpl models.Template) error {
	existing, err := r.store.Find(ctx, CollectionTemplate, Document{"key": tpl.Key}, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	doc, err := asDocument(tpl)
	if err != nil {
		return err
	}
	_, err = r.store.Create(ctx, CollectionTemplate, doc)
	return err
}
