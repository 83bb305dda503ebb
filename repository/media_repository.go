package repository

import (
	"context"

	"reelkit-api/models"
)

type MediaRepository struct {
	store DocumentStore
}

func NewMediaRepository(store DocumentStore) *MediaRepository {
	return &MediaRepository{store: store}
}

func (r *MediaRepository) CreateAsset(ctx context.Context, asset models.MediaAsset) (string, error) {
	doc, err := asDocument(asset)
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, CollectionAssets, doc)
}

func (r *MediaRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Document, error) {
	return r.store.Find(ctx, CollectionAssets, Document{"user_id": userID}, limit)
}
