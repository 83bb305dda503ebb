package repository

import (
	"context"

	"reelkit-api/models"
)

type JobsRepository struct {
	store DocumentStore
}

func NewJobsRepository(store DocumentStore) *JobsRepository {
	return &JobsRepository{store: store}
}

func (r *JobsRepository) CreateJob(ctx context.Context, job models.RenderJob) (string, error) {
	doc, err := asDocument(job)
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, CollectionJobs, doc)
}

func (r *JobsRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Document, error) {
	return r.store.Find(ctx, CollectionJobs, Document{"user_id": userID}, limit)
}
