package repository

import (
	"context"

	"reelkit-api/models"
)

type ProjectsRepository struct {
	store DocumentStore
}

func NewProjectsRepository(store DocumentStore) *ProjectsRepository {
	return &ProjectsRepository{store: store}
}

func (r *ProjectsRepository) CreateProject(ctx context.Context, project models.Project) (string, error) {
	doc, err := asDocument(project)
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, CollectionProjects, doc)
}

func (r *ProjectsRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Document, error) {
	return r.store.Find(ctx, CollectionProjects, Document{"user_id": userID}, limit)
}
