package repository

import (
	"context"

	"reelkit-api/models"
)

type UsersRepository struct {
	store DocumentStore
}

func NewUsersRepository(store DocumentStore) *UsersRepository {
	return &UsersRepository{store: store}
}

func (r *UsersRepository) CreateUser(ctx context.Context, user models.User) (string, error) {
	doc, err := asDocument(user)
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, CollectionUsers, doc)
}

// FindByEmail returns the first user document with the given email, or nil.
func (r *UsersRepository) FindByEmail(ctx context.Context, email string) (Document, error) {
	docs, err := r.store.Find(ctx, CollectionUsers, Document{"email": email}, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *UsersRepository) CreateSession(ctx context.Context, session models.AuthSession) (string, error) {
	doc, err := asDocument(session)
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, CollectionSessions, doc)
}
