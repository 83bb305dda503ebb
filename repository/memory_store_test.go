package repository

import (
	"context"
	"testing"

	"reelkit-api/models"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreCreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Create(ctx, CollectionProjects, Document{"user_id": "u1", "title": "Trailer"})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	_, err = store.Create(ctx, CollectionProjects, Document{"user_id": "u2", "title": "Other"})
	assert.NoError(t, err)

	docs, err := store.Find(ctx, CollectionProjects, Document{"user_id": "u1"}, 50)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, id, docs[0]["_id"])
	assert.Equal(t, "Trailer", docs[0]["title"])
}

func TestMemoryStoreEmptyFilterMatchesAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, CollectionTemplate, Document{"key": "k"})
		assert.NoError(t, err)
	}

	all, err := store.Find(ctx, CollectionTemplate, nil, 50)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := store.Find(ctx, CollectionTemplate, Document{}, 2)
	assert.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStoreNonPositiveLimitIsUnbounded(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, CollectionJobs, Document{"user_id": "u1"})
		assert.NoError(t, err)
	}

	zero, err := store.Find(ctx, CollectionJobs, nil, 0)
	assert.NoError(t, err)
	assert.Len(t, zero, 3)

	negative, err := store.Find(ctx, CollectionJobs, nil, -1)
	assert.NoError(t, err)
	assert.Len(t, negative, 3)
}

func TestMemoryStoreCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Create(ctx, CollectionUsers, Document{"email": "a@b.c"})
	assert.NoError(t, err)

	docs, err := store.Find(ctx, CollectionProjects, nil, 50)
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStoreNumericFilterNormalization(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Create(ctx, CollectionJobs, Document{"attempt": 1})
	assert.NoError(t, err)

	// Stored ints become float64 through JSON; filters must still match.
	docs, err := store.Find(ctx, CollectionJobs, Document{"attempt": 1}, 50)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestUsersRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUsersRepository(NewMemoryStore())

	missing, err := users.FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	id, err := users.CreateUser(ctx, models.User{Email: "a@example.com", Provider: "email", IsActive: true})
	assert.NoError(t, err)

	found, err := users.FindByEmail(ctx, "a@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, id, found["_id"])
	assert.Equal(t, "a@example.com", found["email"])
}

func TestTemplatesRepositoryEnsureIsIdempotent(t *testing.T) {
	ctx := context.Background()
	templates := NewTemplatesRepository(NewMemoryStore())
	tpl := models.Template{Key: "tiktok_fast", Title: "TikTok Fast Cut", AspectRatio: "9:16", Timeline: models.NewTimeline()}

	assert.NoError(t, templates.EnsureTemplate(ctx, tpl))
	assert.NoError(t, templates.EnsureTemplate(ctx, tpl))

	docs, err := templates.List(ctx, 50)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
}
