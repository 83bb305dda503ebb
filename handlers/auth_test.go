package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reelkit-api/repository"

	"github.com/stretchr/testify/assert"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginCreatesUserAndToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postJSON("/auth/login", `{"email":"ada@example.com","name":"Ada"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["user_id"])

	users, err := env.store.Find(context.Background(), repository.CollectionUsers, nil, 50)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "email", users[0]["provider"])

	sessions, err := env.store.Find(context.Background(), repository.CollectionSessions, nil, 50)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestLoginIsIdempotentPerEmail(t *testing.T) {
	env := newTestEnv(t)

	first := decodeBody(t, env.do(postJSON("/auth/login", `{"email":"ada@example.com"}`)))
	second := decodeBody(t, env.do(postJSON("/auth/login", `{"email":"ada@example.com"}`)))

	assert.Equal(t, first["user_id"], second["user_id"])
	// Each login mints a fresh token, even when both land in the same second.
	assert.NotEqual(t, first["token"], second["token"])

	users, err := env.store.Find(context.Background(), repository.CollectionUsers, nil, 50)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoginRejectsBadPayload(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postJSON("/auth/login", `{"name":"no email"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(postJSON("/auth/login", `{"email":"not-an-email"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
