package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCreateAndListProjects(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postForm("/projects", url.Values{
		"title":        {"My Trailer"},
		"user_id":      {"u1"},
		"aspect_ratio": {"9:16"},
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
	projectID := decodeBody(t, w)["project_id"]
	assert.NotEmpty(t, projectID)

	w = env.do(httptest.NewRequest(http.MethodGet, "/projects?user_id=u1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["items"].([]interface{})
	assert.Len(t, items, 1)

	doc := items[0].(map[string]interface{})
	assert.Equal(t, projectID, doc["_id"])
	assert.Equal(t, "My Trailer", doc["title"])
	assert.Equal(t, "9:16", doc["aspect_ratio"])

	// Default timeline lanes come with every new project.
	timeline := doc["timeline"].(map[string]interface{})
	tracks := timeline["tracks"].(map[string]interface{})
	for _, lane := range []string{"video", "audio", "titles", "effects"} {
		assert.Contains(t, tracks, lane)
	}
}

func TestListProjectsScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	env.do(postForm("/projects", url.Values{"title": {"A"}, "user_id": {"u1"}}))
	env.do(postForm("/projects", url.Values{"title": {"B"}, "user_id": {"u2"}}))

	w := env.do(httptest.NewRequest(http.MethodGet, "/projects?user_id=u2", nil))
	items := decodeBody(t, w)["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "B", items[0].(map[string]interface{})["title"])
}

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postForm("/projects", url.Values{"title": {"Missing user"}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(postForm("/projects", url.Values{
		"title":        {"Bad ratio"},
		"user_id":      {"u1"},
		"aspect_ratio": {"4:3"},
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
