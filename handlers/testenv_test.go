package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelkit-api/initializers"
	"reelkit-api/pkg/notify"
	"reelkit-api/repository"
	"reelkit-api/storage"
	"reelkit-api/websocket"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// testEnv wires the full route set against the in-memory store and a
// temp-dir blob store.
type testEnv struct {
	router *gin.Engine
	store  *repository.MemoryStore
	hub    *websocket.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	blobs, err := storage.NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	initializers.Conf = initializers.UploadConfig{
		MaxSize:   10 << 20,
		FileTypes: []string{"video/mp4", "audio/mpeg", "image/png", "image/jpeg"},
	}

	usersRepo := repository.NewUsersRepository(store)
	projectsRepo := repository.NewProjectsRepository(store)
	mediaRepo := repository.NewMediaRepository(store)
	jobsRepo := repository.NewJobsRepository(store)
	templatesRepo := repository.NewTemplatesRepository(store)
	assert.NoError(t, initializers.InitDefaults(context.Background(), templatesRepo))

	hub := websocket.NewHub()
	notifier := &notify.WSNotifier{Hub: hub}

	authHandler := NewAuthHandler(usersRepo, "test-secret-test-secret-test-secret")
	projectsHandler := NewProjectsHandler(projectsRepo)
	uploadsHandler := NewUploadsHandler(mediaRepo, blobs)
	aiHandler := NewAIHandler(jobsRepo)
	renderHandler := NewRenderHandler(jobsRepo).WithNotifier(notifier)
	templatesHandler := NewTemplatesHandler(templatesRepo)

	r := gin.New()
	r.GET("/", Root)
	r.GET("/health", HealthCheck("memory"))
	r.GET("/schema", Schema)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/projects", projectsHandler.CreateProject)
	r.GET("/projects", projectsHandler.ListProjects)
	r.POST("/upload", uploadsHandler.UploadFile)
	r.GET("/uploads/:name", uploadsHandler.GetUpload)
	r.POST("/ai/generate", aiHandler.Generate)
	r.POST("/ai/transcribe", aiHandler.Transcribe)
	r.POST("/ai/tts", aiHandler.TTS)
	r.POST("/ai/enhance-audio", aiHandler.EnhanceAudio)
	r.POST("/render/queue", renderHandler.QueueRender)
	r.GET("/render/jobs", renderHandler.ListJobs)
	r.GET("/templates", templatesHandler.GetTemplates)

	return &testEnv{router: r, store: store, hub: hub}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
