package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"reelkit-api/handlers"
	"reelkit-api/initializers"
	"reelkit-api/middleware"
	"reelkit-api/pkg/notify"
	"reelkit-api/repository"
	"reelkit-api/storage"
	"reelkit-api/websocket"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

func openDocumentStore() (repository.DocumentStore, string) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		slog.Warn("DATABASE_URL is not set, using in-memory document store")
		return repository.NewMemoryStore(), "memory"
	}

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", dbURL)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
		}
		log.Printf("DB connection failed: %v, retrying in 2s...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("Migration driver error:", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		log.Fatal("Migration init error:", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("Migration failed:", err)
	}

	return repository.NewPostgresStore(db), "postgres"
}

func openBlobStore() storage.BlobStore {
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), "minio") {
		blobs, err := storage.NewMinioStore(context.Background(), storage.MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    os.Getenv("MINIO_BUCKET"),
			UseSSL:    strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true"),
		})
		if err != nil {
			log.Fatal("Failed to initialize MinIO storage:", err)
		}
		return blobs
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	blobs, err := storage.NewLocalStore(dir)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	return blobs
}

func main() {
	if os.Getenv("GIN_MODE") == "release" || strings.ToLower(os.Getenv("APP_ENV")) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, storeKind := openDocumentStore()
	blobs := openBlobStore()
	initializers.InitUploads()

	usersRepo := repository.NewUsersRepository(store)
	projectsRepo := repository.NewProjectsRepository(store)
	mediaRepo := repository.NewMediaRepository(store)
	jobsRepo := repository.NewJobsRepository(store)
	templatesRepo := repository.NewTemplatesRepository(store)

	if err := initializers.InitDefaults(context.Background(), templatesRepo); err != nil {
		log.Fatal("Failed to seed default templates:", err)
	}

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(gin.Recovery())

	// Configure trusted proxies for correct client IP handling in production
	if trusted := os.Getenv("TRUSTED_PROXIES"); trusted != "" {
		parts := strings.Split(trusted, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := r.SetTrustedProxies(parts); err != nil {
			log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
		}
	} else {
		_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	}

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	hub := websocket.NewHub()
	notifier := &notify.WSNotifier{Hub: hub}

	authHandler := handlers.NewAuthHandler(usersRepo, os.Getenv("JWT_SECRET"))
	projectsHandler := handlers.NewProjectsHandler(projectsRepo)
	uploadsHandler := handlers.NewUploadsHandler(mediaRepo, blobs)
	aiHandler := handlers.NewAIHandler(jobsRepo)
	renderHandler := handlers.NewRenderHandler(jobsRepo).WithNotifier(notifier)
	templatesHandler := handlers.NewTemplatesHandler(templatesRepo)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck(storeKind))
	r.GET("/schema", handlers.Schema)

	authPublic := r.Group("/", middleware.RateLimitAuthMiddleware())
	authPublic.POST("/auth/login", authHandler.Login)

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

	r.GET("/ws/preview/:projectId", websocket.ServeWS(hub))

	r.GET("/templates", templatesHandler.GetTemplates)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()
	slog.Info("listening", "port", port, "store", storeKind)

	// Clean shutdown: stop accepting, then drop every live preview connection.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "err", err)
	}
	hub.Shutdown()
}
