package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Vansh-Pandey/SocialMedia/internal/config"
	"github.com/Vansh-Pandey/SocialMedia/internal/database"
	"github.com/Vansh-Pandey/SocialMedia/internal/filestore"
	postgresrepo "github.com/Vansh-Pandey/SocialMedia/internal/repository/postgres"
	"github.com/Vansh-Pandey/SocialMedia/internal/service"
	"github.com/Vansh-Pandey/SocialMedia/internal/transport/http/handlers"
	"github.com/Vansh-Pandey/SocialMedia/internal/transport/http/middleware"
	"github.com/Vansh-Pandey/SocialMedia/internal/transport/ws"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // load .env if present
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Database
	if err := database.Migrate(database.DSN(cfg), cfg.MigrationsDir, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	pool, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database")

	// File storage
	files, err := newFileStore(cfg)
	if err != nil {
		logger.Fatal("file storage init failed", zap.Error(err))
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo)
	postService := service.NewPostService(postRepo)

	// WebSocket hub + notifier
	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub, logger)
	messageService.SetNotifier(notifier)
	postService.SetNotifier(notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, files, logger)
	messageHandler := handlers.NewMessageHandler(messageService, logger)
	postHandler := handlers.NewPostHandler(postService, files, logger)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret, logger))
	if cfg.StorageBackend == "local" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	// Protected - Messages
	mux.Handle("GET /messages/{userId}", auth(http.HandlerFunc(messageHandler.Conversation)))
	mux.Handle("POST /messages/{userId}", auth(http.HandlerFunc(messageHandler.Send)))

	// Protected - Posts
	mux.Handle("GET /posts", auth(http.HandlerFunc(postHandler.List)))
	mux.Handle("POST /posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("POST /posts/{id}/like", auth(http.HandlerFunc(postHandler.ToggleLike)))
	mux.Handle("POST /posts/{id}/comment", auth(http.HandlerFunc(postHandler.AddComment)))

	// Protected - Users
	mux.Handle("GET /users/{id}", auth(http.HandlerFunc(userHandler.Get)))
	mux.Handle("PUT /users/profile", auth(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.Handle("GET /users/search/{query}", auth(http.HandlerFunc(userHandler.Search)))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(addr, middleware.CORS(mux))))
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newFileStore(cfg *config.Config) (filestore.Store, error) {
	if cfg.StorageBackend == "gcs" {
		return filestore.NewGCSStore(context.Background(), cfg.GCSBucket, cfg.GCSCredentials)
	}
	return filestore.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
}
