package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"

	"github.com/chartbase/backend/internal/config"
	"github.com/chartbase/backend/internal/database"
	"github.com/chartbase/backend/internal/media"
	postgresrepo "github.com/chartbase/backend/internal/repository/postgres"
	"github.com/chartbase/backend/internal/service"
	"github.com/chartbase/backend/internal/storage"
	"github.com/chartbase/backend/internal/transport/http/handlers"
	"github.com/chartbase/backend/internal/transport/http/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Database
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Object store
	store, err := storage.NewMinioStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Connected to object store")

	// Repositories
	accountRepo := postgresrepo.NewAccountRepo(pool)
	chartRepo := postgresrepo.NewChartRepo(pool)

	// Services
	transcoder := media.NewTranscoder(runtime.GOMAXPROCS(0))
	accountService := service.NewAccountService(accountRepo, chartRepo, store, transcoder, cfg.S3AssetBaseURL)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService, cfg.MaxProfileBytes, cfg.MaxBannerBytes)

	// Middleware
	auth := middleware.Auth(cfg.JWTSecret)
	admin := middleware.AdminSecret(cfg.AdminHeader, cfg.AdminSecret)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Public
	mux.HandleFunc("GET /api/v1/accounts/{id}", accountHandler.GetProfile)
	mux.HandleFunc("GET /api/v1/accounts/{id}/stats", accountHandler.GetStats)

	// Admin
	mux.Handle("DELETE /api/v1/accounts/{id}", admin(http.HandlerFunc(accountHandler.DeleteAccount)))

	// Protected - self-only account mutations
	mux.Handle("POST /api/v1/accounts/{id}/description", auth(http.HandlerFunc(accountHandler.UpdateDescription)))
	mux.Handle("DELETE /api/v1/accounts/{id}/profile", auth(http.HandlerFunc(accountHandler.DeleteProfileImage)))
	mux.Handle("DELETE /api/v1/accounts/{id}/banner", auth(http.HandlerFunc(accountHandler.DeleteBannerImage)))
	mux.Handle("POST /api/v1/accounts/{id}/profile/upload", auth(http.HandlerFunc(accountHandler.UploadProfileImage)))
	mux.Handle("POST /api/v1/accounts/{id}/banner/upload", auth(http.HandlerFunc(accountHandler.UploadBannerImage)))

	// Start server with CORS and request ids
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(middleware.RequestID(mux))))
}
