package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sanctomind-backend/cmd"
	"sanctomind-backend/internal/api"
	"sanctomind-backend/internal/database"
	"sanctomind-backend/internal/gemini"
)

type APIConfig struct {
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"sanctomind.db"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	APIPort      string `env:"API_PORT" envDefault:"3000"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"static"`
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is missing, model requests will fail")
	}

	db, err := database.Acquire(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.GetMigrator(db).Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var llm gemini.Completer
	llm, err = gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		// Missing credentials must not prevent the CRUD routes from
		// serving; model routes will report an upstream failure.
		log.Printf("Warning: could not create gemini client, model routes will fail: %v", err)
		llm = gemini.Disabled(err)
	}
	raw := gemini.NewRawClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	apiHandler := api.NewBackendService(db, llm, raw)
	apiHandler.AddRoutes(r)

	// Static pages (diary, quiz, header script) are served alongside the
	// API, index.html at the root.
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}
