package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clau-backend/internal/config"
	"clau-backend/internal/gemini"
	"clau-backend/internal/handlers"
	"clau-backend/internal/router"
	"clau-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Clau Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠ GEMINI_API_KEY is not set; /ask will fail until it is configured")
	}

	// ──── Step 2: Initialize Gemini Client ────
	geminiClient := gemini.NewClient(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.GeminiBaseURL,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
	)
	log.Println("✓ Gemini client initialized")

	// ──── Step 3: Initialize Services & Handlers ────
	chatService := services.NewChatService(geminiClient, cfg.SystemPrompt)
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler)

	// The write timeout must outlast the upstream call the ask handler
	// blocks on.
	writeTimeout := time.Duration(cfg.GeminiTimeoutSeconds)*time.Second + 15*time.Second

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Clau Backend ready on port %s (env: %s)", cfg.Port, cfg.Env)
	if cfg.Env == "development" {
		log.Printf("  Ask:    POST http://localhost:%s/ask", cfg.Port)
		log.Printf("  Health: GET  http://localhost:%s/health", cfg.Port)
	}

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
