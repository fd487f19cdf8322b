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

	"quizforge-backend/internal/config"
	"quizforge-backend/internal/handlers"
	"quizforge-backend/internal/router"
	"quizforge-backend/internal/services"
)

const serviceName = "quizforge-backend"

func main() {
	log.Println("🚀 Starting QuizForge Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.OpenRouterAPIKey == "" {
		log.Println("⚠ OPENROUTER_API_KEY is not set; /generate will return a configuration error")
	}

	// ──── Step 2: Initialize OpenRouter Client ────
	openRouter := services.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.Referer, cfg.AppTitle)
	generator := services.NewGenerator(cfg.OpenRouterAPIKey, cfg.Models, cfg.RequestTimeout, cfg.QuestionCount, openRouter.Complete)
	log.Printf("✓ OpenRouter client initialized (%d models, %s per-attempt timeout)", len(cfg.Models), cfg.RequestTimeout)

	// ──── Step 3: Initialize Handlers ────
	quizHandler := handlers.NewQuizHandler(generator, serviceName, cfg.QuestionCount)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(quizHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Must outlast a full fallback pass over every configured model.
		WriteTimeout: 30 * time.Second,
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

	log.Printf("✓ QuizForge Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
