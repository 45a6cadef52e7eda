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

	"klarhub-backend/internal/catalog"
	"klarhub-backend/internal/config"
	"klarhub-backend/internal/database"
	"klarhub-backend/internal/handlers"
	"klarhub-backend/internal/middleware"
	"klarhub-backend/internal/router"
	"klarhub-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Klar Hub Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Printf("✓ Environment variables loaded (env=%s)", cfg.Env)

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiEndpoint)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	if geminiService.Configured() {
		log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	} else {
		log.Println("✗ GEMINI_API_KEY is not set; /api/gemini will report a configuration error")
	}

	// ──── Step 3: Initialize Discord Client ────
	discordService := services.NewDiscordService(
		cfg.DiscordAPIBase,
		cfg.DiscordGuildID,
		time.Duration(cfg.DiscordTimeoutSeconds)*time.Second,
	)
	log.Printf("✓ Discord widget client ready (guild %s)", cfg.DiscordGuildID)

	// ──── Step 4: Optional Rate Limiting ────
	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		if cfg.RedisURL != "" {
			redisClient, err := database.NewRedisClient(cfg.RedisURL)
			if err != nil {
				log.Fatalf("✗ Redis connection failed: %v", err)
			}
			defer redisClient.Close()
			limiter = middleware.NewRedisRateLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute)
			log.Printf("✓ Rate limiting enabled (%d req/min per IP, Redis)", cfg.RateLimitPerMinute)
		} else {
			limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
			defer limiter.Stop()
			log.Printf("✓ Rate limiting enabled (%d req/min per IP, in-memory)", cfg.RateLimitPerMinute)
		}
	}

	// ──── Initialize Handlers ────
	productCatalog := catalog.Default()
	discordHandler := handlers.NewDiscordHandler(discordService)
	chatHandler := handlers.NewChatHandler(discordService, geminiService, productCatalog)
	catalogHandler := handlers.NewCatalogHandler(productCatalog)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(discordHandler, chatHandler, catalogHandler, limiter, cfg.CORSOrigin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
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

	log.Printf("✓ Klar Hub Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Presence: GET  http://localhost:%s/api/discord", cfg.Port)
	log.Printf("  Chat:     POST http://localhost:%s/api/gemini", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
