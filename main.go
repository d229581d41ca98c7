package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gubermangroup/fundmatch/internal/gemini"
	"github.com/gubermangroup/fundmatch/internal/server"
	"github.com/gubermangroup/fundmatch/internal/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	// The API key is the one hard startup requirement: without it none of the
	// matching features work, so refuse to start instead of degrading.
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Fatal("empty GOOGLE_API_KEY in environment; a Gemini API key is required to run fundmatch")
	}

	host := os.Getenv("HOST")
	if host == "" {
		host = "localhost"
	}
	port := 8080
	if p := os.Getenv("PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("invalid PORT %q: %v", p, err)
		}
		port = parsed
	}
	model := os.Getenv("GEMINI_MODEL")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// One Gemini client for the process lifetime.
	matcher, err := gemini.NewService(ctx, apiKey, model, logger)
	if err != nil {
		logger.Fatal("failed to create gemini service", zap.Error(err))
	}

	srv, err := server.New(store.NewClientStore(), store.NewFundStore(), matcher, logger, &server.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
