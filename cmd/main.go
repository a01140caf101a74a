package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/segmentio/ksuid"

	"cowrite/pkg/config"
	"cowrite/pkg/inference"
	"cowrite/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.FromEnv()

	var inf inference.Inferencer
	if cfg.Mode == config.ModeLive {
		switch cfg.Provider {
		case config.ProviderOpenAI:
			inf = inference.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.Timeout)
		default:
			gemini, err := inference.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout)
			if err != nil {
				log.Fatal("failed to build gemini client", "error", err)
			}
			inf = gemini
		}
	}

	srv := server.NewServer(ctx, cfg, inf)
	srv.Echo.Logger.SetLevel(gommonlog.INFO)

	log.Info("starting ai service",
		"instance", ksuid.New().String(),
		"mode", cfg.Mode,
		"provider", cfg.Provider,
		"addr", cfg.Addr,
	)

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("shutdown failed", "error", err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
	}
	<-finishedShutDown
}
