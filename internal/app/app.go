package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/clipcast/client/internal/gateway/rest"
	"github.com/clipcast/client/internal/store"
	"github.com/clipcast/client/pkg/ctxlogger"
)

type AppConfig struct {
	APIBaseURL        string  `json:"api_base_url"`
	UserId            string  `json:"user_id"`
	LogLevel          string  `json:"log_level"`
	LogPath           string  `json:"log_path"`
	RequestTimeout    int     `json:"request_timeout"`
	RequestsPerSecond float64 `json:"requests_per_second"`
}

func (cfg *AppConfig) Validate() error {
	if cfg.UserId == "" {
		return fmt.Errorf("user id must be set")
	}
	if cfg.RequestTimeout < 1 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return fmt.Errorf("api base url is invalid: %w", err)
	}
	return nil
}

func Run(ctx context.Context, cfg *AppConfig) error {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		log.Fatal(err)
	}

	logOut := os.Stderr
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(logOut, &slog.HandlerOptions{
			Level: logLevel,
		}),
	}

	logger := slog.New(&h)

	gatewayClient := rest.NewClient(&rest.Config{
		BaseURL:           strings.TrimRight(cfg.APIBaseURL, "/"),
		Timeout:           time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, logger)

	videoStore := store.NewStore(gatewayClient, cfg.UserId, logger)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger.InfoContext(runCtx, "starting client", "api_base_url", cfg.APIBaseURL, "user_id", cfg.UserId)

	c := newConsole(videoStore, gatewayClient, cfg.UserId, os.Stdin, os.Stdout, logger)

	return c.run(runCtx)
}
