package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/parlor-chat/parlor/client/internal/apiclient"
	"github.com/parlor-chat/parlor/client/internal/events"
	"github.com/parlor-chat/parlor/client/internal/localapi"
	"github.com/parlor-chat/parlor/client/internal/store"
	"github.com/parlor-chat/parlor/shared/config"
	"github.com/parlor-chat/parlor/shared/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	tokenBytes, err := os.ReadFile(cfg.Api.TokenFile)
	if err != nil {
		logger.Log.Error("cannot read token file", "path", cfg.Api.TokenFile, "error", err)
		os.Exit(1)
	}
	token := strings.TrimSpace(string(tokenBytes))

	client := apiclient.New(cfg.Api.BaseURL, token)
	if claims, err := client.TokenClaims(); err == nil {
		logger.Log.Info("session token loaded", "user_id", claims.UserId, "expires_at", claims.ExpiresAt)
	}

	st := store.New()
	view := st.AttachView()
	view.OnChange(func() {
		logger.Log.Debug("scrollback invalidated", "known", st.Len())
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial fetch, then the view is live for push events
	history, err := client.FetchHistory(ctx, 0, cfg.Api.HistoryPageSize)
	if err != nil {
		logger.Log.Error("initial fetch failed", "error", err)
		os.Exit(1)
	}
	st.IngestFetched(view, history.Messages)
	logger.Log.Info("initial fetch merged", "messages", len(history.Messages), "found_oldest", history.FoundOldest)

	source := events.NewSource(cfg.Events.URL, token, st, cfg.Events.ReconnectDelay)
	go func() {
		if err := source.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Log.Error("event source stopped", "error", err)
		}
	}()

	if cfg.LocalApi.Addr != "" {
		srv := &http.Server{Addr: cfg.LocalApi.Addr, Handler: localapi.NewRouter(st)}
		go func() {
			logger.Log.Info("local api listening", "addr", cfg.LocalApi.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Log.Error("local api failed", "error", err)
			}
		}()
		defer srv.Shutdown(context.Background())
	}

	<-ctx.Done()
	logger.Log.Info("shutting down")
}
