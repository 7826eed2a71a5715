package impl

import (
	"io"
	"log/slog"
	"time"

	"cinelog/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 30 * time.Minute}
	cfg.Store = &config.StoreConfig{QueryTimeout: time.Second}
	cfg.Pagination = &config.PaginationConfig{DefaultLimit: 5, MaxLimit: 100}

	return cfg
}
