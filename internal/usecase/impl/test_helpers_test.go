package impl

import (
	"io"
	"log/slog"
	"time"

	"catalog/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxConcurrentHashes int, loginTimeout time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			MaxConcurrentHashes: maxConcurrentHashes,
			LoginTimeout:        loginTimeout,
		},
	}
}
