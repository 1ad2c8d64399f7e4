package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/api"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/config"
)

// Env bundles the pieces every command needs: resolved config, the store
// client, and a logger writing to the configured log file.
type Env struct {
	Root   string
	Config config.Config
	Client *api.Client
	Log    *slog.Logger
}

// LoadEnv resolves configuration from the working directory and wires the
// client and logger from it.
func LoadEnv() (Env, error) {
	root, err := os.Getwd()
	if err != nil {
		return Env{}, err
	}
	cfg, err := config.LoadFromRoot(root)
	if err != nil {
		return Env{}, err
	}
	log := openLogger(cfg.LogPath(root))
	client := api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout()), api.WithLogger(log))
	return Env{Root: root, Config: cfg, Client: client, Log: log}, nil
}

// openLogger appends to the given path; logging is best-effort and a
// broken path silently discards records.
func openLogger(path string) *slog.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
