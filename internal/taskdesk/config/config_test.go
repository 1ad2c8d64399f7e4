package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestDefaultConfigHasBaseURL(t *testing.T) {
	if !strings.Contains(DefaultConfigToml, `base_url = "http://localhost:3000"`) {
		t.Fatalf("expected default base_url")
	}
}

func TestLoadFromRootMissingFileUsesDefaults(t *testing.T) {
	root := t.TempDir()
	cfg, err := LoadFromRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Fatalf("got %q", cfg.BaseURL)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Fatalf("got %v", cfg.Timeout())
	}
}

func TestLoadFromRootReadsLocalFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, TaskdeskDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "base_url = \"http://store:4000\"\nrequest_timeout = \"3s\"\nlocale = \"en\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://store:4000" {
		t.Fatalf("got %q", cfg.BaseURL)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Fatalf("got %v", cfg.Timeout())
	}
	if cfg.LanguageTag() != language.English {
		t.Fatalf("got %v", cfg.LanguageTag())
	}
}

func TestEnsureInitializedWritesDefault(t *testing.T) {
	root := t.TempDir()
	if err := EnsureInitialized(root); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(root, TaskdeskDir, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != DefaultConfigToml {
		t.Fatalf("unexpected config body")
	}
}

func TestBadLocaleFallsBackToSpanish(t *testing.T) {
	cfg := Config{Locale: "!!"}
	if cfg.LanguageTag() != language.Spanish {
		t.Fatalf("got %v", cfg.LanguageTag())
	}
}
