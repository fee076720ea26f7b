package watchlist

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("WATCHLIST_STORE_DIR", "")
	t.Setenv("WATCHLIST_MODEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want default %q", cfg.Model, DefaultModel)
	}
	if cfg.StoreDir == "" {
		t.Error("StoreDir default is empty")
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("WATCHLIST_STORE_DIR", t.TempDir())
	t.Setenv("WATCHLIST_MODEL", "gemini-2.5-pro")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.GeminiAPIKey != "env-key" {
		t.Errorf("GeminiAPIKey = %q, want the environment value", cfg.GeminiAPIKey)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want the environment value", cfg.Model)
	}
}

func TestCredentialFallsBackToStore(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetAPIKey("stored-key"); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	key, err := cfg.Credential(store)
	if err != nil {
		t.Fatalf("Credential() unexpected error: %v", err)
	}
	if key != "stored-key" {
		t.Errorf("Credential() = %q, want the store fallback", key)
	}

	cfg.GeminiAPIKey = "config-key"
	if key, _ := cfg.Credential(store); key != "config-key" {
		t.Errorf("Credential() = %q, want the configured key to win", key)
	}
}
