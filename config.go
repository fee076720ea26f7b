package watchlist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the tool configuration, resolved from the environment and an
// optional config file. State (trackers, title, credential) lives in the
// Store; Config only decides where that store is and how to reach the quote
// endpoint.
type Config struct {
	// StoreDir is the state directory, default ~/.watchlist.
	StoreDir string `mapstructure:"store_dir"`
	// GeminiAPIKey is the quote endpoint credential. When empty here, the
	// store's persisted api_key entry is used as a fallback.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	// Model overrides the default Gemini model.
	Model string `mapstructure:"model"`
}

// LoadConfig reads configuration from environment variables and an optional
// $HOME/.watchlist/config.yaml. Environment variables take precedence.
//
// Recognized environment variables: GEMINI_API_KEY, WATCHLIST_STORE_DIR,
// WATCHLIST_MODEL.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	v.SetDefault("store_dir", filepath.Join(home, ".watchlist"))
	v.SetDefault("model", DefaultModel)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".watchlist"))
	v.AddConfigPath(".")
	// a missing config file is fine, everything has a default.
	_ = v.ReadInConfig()

	v.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	v.BindEnv("store_dir", "WATCHLIST_STORE_DIR")
	v.BindEnv("model", "WATCHLIST_MODEL")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal config: %w", err)
	}
	return cfg, nil
}

// Credential resolves the API credential: the configured one wins, then the
// store's persisted entry. An empty result means refresh must be refused.
func (c *Config) Credential(store *Store) (string, error) {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey, nil
	}
	return store.APIKey()
}
