// Package config loads application configuration from the environment.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// APIBaseURL is the base URL of the remote evidence-control API.
	APIBaseURL string
	// DatabaseURL is the postgres connection string for session storage.
	// Empty means sessions are kept in memory and lost on restart.
	DatabaseURL string
	// SessionKey encrypts upstream tokens at rest in the session store.
	SessionKey [32]byte
	// OIDC configures the optional SSO login. Zero value disables it.
	OIDC OIDCSettings
}

// OIDCSettings are the optional SSO provider settings. SSO is enabled when
// Issuer is non-empty.
type OIDCSettings struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether SSO login is configured.
func (o OIDCSettings) Enabled() bool {
	return o.Issuer != ""
}

// Load reads configuration from environment variables. API_BASE_URL and
// SESSION_KEY (64 hex characters) are required.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		OIDC: OIDCSettings{
			Issuer:       os.Getenv("OIDC_ISSUER"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		},
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	rawKey := os.Getenv("SESSION_KEY")
	if rawKey == "" {
		return nil, fmt.Errorf("SESSION_KEY environment variable is required")
	}
	key, err := hex.DecodeString(rawKey)
	if err != nil || len(key) != 32 {
		return nil, fmt.Errorf("SESSION_KEY must be 64 hex characters (32 bytes)")
	}
	copy(cfg.SessionKey[:], key)

	if cfg.OIDC.Enabled() && (cfg.OIDC.ClientID == "" || cfg.OIDC.RedirectURL == "") {
		return nil, fmt.Errorf("OIDC_CLIENT_ID and OIDC_REDIRECT_URL are required when OIDC_ISSUER is set")
	}

	return cfg, nil
}

// String returns a representation of the config with secrets masked.
func (c *Config) String() string {
	db := c.DatabaseURL
	if db != "" {
		db = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{Addr: %s, API: %s, DB: %s, SessionKey: ***, SSO: %v}",
		c.Addr, c.APIBaseURL, db, c.OIDC.Enabled())
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
