// Package config provides runtime configuration values for the console.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the knobs of the admin console.
type Config struct {
	// HTTPAddr is the listen address of the console itself.
	HTTPAddr string
	// APIBaseURL is the base URL of the remote catalog API, no trailing
	// slash.
	APIBaseURL string
	// CookieName is the auth cookie stored on login and forwarded to the
	// catalog API on every request.
	CookieName string
	// CookieTTL is how long the auth cookie lives.
	CookieTTL time.Duration
	// PreviewDir is where pending image selections are staged on disk.
	PreviewDir string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		APIBaseURL:      getenv("CATALOG_API_URL", "http://localhost:3000"),
		CookieName:      getenv("AUTH_COOKIE_NAME", "JwtToken"),
		CookieTTL:       time.Duration(atoienv("AUTH_COOKIE_DAYS", 7)) * 24 * time.Hour,
		PreviewDir:      getenv("PREVIEW_DIR", "./previews"),
		ShutdownTimeout: time.Duration(atoienv("SHUTDOWN_TIMEOUT", 10)) * time.Second,
	}
}
