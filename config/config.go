// Package config loads service configuration from the environment.
package config

import "os"

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from environment variables. DatabaseURL is
// optional: without it the service runs parse-only, with no store.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", ":8001"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
