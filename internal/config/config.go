package config

import (
	"os"
	"strings"
)

// Config holds everything the server reads from the environment. It is built
// once in main and handed to whoever needs it; nothing reads os.Getenv later.
type Config struct {
	DBDSN             string
	ListenAddr        string
	CORSOrigins       []string
	AllowRegistration bool
}

// Load reads the environment (after godotenv has populated it) and applies
// defaults suitable for local development.
func Load() Config {
	cfg := Config{
		DBDSN:             os.Getenv("DB_DSN"),
		ListenAddr:        os.Getenv("LISTEN_ADDR"),
		AllowRegistration: os.Getenv("ALLOW_REGISTRATION") == "true",
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg
}
