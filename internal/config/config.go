package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup. It is built once
// in main and handed to the components that need it; there is no
// package-level instance.
type Config struct {
	Server struct {
		Addr         string
		CookieSecure bool
	}
	Database struct {
		Path string
	}
	Session struct {
		TTL time.Duration
	}
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	cfg := &Config{}

	cfg.Server.Addr = ":" + getEnv("BLOG_PORT", "8080")
	cfg.Server.CookieSecure = getEnv("BLOG_COOKIE_SECURE", "false") == "true"
	cfg.Database.Path = getEnv("BLOG_DB", "./data/blog.db")

	hours, err := strconv.Atoi(getEnv("BLOG_SESSION_HOURS", "24"))
	if err != nil {
		log.Printf("invalid BLOG_SESSION_HOURS, using 24: %v", err)
		hours = 24
	}
	cfg.Session.TTL = time.Duration(hours) * time.Hour

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
