package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Everything is sourced from the
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	TMDBAPIKey   string
	TMDBLanguage string
	Port         string
	LogFile      string
	// ExtraAllowedOrigins supplements the built-in local/private origin
	// allowlist for CORS, comma separated in ALLOWED_ORIGINS.
	ExtraAllowedOrigins []string
}

// Load reads configuration from the environment. A missing .env file is
// fine; set variables always win over .env values.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] skipping .env: %v", err)
	}

	cfg := Config{
		TMDBAPIKey:   strings.TrimSpace(os.Getenv("TMDB_API_KEY")),
		TMDBLanguage: strings.TrimSpace(os.Getenv("TMDB_LANGUAGE")),
		Port:         strings.TrimSpace(os.Getenv("PORT")),
		LogFile:      strings.TrimSpace(os.Getenv("LOG_FILE")),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.ExtraAllowedOrigins = append(cfg.ExtraAllowedOrigins, origin)
		}
	}
	return cfg
}

// Manager provides concurrency-safe access to the active configuration.
type Manager struct {
	mu  sync.RWMutex
	cfg Config
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg := m.cfg
	cfg.ExtraAllowedOrigins = append([]string(nil), m.cfg.ExtraAllowedOrigins...)
	return cfg
}

// Update applies fn to the configuration under the write lock.
func (m *Manager) Update(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.cfg)
}
