package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port int
	Host string
	Env  string // "development" or "production"

	// Data directory
	DataDir string

	// Database
	DatabasePath string

	// Admin token required on mutating endpoints
	AdminToken string

	// Google Custom Search
	SearchAPIKey   string
	SearchEngineID string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// News digest
	InterestsPath    string
	NewsTopicDelayMs int
	NewsRefreshCron  string // empty disables the scheduled refresh
	NewsMaxResults   int
}

var (
	cfg  *Config
	once sync.Once
)

// Get returns the global configuration (singleton)
func Get() *Config {
	once.Do(func() {
		cfg = load()
	})
	return cfg
}

// load reads configuration from the environment, with .env as a fallback
func load() *Config {
	// Best effort: a missing .env file is fine
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")

	return &Config{
		// Server
		Port: getEnvInt("PORT", 8080),
		Host: getEnv("HOST", "0.0.0.0"),
		Env:  getEnv("ENV", "development"),

		// Data
		DataDir:      dataDir,
		DatabasePath: getEnv("DATABASE_PATH", filepath.Join(dataDir, "persosite.sqlite")),

		// Admin
		AdminToken: getEnv("ADMIN_TOKEN", ""),

		// Google Custom Search
		SearchAPIKey:   getEnv("GOOGLE_SEARCH_API_KEY", ""),
		SearchEngineID: getEnv("GOOGLE_SEARCH_ENGINE_ID", ""),

		// OpenAI
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		// News digest
		InterestsPath:    getEnv("INTERESTS_PATH", filepath.Join(dataDir, "interests.txt")),
		NewsTopicDelayMs: getEnvInt("NEWS_TOPIC_DELAY_MS", 500),
		NewsRefreshCron:  getEnv("NEWS_REFRESH_CRON", "0 7 * * *"),
		NewsMaxResults:   getEnvInt("NEWS_MAX_RESULTS", 5),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
