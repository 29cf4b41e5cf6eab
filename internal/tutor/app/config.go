package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./tutor.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SubjectsDir  string // Optional: content directory whose subdirectories are the subjects (default: ./subjects)
	StaticDir    string // Optional: directory with the bundled frontend; empty disables static serving

	RAGBaseURL         string // Required: base URL of the answer engine
	VideoSearchBaseURL string // Optional: base URL of the video search service; empty disables suggestions
	VideoLimit         int    // Optional: max video suggestions per answer (default: 3)
	HistoryLimit       int    // Optional: max history entries per listing (default: service default)

	CORSAllowedOrigins string // Optional: comma-separated origins, or "*" (default: "*")

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	return Config{
		DatabaseFile:        getEnvOrDefault("TUTOR_DATABASE_FILE", "tutor.db"),
		PepperFile:          getEnvOrDefault("TUTOR_PEPPER_FILE", "pepper"),
		SubjectsDir:         getEnvOrDefault("TUTOR_SUBJECTS_DIR", "subjects"),
		StaticDir:           os.Getenv("TUTOR_STATIC_DIR"),
		RAGBaseURL:          getEnvOrDefault("RAG_BASE_URL", "http://localhost:8001"),
		VideoSearchBaseURL:  os.Getenv("VIDEO_SEARCH_BASE_URL"),
		VideoLimit:          getEnvIntOrDefault("VIDEO_SUGGESTION_LIMIT", 3),
		HistoryLimit:        getEnvIntOrDefault("TUTOR_HISTORY_LIMIT", 0),
		CORSAllowedOrigins:  getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
