// Package config provides configuration loading and validation.
// Settings come from environment variables (a .env file is loaded at
// process start) and are read-only after startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-insight/internal/extract"
)

// Settings holds all application configuration.
type Settings struct {
	Gemini GeminiConfig
	GitHub GitHubConfig
	Server ServerConfig
	Upload UploadConfig
	Log    LogConfig
}

// GeminiConfig holds the model parameters for analysis calls.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	RequestTimeout  time.Duration
}

// GitHubConfig holds GitHub API access configuration.
type GitHubConfig struct {
	Token   string
	Timeout time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// UploadConfig bounds what the upload endpoints accept.
type UploadConfig struct {
	Dir               string
	MaxBytes          int64
	AllowedExtensions []string
}

// LogConfig selects log verbosity and output format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads settings from environment variables, applying defaults for
// everything except credentials.
func Load() *Settings {
	return &Settings{
		Gemini: GeminiConfig{
			APIKey:          getEnv("GOOGLE_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.7),
			MaxOutputTokens: getEnvAsInt32("GEMINI_MAX_TOKENS", 2048),
			RequestTimeout:  getEnvAsDuration("GEMINI_TIMEOUT", 60*time.Second),
		},
		GitHub: GitHubConfig{
			Token:   getEnv("GITHUB_TOKEN", ""),
			Timeout: getEnvAsDuration("GITHUB_TIMEOUT", 15*time.Second),
		},
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnvAsInt("PORT", 8000),
		},
		Upload: UploadConfig{
			Dir:               getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes:          getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024),
			AllowedExtensions: getEnvAsList("ALLOWED_EXTENSIONS", extract.Extensions()),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "pretty"),
		},
	}
}

// Validate checks required settings and prepares the upload directory.
func (s *Settings) Validate() error {
	if s.Gemini.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required. Please set it in .env file")
	}
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return fmt.Errorf("PORT must be in (0, 65535], got %d", s.Server.Port)
	}
	if err := os.MkdirAll(s.Upload.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory %s: %w", s.Upload.Dir, err)
	}
	return nil
}

// Addr returns the host:port pair the HTTP server binds to.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Server.Host, s.Server.Port)
}

// AllowsExtension reports whether a lower-cased file extension is in the
// configured allowlist.
func (u UploadConfig) AllowsExtension(ext string) bool {
	for _, allowed := range u.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
