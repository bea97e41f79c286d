package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	AI       AIConfig
	Profiles ProfilesConfig
	Services ServicesConfig
	Redis    RedisConfig
	Log      LogConfig
	Jobs     JobsConfig
	Server   ServerConfig
}

// DatabaseConfig selects the persistence backend. An empty URL means the
// embedded SQLite file under DataDir.
type DatabaseConfig struct {
	URL     string
	DataDir string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret         string
	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
}

// AIConfig selects the AI transport and its timeouts.
type AIConfig struct {
	Provider        string
	WebhookURL      string
	Timeout         time.Duration
	CommentsTimeout time.Duration
	OpenAIAPIKey    string
	OpenAIModel     string
	GoogleAIAPIKey  string
	GeminiModel     string
}

// ProfilesConfig configures the profile/posts lookup API.
type ProfilesConfig struct {
	BaseURL          string
	APIKey           string
	LookupBudgetDays int
	LookupWindowDays int
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	WebAppURI          string
}

// RedisConfig holds the optional redis connection used by rate limiting.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// LogConfig controls the optional rotating log file.
type LogConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// JobsConfig holds scheduler intervals.
type JobsConfig struct {
	DynamicRefreshInterval time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               int
	PublicRateLimitRPM int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments when present
	if os.Getenv("GO_ENV") != "production" {
		if _, statErr := os.Stat("env.local"); statErr == nil {
			if err := godotenv.Load("env.local"); err != nil {
				return nil, fmt.Errorf("failed to load env.local: %w", err)
			}
		}
	}

	cfg := &Config{}
	var err error

	// Database configuration
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Database.DataDir = getEnvWithDefault("DATA_DIR", "data")

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.SeedAdminEmail = strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	cfg.Auth.SeedAdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")
	cfg.Auth.SeedAdminName = getEnvWithDefault("SEED_ADMIN_NAME", "Administrador")

	// AI configuration
	cfg.AI.Provider = strings.ToLower(getEnvWithDefault("AI_PROVIDER", "webhook"))
	cfg.AI.WebhookURL = os.Getenv("AI_WEBHOOK_URL")
	cfg.AI.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	cfg.AI.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	cfg.AI.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	if cfg.AI.Timeout, err = secondsEnv("AI_TIMEOUT_SECONDS", 120); err != nil {
		return nil, err
	}
	if cfg.AI.CommentsTimeout, err = secondsEnv("AI_COMMENTS_TIMEOUT_SECONDS", 180); err != nil {
		return nil, err
	}
	switch cfg.AI.Provider {
	case "webhook":
	case "openai":
		if cfg.AI.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set: %w", ErrEmptyEnvironmentVariable)
		}
	case "gemini":
		if cfg.AI.GoogleAIAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_AI_API_KEY is not set: %w", ErrEmptyEnvironmentVariable)
		}
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.AI.Provider)
	}

	// Profile lookup configuration
	cfg.Profiles.BaseURL = os.Getenv("PROFILE_API_BASE_URL")
	cfg.Profiles.APIKey = os.Getenv("PROFILE_API_KEY")
	if cfg.Profiles.LookupBudgetDays, err = intEnv("POST_LOOKUP_BUDGET_DAYS", 365); err != nil {
		return nil, err
	}
	if cfg.Profiles.LookupWindowDays, err = intEnv("POST_LOOKUP_WINDOW_DAYS", 30); err != nil {
		return nil, err
	}

	// Services configuration
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvWithDefault("REDIS_PORT", "6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Log configuration
	cfg.Log.File = os.Getenv("LOG_FILE")
	if cfg.Log.MaxSizeMB, err = intEnv("LOG_MAX_SIZE_MB", 100); err != nil {
		return nil, err
	}
	if cfg.Log.MaxBackups, err = intEnv("LOG_MAX_BACKUPS", 5); err != nil {
		return nil, err
	}
	if cfg.Log.MaxAgeDays, err = intEnv("LOG_MAX_AGE_DAYS", 30); err != nil {
		return nil, err
	}

	// Jobs configuration
	minutes, err := intEnv("DYNAMIC_REFRESH_INTERVAL_MINUTES", 360)
	if err != nil {
		return nil, err
	}
	cfg.Jobs.DynamicRefreshInterval = time.Duration(minutes) * time.Minute

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.PublicRateLimitRPM, err = intEnv("PUBLIC_RATE_LIMIT_RPM", 60); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns the connection string handed to store.Open.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return filepath.Join(c.DataDir, "air.db")
}

// Addr returns the redis address in host:port form.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := getEnvWithDefault(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func secondsEnv(key string, defaultValue int) (time.Duration, error) {
	v, err := intEnv(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}
