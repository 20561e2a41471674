package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Vision   VisionConfig
	Twilio   TwilioConfig
	Notify   NotifyConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// VisionConfig holds extraction-service configuration
type VisionConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// TwilioConfig holds notification-provider configuration
type TwilioConfig struct {
	AccountSID       string
	AuthToken        string
	ProxyNumber      string
	ConversationName string
	FriendlyName     string
	Participants     []string
	Timeout          time.Duration
}

// NotifyConfig holds message-building configuration
type NotifyConfig struct {
	Timezone        string
	FakeDate        string
	ContactName     string
	ContactNumber   string
	ScheduleBaseURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Vision: VisionConfig{
			APIKey:  getEnv("GOOGLE_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", 3*time.Minute),
		},
		Twilio: TwilioConfig{
			AccountSID:       getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:        getEnv("TWILIO_AUTH_TOKEN", ""),
			ProxyNumber:      getEnv("TWILIO_PHONE_NUMBER", ""),
			ConversationName: getEnv("TWILIO_CONVERSATION_NAME", "family_calendar_events"),
			FriendlyName:     getEnv("TWILIO_FRIENDLY_NAME", "Family Calendar"),
			Participants:     getEnvAsList("TWILIO_PARTICIPANTS"),
			Timeout:          getEnvAsDuration("TWILIO_TIMEOUT", 30*time.Second),
		},
		Notify: NotifyConfig{
			Timezone:        getEnv("NOTIFY_TIMEZONE", "America/Chicago"),
			FakeDate:        getEnv("FAKE_DATE", ""),
			ContactName:     getEnv("NOTIFY_CONTACT_NAME", ""),
			ContactNumber:   getEnv("NOTIFY_CONTACT_NUMBER", ""),
			ScheduleBaseURL: getEnv("NOTIFY_SCHEDULE_BASE_URL", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Vision.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GOOGLE_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}

// ValidateNotify checks the fields the dispatch entrypoint needs. Missing
// credentials make dispatch a no-op rather than a crash loop, so callers
// report the error and exit cleanly.
func (c *Config) ValidateNotify() error {
	if c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" || c.Twilio.ProxyNumber == "" {
		return NewAppError("CONFIG_ERROR", "Twilio credentials missing", ErrInvalidInput)
	}
	if len(c.Twilio.Participants) == 0 {
		return NewAppError("CONFIG_ERROR", "TWILIO_PARTICIPANTS is required", ErrInvalidInput)
	}
	return nil
}
