package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Session ledger backends
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

const environmentProduction = "production"

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Coaching      CoachingConfig
	TextGen       TextGenConfig
	Transcription TranscriptionConfig
	Storage       StorageConfig
	Session       SessionConfig
	Redis         RedisConfig
	Database      DatabaseConfig
	Analysis      AnalysisConfig
	Monitoring    MonitoringConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// CoachingConfig holds rule engine and alerting configuration
type CoachingConfig struct {
	RulesPath              string   `envconfig:"COACHING_RULES_PATH" default:"data/rules.yaml"`
	FillerWords            []string `envconfig:"FILLER_WORDS" default:"um,uh,like,you know,actually,basically,literally"`
	LowConfidenceThreshold float64  `envconfig:"LOW_CONFIDENCE_THRESHOLD" default:"0.45"`
	HighAnxietyThreshold   float64  `envconfig:"HIGH_ANXIETY_THRESHOLD" default:"0.6"`
}

// TextGenConfig holds the coaching text generator configuration
type TextGenConfig struct {
	EnableExternalAPIs bool          `envconfig:"ENABLE_EXTERNAL_APIS" default:"false"`
	APIKey             string        `envconfig:"DEEPSEEK_API_KEY"`
	Model              string        `envconfig:"DEEPSEEK_MODEL" default:"deepseek-chat"`
	BaseURL            string        `envconfig:"DEEPSEEK_BASE_URL" default:"https://api.deepseek.com"`
	Timeout            time.Duration `envconfig:"TEXTGEN_TIMEOUT" default:"10s"`
}

// TranscriptionConfig holds speech-to-text configuration
type TranscriptionConfig struct {
	APIKey string `envconfig:"ASSEMBLYAI_API_KEY"`
}

// StorageConfig holds object storage and AWS configuration
type StorageConfig struct {
	Region          string `envconfig:"AWS_REGION"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	BucketName      string `envconfig:"AWS_S3_BUCKET"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"s3.amazonaws.com"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"true"`
}

// SessionConfig holds the session ledger configuration
type SessionConfig struct {
	Backend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Enabled     bool   `envconfig:"DB_ENABLED" default:"false"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"interview_coach"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// AnalysisConfig holds media analysis pipeline configuration
type AnalysisConfig struct {
	Timeout               time.Duration `envconfig:"ANALYSIS_TIMEOUT" default:"5m"`
	PollInterval          time.Duration `envconfig:"POLL_INTERVAL" default:"4s"`
	PollEscalatedInterval time.Duration `envconfig:"POLL_ESCALATED_INTERVAL" default:"6s"`
	PollEscalateAfter     int           `envconfig:"POLL_ESCALATE_AFTER" default:"15"`
	PollMaxAttempts       int           `envconfig:"POLL_MAX_ATTEMPTS" default:"60"`
}

// MonitoringConfig holds error reporting configuration
type MonitoringConfig struct {
	SentryDSN string `envconfig:"SENTRY_DSN"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv reads every section from the process environment without validating
func FromEnv() (*Config, error) {
	config := &Config{}
	sections := []struct {
		name   string
		target any
	}{
		{"server", &config.Server},
		{"coaching", &config.Coaching},
		{"textgen", &config.TextGen},
		{"transcription", &config.Transcription},
		{"storage", &config.Storage},
		{"session", &config.Session},
		{"redis", &config.Redis},
		{"database", &config.Database},
		{"analysis", &config.Analysis},
		{"monitoring", &config.Monitoring},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return nil, fmt.Errorf("load %s config: %w", s.name, err)
		}
	}
	config.Coaching.FillerWords = trimAll(config.Coaching.FillerWords)
	config.Server.AllowedOrigins = trimAll(config.Server.AllowedOrigins)
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := unitInterval("LOW_CONFIDENCE_THRESHOLD", c.Coaching.LowConfidenceThreshold); err != nil {
		return err
	}
	if err := unitInterval("HIGH_ANXIETY_THRESHOLD", c.Coaching.HighAnxietyThreshold); err != nil {
		return err
	}
	if c.Coaching.RulesPath == "" {
		return fmt.Errorf("COACHING_RULES_PATH is required")
	}
	if c.Analysis.Timeout <= 0 || c.Analysis.PollInterval <= 0 || c.Analysis.PollEscalatedInterval <= 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT, POLL_INTERVAL and POLL_ESCALATED_INTERVAL must be positive")
	}
	if c.Analysis.PollMaxAttempts <= 0 || c.Analysis.PollEscalateAfter < 0 {
		return fmt.Errorf("POLL_MAX_ATTEMPTS must be positive and POLL_ESCALATE_AFTER non-negative")
	}
	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", SessionBackendMemory, SessionBackendRedis, c.Session.Backend)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Database.AutoMigrate && c.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE is not allowed in production")
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == environmentProduction
}

// StorageEnabled reports whether object storage credentials are present
func (c *Config) StorageEnabled() bool {
	return c.Storage.AccessKeyID != "" && c.Storage.SecretAccessKey != "" && c.Storage.BucketName != ""
}

// FaceDetectionEnabled reports whether Rekognition can be called
func (c *Config) FaceDetectionEnabled() bool {
	return c.StorageEnabled() && c.Storage.Region != ""
}

// TextGenEnabled reports whether coaching lines are requested from the text generator
func (c *Config) TextGenEnabled() bool {
	return c.TextGen.EnableExternalAPIs && c.TextGen.APIKey != ""
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func unitInterval(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be within [0,1], got %v", name, v)
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
