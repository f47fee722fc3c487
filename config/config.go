package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Storage       StorageConfig
	Auth          AuthConfig
	AdminSession  AdminSessionConfig
	Email         EmailConfig
	Matching      MatchingConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL        string
	MaxConns   int32
	MinConns   int32
	CACertPath string
	ServerName string
}

// StorageConfig points at an S3-compatible bucket used for organization logos
type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
	PublicBaseURL   string
}

// Enabled reports whether logo uploads can be served
func (s StorageConfig) Enabled() bool {
	return s.BucketName != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

type AuthConfig struct {
	AdminAPIToken string
}

type AdminSessionConfig struct {
	JWTSecret       string
	JWTIssuer       string
	SessionTTLHours int
	CookieDomain    string
	CookieSecure    bool
}

type EmailConfig struct {
	SendGridAPIKey string
	FromAddress    string
	FromName       string
	SafeRecipient  string
}

// MatchingConfig holds the organization-independent scoring defaults
type MatchingConfig struct {
	WeightExpertise     float64
	WeightIndustry      float64
	WeightAvailability  float64
	WeightMeetingFormat float64
	Threshold           int
	MaxPerMentee        int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	AlloyEndpoint     string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	OrganizationTTLSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "http://localhost:3000")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("DATABASE_MAX_CONNS", 20)
	v.SetDefault("DATABASE_MIN_CONNS", 2)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "mentormatch-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "mentormatch")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "mentormatch-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("ORGANIZATION_CACHE_TTL", 300) // 5 minutes in seconds
	v.SetDefault("STORAGE_REGION", "us-east-1")

	v.SetDefault("EMAIL_FROM_ADDRESS", "noreply@mentormatch.app")
	v.SetDefault("EMAIL_FROM_NAME", "MentorMatch")
	v.SetDefault("EMAIL_SAFE_RECIPIENT", "")

	v.SetDefault("MATCH_WEIGHT_EXPERTISE", 0.4)
	v.SetDefault("MATCH_WEIGHT_INDUSTRY", 0.2)
	v.SetDefault("MATCH_WEIGHT_AVAILABILITY", 0.3)
	v.SetDefault("MATCH_WEIGHT_MEETING_FORMAT", 0.1)
	v.SetDefault("MATCH_THRESHOLD", 70)
	v.SetDefault("MATCH_MAX_PER_MENTEE", 3)

	// Admin session defaults
	v.SetDefault("JWT_ISSUER", "mentormatch-api")
	v.SetDefault("SESSION_TTL_HOURS", 12)
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("COOKIE_SECURE", true)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:        v.GetString("DATABASE_URL"),
			MaxConns:   v.GetInt32("DATABASE_MAX_CONNS"),
			MinConns:   v.GetInt32("DATABASE_MIN_CONNS"),
			CACertPath: v.GetString("DATABASE_CA_CERT_PATH"),
			ServerName: v.GetString("DATABASE_TLS_SERVER_NAME"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
			PublicBaseURL:   v.GetString("STORAGE_PUBLIC_BASE_URL"),
		},
		Auth: AuthConfig{
			AdminAPIToken: v.GetString("ADMIN_API_TOKEN"),
		},
		AdminSession: AdminSessionConfig{
			JWTSecret:       v.GetString("JWT_SECRET"),
			JWTIssuer:       v.GetString("JWT_ISSUER"),
			SessionTTLHours: v.GetInt("SESSION_TTL_HOURS"),
			CookieDomain:    v.GetString("COOKIE_DOMAIN"),
			CookieSecure:    v.GetBool("COOKIE_SECURE"),
		},
		Email: EmailConfig{
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
			FromAddress:    v.GetString("EMAIL_FROM_ADDRESS"),
			FromName:       v.GetString("EMAIL_FROM_NAME"),
			SafeRecipient:  v.GetString("EMAIL_SAFE_RECIPIENT"),
		},
		Matching: MatchingConfig{
			WeightExpertise:     v.GetFloat64("MATCH_WEIGHT_EXPERTISE"),
			WeightIndustry:      v.GetFloat64("MATCH_WEIGHT_INDUSTRY"),
			WeightAvailability:  v.GetFloat64("MATCH_WEIGHT_AVAILABILITY"),
			WeightMeetingFormat: v.GetFloat64("MATCH_WEIGHT_MEETING_FORMAT"),
			Threshold:           v.GetInt("MATCH_THRESHOLD"),
			MaxPerMentee:        v.GetInt("MATCH_MAX_PER_MENTEE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			AlloyEndpoint:     v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			OrganizationTTLSeconds: v.GetInt("ORGANIZATION_CACHE_TTL"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	// Admin authentication
	if c.Auth.AdminAPIToken == "" {
		return fmt.Errorf("ADMIN_API_TOKEN is required")
	}
	if len(c.AdminSession.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET is required and must be at least 32 characters")
	}

	// Server configuration
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if err := c.Matching.Validate(); err != nil {
		return err
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// Validate checks the scoring defaults. Weights must be non-negative and sum to 1.
func (m MatchingConfig) Validate() error {
	weights := []float64{m.WeightExpertise, m.WeightIndustry, m.WeightAvailability, m.WeightMeetingFormat}
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("MATCH_WEIGHT_* values must be non-negative")
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("MATCH_WEIGHT_* values must sum to 1.0, got %.4f", sum)
	}
	if m.Threshold < 0 || m.Threshold > 100 {
		return fmt.Errorf("MATCH_THRESHOLD must be between 0 and 100")
	}
	if m.MaxPerMentee < 1 {
		return fmt.Errorf("MATCH_MAX_PER_MENTEE must be at least 1")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
