package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8081",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database:     DatabaseConfig{URL: "postgres://localhost:5432/mentormatch"},
		Auth:         AuthConfig{AdminAPIToken: "admin-token"},
		AdminSession: AdminSessionConfig{JWTSecret: testJWTSecret},
		Matching: MatchingConfig{
			WeightExpertise:     0.4,
			WeightIndustry:      0.2,
			WeightAvailability:  0.3,
			WeightMeetingFormat: 0.1,
			Threshold:           70,
			MaxPerMentee:        3,
		},
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "release mode",
			config:   &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing database URL",
			mutate:   func(c *Config) { c.Database.URL = "" },
			errorMsg: "DATABASE_URL is required",
		},
		{
			name:     "missing admin token",
			mutate:   func(c *Config) { c.Auth.AdminAPIToken = "" },
			errorMsg: "ADMIN_API_TOKEN is required",
		},
		{
			name:     "short JWT secret",
			mutate:   func(c *Config) { c.AdminSession.JWTSecret = "short" },
			errorMsg: "JWT_SECRET",
		},
		{
			name:     "no CORS origins",
			mutate:   func(c *Config) { c.Server.AllowedOrigins = nil },
			errorMsg: "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:     "weights do not sum to one",
			mutate:   func(c *Config) { c.Matching.WeightExpertise = 0.5 },
			errorMsg: "must sum to 1.0",
		},
		{
			name: "negative weight",
			mutate: func(c *Config) {
				c.Matching.WeightExpertise = 0.6
				c.Matching.WeightMeetingFormat = -0.1
			},
			errorMsg: "non-negative",
		},
		{
			name:     "threshold out of range",
			mutate:   func(c *Config) { c.Matching.Threshold = 101 },
			errorMsg: "MATCH_THRESHOLD",
		},
		{
			name:     "zero max per mentee",
			mutate:   func(c *Config) { c.Matching.MaxPerMentee = 0 },
			errorMsg: "MATCH_MAX_PER_MENTEE",
		},
		{
			name: "profiling without endpoint",
			mutate: func(c *Config) {
				c.Profiling.Enabled = true
			},
			errorMsg: "O11Y_PROFILING_ENDPOINT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestStorageConfig_Enabled(t *testing.T) {
	assert.False(t, StorageConfig{}.Enabled())
	assert.True(t, StorageConfig{BucketName: "logos", AccessKeyID: "a", SecretAccessKey: "s"}.Enabled())
}

func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
}

func TestLoad_WithDefaults(t *testing.T) {
	chdirTemp(t)
	os.Clearenv()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/mentormatch")
	t.Setenv("ADMIN_API_TOKEN", "admin-token")
	t.Setenv("JWT_SECRET", testJWTSecret)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.InDelta(t, 0.4, cfg.Matching.WeightExpertise, 1e-9)
	assert.InDelta(t, 0.2, cfg.Matching.WeightIndustry, 1e-9)
	assert.InDelta(t, 0.3, cfg.Matching.WeightAvailability, 1e-9)
	assert.InDelta(t, 0.1, cfg.Matching.WeightMeetingFormat, 1e-9)
	assert.Equal(t, 70, cfg.Matching.Threshold)
	assert.Equal(t, 3, cfg.Matching.MaxPerMentee)
	assert.Equal(t, 300, cfg.Cache.OrganizationTTLSeconds)
	assert.Equal(t, "MentorMatch", cfg.Email.FromName)
	assert.Equal(t, 12, cfg.AdminSession.SessionTTLHours)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	chdirTemp(t)
	os.Clearenv()
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("APP_ENV", "development")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DATABASE_URL", "postgres://db:5432/mm")
	t.Setenv("ADMIN_API_TOKEN", "admin-token")
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("SENDGRID_API_KEY", "sg-key")
	t.Setenv("MATCH_WEIGHT_EXPERTISE", "0.25")
	t.Setenv("MATCH_WEIGHT_INDUSTRY", "0.25")
	t.Setenv("MATCH_WEIGHT_AVAILABILITY", "0.25")
	t.Setenv("MATCH_WEIGHT_MEETING_FORMAT", "0.25")
	t.Setenv("MATCH_THRESHOLD", "60")
	t.Setenv("MATCH_MAX_PER_MENTEE", "5")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sg-key", cfg.Email.SendGridAPIKey)
	assert.InDelta(t, 0.25, cfg.Matching.WeightExpertise, 1e-9)
	assert.Equal(t, 60, cfg.Matching.Threshold)
	assert.Equal(t, 5, cfg.Matching.MaxPerMentee)
}

func TestLoad_ValidationFailure(t *testing.T) {
	chdirTemp(t)
	os.Clearenv()

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
