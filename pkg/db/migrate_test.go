package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../migrations"

func TestMigrationFilesExist(t *testing.T) {
	for _, filename := range []string{
		"000001_initial_schema.up.sql",
		"000001_initial_schema.down.sql",
	} {
		_, err := os.Stat(filepath.Join(migrationsDir, filename))
		assert.NoError(t, err, filename)
	}
}

func TestMigrationFilesParseable(t *testing.T) {
	up, err := os.ReadFile(filepath.Join(migrationsDir, "000001_initial_schema.up.sql"))
	require.NoError(t, err)
	down, err := os.ReadFile(filepath.Join(migrationsDir, "000001_initial_schema.down.sql"))
	require.NoError(t, err)

	upSQL := string(up)
	for _, table := range []string{"organizations", "form_templates", "mentors", "mentees", "matches", "mentoring_sessions"} {
		assert.Contains(t, upSQL, "CREATE TABLE "+table+" ", table)
		assert.Contains(t, string(down), "DROP TABLE IF EXISTS "+table+";", table)
	}
	assert.True(t, strings.Contains(upSQL, "CREATE TYPE match_status"))
}

func TestContainsSSLMode(t *testing.T) {
	assert.True(t, containsSSLMode("postgres://u:p@h/db?sslmode=verify-full"))
	assert.True(t, containsSSLMode("postgres://u:p@h/db?sslmode=require"))
	assert.False(t, containsSSLMode("postgres://u:p@h/db?sslmode=disable"))
}

func TestConfigureTLS(t *testing.T) {
	t.Run("no sslmode skips TLS", func(t *testing.T) {
		cfg, err := configureTLS("postgres://localhost/db", "/nonexistent.pem", "")
		assert.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("no CA path skips TLS", func(t *testing.T) {
		cfg, err := configureTLS("postgres://localhost/db?sslmode=require", "", "")
		assert.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("missing CA file fails", func(t *testing.T) {
		_, err := configureTLS("postgres://localhost/db?sslmode=verify-full", filepath.Join(t.TempDir(), "ca.pem"), "")
		assert.Error(t, err)
	})

	t.Run("invalid PEM fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))
		_, err := configureTLS("postgres://localhost/db?sslmode=verify-full", path, "")
		assert.Error(t, err)
	})
}
