package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	vars := []string{
		"DASHBOARD_APP_NAME",
		"DASHBOARD_APP_ENV",
		"DASHBOARD_APP_PORT",
		"DASHBOARD_DATABASE_HOST",
		"DASHBOARD_DATABASE_PASSWORD",
		"DASHBOARD_DATABASE_SSLMODE",
		"DASHBOARD_DATABASE_MAX_IDLE_CONNS",
		"DASHBOARD_DATABASE_MAX_OPEN_CONNS",
		"DASHBOARD_DOCUMENTS_OUTPUT_DIR",
		"DASHBOARD_RENDER_NO_SANDBOX",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	t.Run("defaults apply when nothing is configured", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "dashboard-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "dashboard", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "output/ponudbe", cfg.Documents.OutputDir)
		assert.Equal(t, "templates", cfg.Documents.TemplateDir)
		assert.Equal(t, "config/offer-template-settings.json", cfg.Documents.SettingsPath)
		assert.NotZero(t, cfg.Render.Timeout)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("DASHBOARD_APP_PORT", "9090")
		t.Setenv("DASHBOARD_DATABASE_HOST", "db.internal")
		t.Setenv("DASHBOARD_DOCUMENTS_OUTPUT_DIR", "/var/lib/dashboard/ponudbe")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "/var/lib/dashboard/ponudbe", cfg.Documents.OutputDir)
	})

	t.Run("production requires a database password", func(t *testing.T) {
		t.Setenv("DASHBOARD_APP_ENV", "production")
		t.Setenv("DASHBOARD_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("idle connections cannot exceed open connections", func(t *testing.T) {
		t.Setenv("DASHBOARD_DATABASE_MAX_OPEN_CONNS", "5")
		t.Setenv("DASHBOARD_DATABASE_MAX_IDLE_CONNS", "10")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "dashboard",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
