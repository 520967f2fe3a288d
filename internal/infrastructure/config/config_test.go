package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"CURIO_APP_NAME":          os.Getenv("CURIO_APP_NAME"),
		"CURIO_APP_ENV":           os.Getenv("CURIO_APP_ENV"),
		"CURIO_APP_PORT":          os.Getenv("CURIO_APP_PORT"),
		"CURIO_DATABASE_HOST":     os.Getenv("CURIO_DATABASE_HOST"),
		"CURIO_DATABASE_PASSWORD": os.Getenv("CURIO_DATABASE_PASSWORD"),
		"CURIO_DATABASE_SSLMODE":  os.Getenv("CURIO_DATABASE_SSLMODE"),
		"CURIO_JWT_SECRET":        os.Getenv("CURIO_JWT_SECRET"),
		"CURIO_STUDIO_NAME":       os.Getenv("CURIO_STUDIO_NAME"),
	}
	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "curio-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "curio", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
		assert.Equal(t, "Curio Studio", cfg.Studio.Name)
		assert.Equal(t, "GHS", cfg.Studio.Currency)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("CURIO_DATABASE_HOST", "db.internal")
		os.Setenv("CURIO_STUDIO_NAME", "Lensfield")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "Lensfield", cfg.Studio.Name)
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("CURIO_APP_ENV", "production")
		os.Setenv("CURIO_DATABASE_PASSWORD", "something")
		os.Setenv("CURIO_DATABASE_SSLMODE", "require")
		os.Setenv("CURIO_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("CURIO_APP_ENV", "production")
		os.Setenv("CURIO_DATABASE_PASSWORD", "something")
		os.Setenv("CURIO_JWT_SECRET", "0123456789abcdef0123456789abcdef")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "curio",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestValidateConnectionPool(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Env: "development"},
		Database: DatabaseConfig{
			MaxOpenConns: 5,
			MaxIdleConns: 10,
		},
	}

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}
