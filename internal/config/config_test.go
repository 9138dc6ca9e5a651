package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DATABASE_URL", "DB_MAX_OPEN_CONNS", "SERVER_PORT", "JWT_SECRET", "AUDIT_QUEUE_SIZE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Contains(t, cfg.DBUrl, "clients_db")
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 100, cfg.AuditQueueSize)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:test.db", cfg.DBUrl)
	assert.Equal(t, 3, cfg.DBMaxOpenConns)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.AuthEnabled())
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("AUDIT_QUEUE_SIZE", "lots")
	assert.Equal(t, 100, getEnvInt("AUDIT_QUEUE_SIZE", 100))
}
