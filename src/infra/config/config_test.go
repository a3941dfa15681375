package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_DB_DRIVER", "SQLite")
	t.Setenv("APP_DB_SQLITE_PATH", "/tmp/contacts.db")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_DB_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/contacts.db", cfg.Database.SQLitePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Database.Migrate)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_DB_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestLoad_RejectsBcryptCostOutOfRange(t *testing.T) {
	t.Setenv("APP_BCRYPT_COST", "2")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt cost")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5433, Name: "contacts", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:5433/contacts?sslmode=require", c.DSN())
}
