package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"contactbook/src/core/schema"
	"contactbook/src/infra/config"
	"contactbook/src/infra/db"
	"contactbook/src/infra/logger"
)

func setupTestStore(t *testing.T) *db.Store {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "contacts.db"),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	store, err := db.New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func dateOf(s string) *schema.Date {
	d, err := schema.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func john() schema.ContactSchema {
	return schema.ContactSchema{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@example.com",
		PhoneNumber: "1234567890",
	}
}

func jane() schema.ContactSchema {
	return schema.ContactSchema{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		PhoneNumber: "0987654321",
	}
}
