package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gantangan/gantangan-api/internal/config"
	"github.com/gantangan/gantangan-api/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return &GormRepo{DB: db}
}

func seedUser(t *testing.T, r *GormRepo, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		IsConfirmed:  true,
	}
	require.NoError(t, r.CreateUser(context.Background(), &user))
	return &user
}
