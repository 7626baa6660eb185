package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func TestGormRepo_CreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()
	seedUser(t, r, "dup@example.com")

	err := r.CreateUser(ctx, &models.User{Email: "dup@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGormRepo_ConfirmUser_Idempotent(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	user := models.User{Email: "new@example.com", PasswordHash: "x"}
	require.NoError(t, r.CreateUser(ctx, &user))
	require.False(t, user.IsConfirmed)

	require.NoError(t, r.ConfirmUser(ctx, user.ID))
	got, err := r.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)

	// second confirmation is a no-op success
	require.NoError(t, r.ConfirmUser(ctx, user.ID))
}

func TestGormRepo_UpdateUser_EmailConflict(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()
	seedUser(t, r, "taken@example.com")
	user := seedUser(t, r, "mine@example.com")

	taken := "taken@example.com"
	_, err := r.UpdateUser(ctx, user.ID, transport.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGormRepo_DeleteUser_KeepsAuditEntries(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, r, "actor@example.com")

	for i := 0; i < 3; i++ {
		entry := models.AuditLog{
			Action:     "event:read",
			ActorID:    &user.ID,
			Timestamp:  time.Now().UTC(),
			Status:     "SUCCESS",
			StatusCode: "200",
		}
		require.NoError(t, r.DB.Create(&entry).Error)
	}

	require.NoError(t, r.DeleteUser(ctx, user.ID))

	_, err := r.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var total int64
	require.NoError(t, r.DB.Model(&models.AuditLog{}).Count(&total).Error)
	assert.EqualValues(t, 3, total)

	var orphaned int64
	require.NoError(t, r.DB.Model(&models.AuditLog{}).Where("actor_id IS NULL").Count(&orphaned).Error)
	assert.EqualValues(t, 3, orphaned)
}

func TestGormRepo_ListUsers_KeywordIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Alice Smith", "Bob Jones", "alison brown"} {
		user := models.User{Name: name, Email: uuid.NewString() + "@example.com", PasswordHash: "x"}
		require.NoError(t, r.CreateUser(ctx, &user))
	}

	total, users, err := r.ListUsers(ctx, "ALI", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, users, 2)
}

func TestGormRepo_ListUsers_Pagination(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedUser(t, r, uuid.NewString()+"@example.com")
	}

	total, users, err := r.ListUsers(ctx, "", 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, users, 2)

	total, users, err = r.ListUsers(ctx, "", 4, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, users, 1)
}
