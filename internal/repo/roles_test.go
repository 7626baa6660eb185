package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/config"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func TestGormRepo_CreateRole_DuplicateName(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateRole(ctx, transport.CreateRoleRequest{Name: "Editor", Actions: []string{authz.ActionEventRead}})
	require.NoError(t, err)

	_, err = r.CreateRole(ctx, transport.CreateRoleRequest{Name: "Editor"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGormRepo_Role_RoundTrip(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	role, err := r.CreateRole(ctx, transport.CreateRoleRequest{
		Name:    "Editor",
		Actions: []string{authz.ActionEventRead, authz.ActionEventUpdate},
	})
	require.NoError(t, err)

	got, err := r.GetRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "Editor", got.Name)
	assert.True(t, got.Actions.Contains(authz.ActionEventRead))
	assert.True(t, got.Actions.Contains(authz.ActionEventUpdate))
	assert.False(t, got.Actions.Contains(authz.ActionEventDelete))
}

func TestGormRepo_UpdateRole_AdminProtected(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, config.SeedAdminRole(r.DB))

	_, admins, err := r.ListRoles(ctx, "Admin", 0, 1)
	require.NoError(t, err)
	require.Len(t, admins, 1)

	newName := "SuperAdmin"
	_, err = r.UpdateRole(ctx, admins[0].ID, transport.UpdateRoleRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrProtectedRole)

	err = r.DeleteRole(ctx, admins[0].ID)
	assert.ErrorIs(t, err, ErrProtectedRole)
}

func TestGormRepo_DeleteRole_DetachesUsers(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	role, err := r.CreateRole(ctx, transport.CreateRoleRequest{Name: "Editor"})
	require.NoError(t, err)

	user := seedUser(t, r, "holder@example.com")
	_, err = r.UpdateUser(ctx, user.ID, transport.UpdateUserRequest{RoleID: &role.ID})
	require.NoError(t, err)

	require.NoError(t, r.DeleteRole(ctx, role.ID))

	_, err = r.GetRole(ctx, role.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := r.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RoleID)
}

func TestGormRepo_UpdateRole_ReplacesActions(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	role, err := r.CreateRole(ctx, transport.CreateRoleRequest{
		Name:    "Editor",
		Actions: []string{authz.ActionEventRead},
	})
	require.NoError(t, err)

	actions := []string{authz.ActionEventCreate, authz.ActionEventDelete}
	updated, err := r.UpdateRole(ctx, role.ID, transport.UpdateRoleRequest{Actions: &actions})
	require.NoError(t, err)
	assert.False(t, updated.Actions.Contains(authz.ActionEventRead))
	assert.True(t, updated.Actions.Contains(authz.ActionEventDelete))
}
