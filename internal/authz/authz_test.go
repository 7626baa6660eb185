package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gantangan/gantangan-api/internal/models"
)

func principalWith(roleName string, actions ...string) Principal {
	return Principal{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Role:   &models.Role{ID: uuid.New(), Name: roleName, Actions: models.ActionList(actions)},
	}
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		p        Principal
		required []string
		wantErr  bool
	}{
		{
			name:     "no requirements always permits",
			p:        Principal{UserID: uuid.New()},
			required: nil,
		},
		{
			name:     "no role denied",
			p:        Principal{UserID: uuid.New()},
			required: []string{ActionEventRead},
			wantErr:  true,
		},
		{
			name:     "admin bypasses with empty action list",
			p:        principalWith(AdminRole),
			required: []string{ActionEventRead, ActionEventDelete},
		},
		{
			name:     "exact grant permits",
			p:        principalWith("Editor", ActionEventRead),
			required: []string{ActionEventRead},
		},
		{
			name:     "missing grant denies",
			p:        principalWith("Editor", ActionEventRead),
			required: []string{ActionEventDelete},
			wantErr:  true,
		},
		{
			name:     "all required actions must be granted",
			p:        principalWith("Editor", ActionEventRead),
			required: []string{ActionEventRead, ActionEventDelete},
			wantErr:  true,
		},
		{
			name:     "superset of requirements permits",
			p:        principalWith("Editor", ActionEventRead, ActionEventUpdate, ActionEventDelete),
			required: []string{ActionEventRead, ActionEventDelete},
		},
		{
			name:     "role name match is exact",
			p:        principalWith("admin"),
			required: []string{ActionEventRead},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Authorize(tt.p, tt.required...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorize_DenialDoesNotNameActions(t *testing.T) {
	t.Parallel()

	p := principalWith("Viewer")
	err := Authorize(p, ActionRoleDelete)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotContains(t, err.Error(), ActionRoleDelete)
}

func TestCatalog_CoversEveryGroup(t *testing.T) {
	t.Parallel()

	groups := Catalog()
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
		assert.NotEmpty(t, g.Actions, "group %s", g.Name)
	}
	assert.Equal(t, []string{
		"role", "user", "category", "product",
		"event", "event_category", "registration_event",
	}, names)
}
