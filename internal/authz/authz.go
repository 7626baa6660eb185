package authz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/gantangan/gantangan-api/internal/models"
)

// AdminRole is the reserved bypass role name: its holders pass every
// permission check regardless of the role's action set.
const AdminRole = "Admin"

// ErrForbidden deliberately carries no detail about the missing action.
var ErrForbidden = errors.New("you are not authorized to access this resource")

// Principal is the identity resolved by the auth middleware. Role is
// re-fetched from the database on every request, never taken from token
// claims, so permission changes apply on the next request.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   *models.Role
}

// Authorize permits when no actions are required, when the principal holds
// the Admin role, or when every required action is granted.
func Authorize(p Principal, required ...string) error {
	if len(required) == 0 {
		return nil
	}
	if p.Role == nil {
		return ErrForbidden
	}
	if p.Role.Name == AdminRole {
		return nil
	}
	for _, action := range required {
		if !p.Role.Actions.Contains(action) {
			return ErrForbidden
		}
	}
	return nil
}
