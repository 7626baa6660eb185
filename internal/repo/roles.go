package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func (r *GormRepo) CreateRole(ctx context.Context, req transport.CreateRoleRequest) (*models.Role, error) {
	var existing models.Role
	err := r.DB.WithContext(ctx).Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := models.Role{Name: req.Name, Actions: models.ActionList(req.Actions)}
	if err := r.DB.WithContext(ctx).Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRepo) ListRoles(ctx context.Context, keyword string, offset, limit int) (int64, []models.Role, error) {
	base := keywordFilter(r.DB.WithContext(ctx).Model(&models.Role{}), "name", keyword)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var roles []models.Role
	if err := base.Order("created_at ASC").Offset(offset).Limit(limit).Find(&roles).Error; err != nil {
		return 0, nil, err
	}
	return total, roles, nil
}

func (r *GormRepo) GetRole(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	var role models.Role
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&role).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &role, nil
}

func (r *GormRepo) UpdateRole(ctx context.Context, id uuid.UUID, req transport.UpdateRoleRequest) (*models.Role, error) {
	role, err := r.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.Name == authz.AdminRole {
		return nil, ErrProtectedRole
	}

	if req.Name != nil && *req.Name != role.Name {
		var dup models.Role
		err := r.DB.WithContext(ctx).Where("name = ? AND id <> ?", *req.Name, id).First(&dup).Error
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		role.Name = *req.Name
	}
	if req.Actions != nil {
		role.Actions = models.ActionList(*req.Actions)
	}

	if err := r.DB.WithContext(ctx).Save(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole nulls the role reference on any user still holding it, in the
// same transaction, so no user is orphaned silently.
func (r *GormRepo) DeleteRole(ctx context.Context, id uuid.UUID) error {
	role, err := r.GetRole(ctx, id)
	if err != nil {
		return err
	}
	if role.Name == authz.AdminRole {
		return ErrProtectedRole
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("role_id = ?", id).
			Update("role_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Role{}, "id = ?", id).Error
	})
}
