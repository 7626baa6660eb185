package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gantangan/gantangan-api/internal/hash"
	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	var existing models.User
	err := r.DB.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Role").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *GormRepo) ListUsers(ctx context.Context, keyword string, offset, limit int) (int64, []models.User, error) {
	base := keywordFilter(r.DB.WithContext(ctx).Model(&models.User{}), "name", keyword)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var users []models.User
	if err := base.Preload("Role").Order("created_at ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return 0, nil, err
	}
	return total, users, nil
}

func (r *GormRepo) UpdateUser(ctx context.Context, id uuid.UUID, req transport.UpdateUserRequest) (*models.User, error) {
	user, err := r.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		var dup models.User
		err := r.DB.WithContext(ctx).Where("email = ? AND id <> ?", *req.Email, id).First(&dup).Error
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Picture != nil {
		user.Picture = *req.Picture
	}
	if req.Password != nil {
		pwHash, err := hash.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = pwHash
	}
	if req.RoleID != nil {
		user.RoleID = req.RoleID
		user.Role = nil
	}

	if err := r.saveDetached(ctx, user); err != nil {
		return nil, err
	}
	return r.GetUser(ctx, id)
}

// DeleteUser nulls the actor reference on the user's audit entries instead of
// deleting them: the log count must be unchanged by a user deletion.
func (r *GormRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := r.GetUser(ctx, id)
	if err != nil {
		return err
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AuditLog{}).
			Where("actor_id = ?", id).
			Update("actor_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", user.ID).Error
	})
}

// ConfirmUser flips the confirmation flag. Confirming an already confirmed
// user is a no-op success.
func (r *GormRepo) ConfirmUser(ctx context.Context, id uuid.UUID) error {
	user, err := r.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsConfirmed {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("is_confirmed", true).Error
}
