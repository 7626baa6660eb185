package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func (r *GormRepo) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	var existing models.Category
	err := r.DB.WithContext(ctx).Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{Name: req.Name}
	if err := r.DB.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) ListCategories(ctx context.Context, keyword string, offset, limit int) (int64, []models.Category, error) {
	base := keywordFilter(r.DB.WithContext(ctx).Model(&models.Category{}), "name", keyword)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var categories []models.Category
	if err := base.Order("created_at ASC").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return 0, nil, err
	}
	return total, categories, nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &category, nil
}

func (r *GormRepo) UpdateCategory(ctx context.Context, id uuid.UUID, req transport.UpdateCategoryRequest) (*models.Category, error) {
	category, err := r.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		var dup models.Category
		err := r.DB.WithContext(ctx).Where("name = ? AND id <> ?", *req.Name, id).First(&dup).Error
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Name = *req.Name
	}

	if err := r.DB.WithContext(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := r.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(&models.Category{}, "id = ?", category.ID).Error
}
