package repo

import (
	"context"

	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func (r *GormRepo) CreateEventCategory(ctx context.Context, req transport.CreateEventCategoryRequest) (*models.EventCategory, error) {
	if _, err := r.GetEvent(ctx, req.EventID); err != nil {
		return nil, err
	}

	category := models.EventCategory{
		EventID:        req.EventID,
		Name:           req.Name,
		Price:          req.Price,
		MaxParticipant: req.MaxParticipant,
		Description:    req.Description,
	}
	if err := r.DB.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) ListEventCategories(ctx context.Context, keyword string, eventID *uint, offset, limit int) (int64, []models.EventCategory, error) {
	base := keywordFilter(r.DB.WithContext(ctx).Model(&models.EventCategory{}), "name", keyword)
	if eventID != nil {
		base = base.Where("event_id = ?", *eventID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var categories []models.EventCategory
	if err := base.Preload("Event").Order("id ASC").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return 0, nil, err
	}
	return total, categories, nil
}

func (r *GormRepo) GetEventCategory(ctx context.Context, id uint) (*models.EventCategory, error) {
	var category models.EventCategory
	if err := r.DB.WithContext(ctx).Preload("Event").Where("id = ?", id).First(&category).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &category, nil
}

func (r *GormRepo) UpdateEventCategory(ctx context.Context, id uint, req transport.UpdateEventCategoryRequest) (*models.EventCategory, error) {
	category, err := r.GetEventCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EventID != nil {
		if _, err := r.GetEvent(ctx, *req.EventID); err != nil {
			return nil, err
		}
		category.EventID = *req.EventID
		category.Event = nil
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Price != nil {
		category.Price = *req.Price
	}
	if req.MaxParticipant != nil {
		category.MaxParticipant = req.MaxParticipant
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := r.saveDetached(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *GormRepo) DeleteEventCategory(ctx context.Context, id uint) error {
	category, err := r.GetEventCategory(ctx, id)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(&models.EventCategory{}, category.ID).Error
}
