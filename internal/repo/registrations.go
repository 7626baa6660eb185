package repo

import (
	"context"
	"time"

	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func parseExpiredAt(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := transport.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormRepo) CreateRegistration(ctx context.Context, req transport.CreateRegistrationRequest) (*models.RegistrationEvent, error) {
	if _, err := r.GetEventCategory(ctx, req.EventCategoryID); err != nil {
		return nil, err
	}
	expiredAt, err := parseExpiredAt(req.ExpiredAt)
	if err != nil {
		return nil, err
	}

	reg := models.RegistrationEvent{
		EventCategoryID:    req.EventCategoryID,
		Name:               req.Name,
		Phone:              req.Phone,
		ExpiredAt:          expiredAt,
		TimeReregistration: req.TimeReregistration,
		Status:             req.Status,
	}
	if err := r.DB.WithContext(ctx).Create(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *GormRepo) ListRegistrations(ctx context.Context, keyword string, eventCategoryID *uint, offset, limit int) (int64, []models.RegistrationEvent, error) {
	base := keywordFilter(r.DB.WithContext(ctx).Model(&models.RegistrationEvent{}), "name", keyword)
	if eventCategoryID != nil {
		base = base.Where("event_category_id = ?", *eventCategoryID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var regs []models.RegistrationEvent
	if err := base.Preload("EventCategory").Order("id ASC").Offset(offset).Limit(limit).Find(&regs).Error; err != nil {
		return 0, nil, err
	}
	return total, regs, nil
}

func (r *GormRepo) GetRegistration(ctx context.Context, id uint) (*models.RegistrationEvent, error) {
	var reg models.RegistrationEvent
	if err := r.DB.WithContext(ctx).Preload("EventCategory").Where("id = ?", id).First(&reg).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &reg, nil
}

func (r *GormRepo) UpdateRegistration(ctx context.Context, id uint, req transport.UpdateRegistrationRequest) (*models.RegistrationEvent, error) {
	reg, err := r.GetRegistration(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EventCategoryID != nil {
		if _, err := r.GetEventCategory(ctx, *req.EventCategoryID); err != nil {
			return nil, err
		}
		reg.EventCategoryID = *req.EventCategoryID
		reg.EventCategory = nil
	}
	if req.Name != nil {
		reg.Name = *req.Name
	}
	if req.Phone != nil {
		reg.Phone = *req.Phone
	}
	if req.ExpiredAt != nil {
		expiredAt, err := parseExpiredAt(req.ExpiredAt)
		if err != nil {
			return nil, err
		}
		reg.ExpiredAt = expiredAt
	}
	if req.TimeReregistration != nil {
		reg.TimeReregistration = req.TimeReregistration
	}
	if req.Status != nil {
		reg.Status = req.Status
	}

	if err := r.saveDetached(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *GormRepo) DeleteRegistration(ctx context.Context, id uint) error {
	reg, err := r.GetRegistration(ctx, id)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(&models.RegistrationEvent{}, reg.ID).Error
}
