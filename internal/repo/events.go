package repo

import (
	"context"

	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func (r *GormRepo) CreateEvent(ctx context.Context, req transport.CreateEventRequest) (*models.Event, error) {
	date, err := transport.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		Name:            req.Name,
		Date:            date,
		Address:         req.Address,
		AddressURL:      req.AddressURL,
		ImageBackground: req.ImageBackground,
		Description:     req.Description,
		Brochure:        req.Brochure,
	}
	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormRepo) ListEvents(ctx context.Context, keyword string, offset, limit int) (int64, []models.Event, error) {
	base := keywordFilter(r.DB.WithContext(ctx).Model(&models.Event{}), "name", keyword)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var events []models.Event
	if err := base.Order("id ASC").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return 0, nil, err
	}
	return total, events, nil
}

func (r *GormRepo) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &event, nil
}

func (r *GormRepo) UpdateEvent(ctx context.Context, id uint, req transport.UpdateEventRequest) (*models.Event, error) {
	event, err := r.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Date != nil {
		date, err := transport.ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.AddressURL != nil {
		event.AddressURL = *req.AddressURL
	}
	if req.ImageBackground != nil {
		event.ImageBackground = *req.ImageBackground
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Brochure != nil {
		event.Brochure = *req.Brochure
	}

	if err := r.DB.WithContext(ctx).Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *GormRepo) DeleteEvent(ctx context.Context, id uint) error {
	event, err := r.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(&models.Event{}, event.ID).Error
}
