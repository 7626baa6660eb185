package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/transport"
)

func (r *GormRepo) skuTaken(ctx context.Context, sku string, exclude uuid.UUID) (bool, error) {
	var dup models.Product
	q := r.DB.WithContext(ctx).Where("sku = ?", sku)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	err := q.First(&dup).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *GormRepo) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.SKU != nil {
		taken, err := r.skuTaken(ctx, *req.SKU, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Picture:     req.Picture,
		HPP:         req.HPP,
		Stock:       req.Stock,
		SKU:         req.SKU,
		IsActive:    true,
		CategoryID:  req.CategoryID,
	}
	if err := r.DB.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, keyword string, offset, limit int) (int64, []models.Product, error) {
	base := keywordFilter(r.DB.WithContext(ctx).Model(&models.Product{}), "name", keyword)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var products []models.Product
	if err := base.Preload("Category").Order("created_at ASC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return 0, nil, err
	}
	return total, products, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&product).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

func (r *GormRepo) PatchProduct(ctx context.Context, id uuid.UUID, req transport.PatchProductRequest) (*models.Product, error) {
	product, err := r.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil {
		taken, err := r.skuTaken(ctx, *req.SKU, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
		product.SKU = req.SKU
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Picture != nil {
		product.Picture = *req.Picture
	}
	if req.HPP != nil {
		product.HPP = *req.HPP
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
		product.Category = nil
	}

	if err := r.saveDetached(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
