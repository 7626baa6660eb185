package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/transport"
)

type ProductHTTP struct {
	Repo  *repo.GormRepo
	Audit *audit.Recorder
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset, keyword := bindListQuery(c)

	total, products, err := h.Repo.ListProducts(ctx, keyword, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionProductRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to get products")
	}
	return SuccessPage(c, http.StatusOK, "Get all products success", products, NewMeta(page, limit, total))
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}
	if req.Price < 0 {
		return Failure(c, http.StatusBadRequest, "price cannot be negative")
	}

	product, err := h.Repo.CreateProduct(ctx, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionProductCreate, err, http.StatusCreated)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to create product")
	}
	return Success(c, http.StatusCreated, "Product created", product)
}

func (h *ProductHTTP) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid product id")
	}

	product, err := h.Repo.GetProduct(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionProductRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Product not found")
	}
	return Success(c, http.StatusOK, "Product detail", product)
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid product id")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}
	if req.Price != nil && *req.Price < 0 {
		return Failure(c, http.StatusBadRequest, "price cannot be negative")
	}

	product, err := h.Repo.PatchProduct(ctx, id, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionProductUpdate, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to update product")
	}
	return Success(c, http.StatusOK, "Product updated", product)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid product id")
	}

	err = h.Repo.DeleteProduct(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionProductDelete, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to delete product")
	}
	return Success(c, http.StatusOK, "Product deleted", true)
}
