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

type CategoryHTTP struct {
	Repo  *repo.GormRepo
	Audit *audit.Recorder
}

func (h *CategoryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset, keyword := bindListQuery(c)

	total, categories, err := h.Repo.ListCategories(ctx, keyword, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionCategoryRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to get categories")
	}
	return SuccessPage(c, http.StatusOK, "Get all categories success", categories, NewMeta(page, limit, total))
}

func (h *CategoryHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	category, err := h.Repo.CreateCategory(ctx, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionCategoryCreate, err, http.StatusCreated)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to create category")
	}
	return Success(c, http.StatusCreated, "Category created", category)
}

func (h *CategoryHTTP) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid category id")
	}

	category, err := h.Repo.GetCategory(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionCategoryRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Category not found")
	}
	return Success(c, http.StatusOK, "Category detail", category)
}

func (h *CategoryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid category id")
	}

	var req transport.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	category, err := h.Repo.UpdateCategory(ctx, id, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionCategoryUpdate, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to update category")
	}
	return Success(c, http.StatusOK, "Category updated", category)
}

func (h *CategoryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid category id")
	}

	err = h.Repo.DeleteCategory(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionCategoryDelete, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to delete category")
	}
	return Success(c, http.StatusOK, "Category deleted", true)
}
