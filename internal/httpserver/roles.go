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

type RoleHTTP struct {
	Repo  *repo.GormRepo
	Audit *audit.Recorder
}

func (h *RoleHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset, keyword := bindListQuery(c)

	total, roles, err := h.Repo.ListRoles(ctx, keyword, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionRoleRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to get roles")
	}
	return SuccessPage(c, http.StatusOK, "Get all roles success", roles, NewMeta(page, limit, total))
}

func (h *RoleHTTP) ListActions(c echo.Context) error {
	ctx := c.Request().Context()
	recordOutcome(ctx, h.Audit, c, authz.ActionRoleList, nil, http.StatusOK)
	return Success(c, http.StatusOK, "Action list", authz.Catalog())
}

func (h *RoleHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateRoleRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	role, err := h.Repo.CreateRole(ctx, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionRoleCreate, err, http.StatusCreated)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to create role")
	}
	return Success(c, http.StatusCreated, "Role created", role)
}

func (h *RoleHTTP) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid role id")
	}

	role, err := h.Repo.GetRole(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionRoleRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Role not found")
	}
	return Success(c, http.StatusOK, "Role detail", role)
}

func (h *RoleHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid role id")
	}

	var req transport.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	role, err := h.Repo.UpdateRole(ctx, id, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionRoleUpdate, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to update role")
	}
	return Success(c, http.StatusOK, "Role updated", role)
}

func (h *RoleHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid role id")
	}

	err = h.Repo.DeleteRole(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionRoleDelete, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to delete role")
	}
	return Success(c, http.StatusOK, "Role deleted", true)
}
