package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/hash"
	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/transport"
)

type UserHTTP struct {
	Repo  *repo.GormRepo
	Audit *audit.Recorder
}

func (h *UserHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset, keyword := bindListQuery(c)

	total, users, err := h.Repo.ListUsers(ctx, keyword, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionUserRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to get users")
	}
	return SuccessPage(c, http.StatusOK, "Get all users success", users, NewMeta(page, limit, total))
}

func (h *UserHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return Failure(c, http.StatusBadRequest, "email and password are required")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return Failure(c, http.StatusInternalServerError, "Internal server error")
	}
	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		// admin-created accounts skip the verification mail flow
		IsConfirmed: true,
		RoleID:      req.RoleID,
	}

	err = h.Repo.CreateUser(ctx, &user)
	recordOutcome(ctx, h.Audit, c, authz.ActionUserCreate, err, http.StatusCreated)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to create user")
	}
	return Success(c, http.StatusCreated, "User created", user)
}

func (h *UserHTTP) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid user id")
	}

	user, err := h.Repo.GetUser(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionUserRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "User not found")
	}
	return Success(c, http.StatusOK, "User detail", user)
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid user id")
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	user, err := h.Repo.UpdateUser(ctx, id, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionUserUpdate, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to update user")
	}
	return Success(c, http.StatusOK, "User updated", user)
}

func (h *UserHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid user id")
	}

	err = h.Repo.DeleteUser(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionUserDelete, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to delete user")
	}
	return Success(c, http.StatusOK, "User deleted", true)
}
