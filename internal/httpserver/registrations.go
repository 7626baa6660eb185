package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/transport"
)

type RegistrationHTTP struct {
	Repo  *repo.GormRepo
	Audit *audit.Recorder
}

func (h *RegistrationHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset, keyword := bindListQuery(c)
	eventCategoryID, err := parseUintQuery(c, "event_category_id")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event_category_id")
	}

	total, regs, err := h.Repo.ListRegistrations(ctx, keyword, eventCategoryID, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionRegistrationRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to get registrations")
	}
	return SuccessPage(c, http.StatusOK, "Get all registrations success", regs, NewMeta(page, limit, total))
}

func (h *RegistrationHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateRegistrationRequest
	if err := c.Bind(&req); err != nil || req.Name == "" || req.EventCategoryID == 0 {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	reg, err := h.Repo.CreateRegistration(ctx, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionRegistrationCreate, err, http.StatusCreated)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to create registration")
	}
	return Success(c, http.StatusCreated, "Registration created", reg)
}

func (h *RegistrationHTTP) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "registrationId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid registration id")
	}

	reg, err := h.Repo.GetRegistration(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionRegistrationRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Registration not found")
	}
	return Success(c, http.StatusOK, "Registration detail", reg)
}

func (h *RegistrationHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "registrationId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid registration id")
	}

	var req transport.UpdateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	reg, err := h.Repo.UpdateRegistration(ctx, id, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionRegistrationUpdate, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to update registration")
	}
	return Success(c, http.StatusOK, "Registration updated", reg)
}

func (h *RegistrationHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "registrationId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid registration id")
	}

	err = h.Repo.DeleteRegistration(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionRegistrationDelete, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to delete registration")
	}
	return Success(c, http.StatusOK, "Registration deleted", true)
}
