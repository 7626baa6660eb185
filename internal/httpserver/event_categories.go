package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/transport"
)

type EventCategoryHTTP struct {
	Repo  *repo.GormRepo
	Audit *audit.Recorder
}

func parseUintQuery(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	u := uint(v)
	return &u, nil
}

func (h *EventCategoryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset, keyword := bindListQuery(c)
	eventID, err := parseUintQuery(c, "event_id")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event_id")
	}

	total, categories, err := h.Repo.ListEventCategories(ctx, keyword, eventID, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventCategoryRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to get event categories")
	}
	return SuccessPage(c, http.StatusOK, "Get all event categories success", categories, NewMeta(page, limit, total))
}

func (h *EventCategoryHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateEventCategoryRequest
	if err := c.Bind(&req); err != nil || req.Name == "" || req.EventID == 0 {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	category, err := h.Repo.CreateEventCategory(ctx, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventCategoryCreate, err, http.StatusCreated)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to create event category")
	}
	return Success(c, http.StatusCreated, "Event category created", category)
}

func (h *EventCategoryHTTP) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "eventCategoryId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event category id")
	}

	category, err := h.Repo.GetEventCategory(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventCategoryRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Event category not found")
	}
	return Success(c, http.StatusOK, "Event category detail", category)
}

func (h *EventCategoryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "eventCategoryId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event category id")
	}

	var req transport.UpdateEventCategoryRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	category, err := h.Repo.UpdateEventCategory(ctx, id, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventCategoryUpdate, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to update event category")
	}
	return Success(c, http.StatusOK, "Event category updated", category)
}

func (h *EventCategoryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "eventCategoryId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event category id")
	}

	err = h.Repo.DeleteEventCategory(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventCategoryDelete, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to delete event category")
	}
	return Success(c, http.StatusOK, "Event category deleted", true)
}
