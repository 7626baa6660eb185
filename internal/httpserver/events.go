package httpserver

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/search"
	"github.com/gantangan/gantangan-api/internal/transport"
)

type EventHTTP struct {
	Repo    *repo.GormRepo
	Audit   *audit.Recorder
	ES      *elasticsearch.Client
	ESIndex string
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(v), err
}

func (h *EventHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset, keyword := bindListQuery(c)

	total, events, err := h.Repo.ListEvents(ctx, keyword, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to get events")
	}
	return SuccessPage(c, http.StatusOK, "Get all events success", events, NewMeta(page, limit, total))
}

// Search queries the events index instead of the database. Only available
// when an Elasticsearch client is configured.
func (h *EventHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	if h.ES == nil {
		return Failure(c, http.StatusServiceUnavailable, "Search is not available")
	}

	query := c.QueryParam("q")
	if query == "" {
		return Failure(c, http.StatusBadRequest, "query parameter q is required")
	}
	page, limit, offset, _ := bindListQuery(c)

	total, events, err := search.SearchEvents(ctx, h.ES, h.ESIndex, query, offset, limit)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Search failed")
	}
	return SuccessPage(c, http.StatusOK, "Search events success", events, NewMeta(page, limit, total))
}

func (h *EventHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateEventRequest
	if err := c.Bind(&req); err != nil || req.Name == "" || req.Date == "" {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	event, err := h.Repo.CreateEvent(ctx, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventCreate, err, http.StatusCreated)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to create event")
	}
	return Success(c, http.StatusCreated, "Event created", event)
}

func (h *EventHTTP) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "eventId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event id")
	}

	event, err := h.Repo.GetEvent(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventRead, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Event not found")
	}
	return Success(c, http.StatusOK, "Event detail", event)
}

func (h *EventHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "eventId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event id")
	}

	var req transport.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	event, err := h.Repo.UpdateEvent(ctx, id, req)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventUpdate, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to update event")
	}
	return Success(c, http.StatusOK, "Event updated", event)
}

func (h *EventHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseUintParam(c, "eventId")
	if err != nil {
		return Failure(c, http.StatusBadRequest, "invalid event id")
	}

	err = h.Repo.DeleteEvent(ctx, id)
	recordOutcome(ctx, h.Audit, c, authz.ActionEventDelete, err, http.StatusOK)
	if err != nil {
		return Failure(c, statusOf(err), "Failed to delete event")
	}
	return Success(c, http.StatusOK, "Event deleted", true)
}
