package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/service"
	"github.com/gantangan/gantangan-api/internal/tokens"
	"github.com/gantangan/gantangan-api/internal/util"
)

type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

func NewMeta(page, limit int, total int64) *Meta {
	return &Meta{
		Page:      page,
		Limit:     limit,
		Total:     total,
		TotalPage: util.TotalPages(total, limit),
	}
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func Success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{Status: "success", Message: message, Data: data})
}

func SuccessPage(c echo.Context, code int, message string, data any, meta *Meta) error {
	return c.JSON(code, Response{Status: "success", Message: message, Data: data, Meta: meta})
}

func Failure(c echo.Context, code int, message string) error {
	return c.JSON(code, Response{Status: "error", Message: message, Error: code})
}

// statusOf maps domain errors to HTTP codes; anything unknown is an internal
// error and must not leak detail to the caller.
func statusOf(err error) int {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repo.ErrConflict), errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, repo.ErrProtectedRole), errors.Is(err, authz.ErrForbidden), errors.Is(err, service.ErrUnconfirmed):
		return http.StatusForbidden
	case errors.Is(err, tokens.ErrInvalidToken), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrMailDispatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// recordOutcome writes the one audit entry every gated operation produces,
// reflecting the final outcome rather than the raw error.
func recordOutcome(ctx context.Context, rec *audit.Recorder, c echo.Context, action string, err error, successCode int) {
	var actorID = actorOf(c)
	if err != nil {
		rec.Record(ctx, action, actorID, audit.StatusError, statusOf(err))
		return
	}
	rec.Record(ctx, action, actorID, audit.StatusSuccess, successCode)
}

func bindListQuery(c echo.Context) (page, limit, offset int, keyword string) {
	page = parseIntDefault(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	limit = parseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)
	offset, limit = util.Calculate(page, limit)
	return page, limit, offset, c.QueryParam("keyword")
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
