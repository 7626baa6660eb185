package httpserver

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/logging"
	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/tokens"
)

const principalKey = "principal"

type AuthMiddleware struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Service
	Audit  *audit.Recorder
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// resolveUser verifies the access token and re-reads the caller's user and
// role from the database. Actions are never trusted from token claims, so a
// role change takes effect on the very next request.
func (m *AuthMiddleware) resolveUser(c echo.Context) (*models.User, *echo.HTTPError) {
	raw := bearerToken(c)
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue")
	}
	claims, err := m.Tokens.ParseAccessToken(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	user, err := m.Repo.GetUser(c.Request().Context(), userID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue")
	}
	return user, nil
}

func setPrincipal(c echo.Context, user *models.User) {
	c.Set(principalKey, authz.Principal{UserID: user.ID, Email: user.Email, Role: user.Role})

	// attach the caller to the context logger so the request's completion
	// line can be correlated with its audit entries
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("user_id", user.ID.String())
	c.SetRequest(c.Request().WithContext(logging.IntoContext(ctx, l)))
}

// RequireAuth authenticates the request and rejects unconfirmed users.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, httpErr := m.resolveUser(c)
		if httpErr != nil {
			return Failure(c, httpErr.Code, httpErr.Message.(string))
		}
		if !user.IsConfirmed {
			return Failure(c, http.StatusForbidden, "Please verify your email to continue")
		}
		setPrincipal(c, user)
		return next(c)
	}
}

// RequireToken authenticates without the confirmation gate. Used only by the
// resend-verification route, which unconfirmed users must be able to reach.
func (m *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, httpErr := m.resolveUser(c)
		if httpErr != nil {
			return Failure(c, httpErr.Code, httpErr.Message.(string))
		}
		setPrincipal(c, user)
		return next(c)
	}
}

// RequireActions gates a route on the caller's role granting every listed
// action. Runs strictly after RequireAuth. A denial is itself audited.
func (m *AuthMiddleware) RequireActions(actions ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := CurrentPrincipal(c)
			if !ok {
				return Failure(c, http.StatusUnauthorized, "Please log in to continue")
			}
			if err := authz.Authorize(p, actions...); err != nil {
				m.Audit.Record(c.Request().Context(), strings.Join(actions, ","),
					&p.UserID, audit.StatusError, http.StatusForbidden)
				return Failure(c, http.StatusForbidden, err.Error())
			}
			return next(c)
		}
	}
}

// CurrentPrincipal returns the identity resolved by the auth middleware.
func CurrentPrincipal(c echo.Context) (authz.Principal, bool) {
	p, ok := c.Get(principalKey).(authz.Principal)
	return p, ok
}

func actorOf(c echo.Context) *uuid.UUID {
	if p, ok := CurrentPrincipal(c); ok {
		id := p.UserID
		return &id
	}
	return nil
}
