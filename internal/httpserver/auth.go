package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gantangan/gantangan-api/internal/logging"
	"github.com/gantangan/gantangan-api/internal/service"
	"github.com/gantangan/gantangan-api/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return Failure(c, http.StatusBadRequest, "email and password are required")
	}
	if req.Password != req.PasswordConfirmation {
		return Failure(c, http.StatusBadRequest, "password confirmation does not match")
	}

	if err := h.Svc.Register(ctx, req); err != nil {
		code := statusOf(err)
		l.Warn("register_failed", "status", code, "error", err)
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return Failure(c, code, err.Error())
		case errors.Is(err, service.ErrMailDispatch):
			return Failure(c, code, err.Error())
		default:
			return Failure(c, http.StatusInternalServerError, "Internal server error")
		}
	}
	return Success(c, http.StatusCreated, "Register user success", nil)
}

func (h *AuthHTTP) VerifyEmail(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.VerifyEmailRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.VerifyEmail(ctx, req.Token); err != nil {
		code := statusOf(err)
		if code == http.StatusInternalServerError {
			return Failure(c, code, "Internal server error")
		}
		return Failure(c, code, "Invalid or expired verification token")
	}
	return Success(c, http.StatusOK, "Email verified", nil)
}

func (h *AuthHTTP) ResendVerification(c echo.Context) error {
	ctx := c.Request().Context()
	p, ok := CurrentPrincipal(c)
	if !ok {
		return Failure(c, http.StatusUnauthorized, "Please log in to continue")
	}

	if err := h.Svc.ResendVerification(ctx, p.UserID); err != nil {
		code := statusOf(err)
		if errors.Is(err, service.ErrMailDispatch) {
			return Failure(c, code, err.Error())
		}
		return Failure(c, http.StatusInternalServerError, "Internal server error")
	}
	return Success(c, http.StatusOK, "Verification email sent", nil)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req)
	if err != nil {
		code := statusOf(err)
		l.Warn("login_failed", "status", code)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return Failure(c, code, err.Error())
		case errors.Is(err, service.ErrUnconfirmed):
			return Failure(c, code, err.Error())
		default:
			return Failure(c, http.StatusInternalServerError, "Internal server error")
		}
	}
	return Success(c, http.StatusOK, "Login Success", res)
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "invalid body")
	}
	// structural precondition: a missing token never reaches signature checks
	if req.RefreshToken == "" {
		return Failure(c, http.StatusUnauthorized, "Invalid refresh token")
	}

	accessToken, err := h.Svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		code := statusOf(err)
		if code == http.StatusInternalServerError {
			return Failure(c, code, "Internal server error")
		}
		return Failure(c, http.StatusUnauthorized, "Invalid refresh token")
	}
	return Success(c, http.StatusOK, "Token refreshed", echo.Map{"access_token": accessToken})
}

// Logout is a stateless acknowledgement: there is no server-side session to
// invalidate.
func (h *AuthHTTP) Logout(c echo.Context) error {
	return Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHTTP) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	p, ok := CurrentPrincipal(c)
	if !ok {
		return Failure(c, http.StatusUnauthorized, "Please log in to continue")
	}

	user, err := h.Svc.Profile(ctx, p.UserID)
	if err != nil {
		return Failure(c, http.StatusInternalServerError, "Failed to get profile")
	}
	return Success(c, http.StatusOK, "Get profile success", user)
}
