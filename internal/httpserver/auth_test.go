package httpserver

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantangan/gantangan-api/internal/models"
)

func TestAuthFlow_RegisterVerifyLogin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.registerAndVerify(t, "flow@example.com")

	rec, resp := env.do(t, http.MethodPost, "/auth/login", "", echo.Map{
		"email": "flow@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Login Success", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "flow@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")
}

func TestAuthFlow_RegisterValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	tests := []struct {
		name string
		body echo.Map
	}{
		{name: "missing email", body: echo.Map{"password": "secret123", "password_confirmation": "secret123"}},
		{name: "missing password", body: echo.Map{"email": "a@example.com"}},
		{name: "confirmation mismatch", body: echo.Map{
			"email": "a@example.com", "password": "secret123", "password_confirmation": "other",
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, resp := env.do(t, http.MethodPost, "/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "error", resp.Status)
		})
	}
}

func TestAuthFlow_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.registerAndVerify(t, "dup@example.com")

	rec, resp := env.do(t, http.MethodPost, "/auth/register", "", echo.Map{
		"email": "dup@example.com", "password": "secret123", "password_confirmation": "secret123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestAuthFlow_UnverifiedLoginRejected(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodPost, "/auth/register", "", echo.Map{
		"email": "pending@example.com", "password": "secret123", "password_confirmation": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := env.do(t, http.MethodPost, "/auth/login", "", echo.Map{
		"email": "pending@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestAuthFlow_InvalidVerificationToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodPost, "/auth/verify", "", echo.Map{"token": "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired verification token", resp.Message)
}

func TestAuthFlow_UnverifiedUserCanResend(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodPost, "/auth/register", "", echo.Map{
		"email": "resend@example.com", "password": "secret123", "password_confirmation": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, env.DB.Where("email = ?", "resend@example.com").First(&user).Error)
	access, err := env.Svc.Tokens.IssueAccessToken(user.ID, user.Email, nil)
	require.NoError(t, err)

	// private routes reject unconfirmed users
	rec, _ = env.do(t, http.MethodGet, "/auth/profile", access, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// but resend stays reachable, it is the recovery path
	rec, resp := env.do(t, http.MethodPost, "/auth/resend/verify", access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Status)
}

func TestAuthFlow_Refresh(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.registerAndVerify(t, "refresh@example.com")
	_, refresh := env.login(t, "refresh@example.com")

	rec, resp := env.do(t, http.MethodPost, "/auth/refresh", "", echo.Map{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["access_token"])

	rec, _ = env.do(t, http.MethodPost, "/auth/refresh", "", echo.Map{"refresh_token": ""})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthFlow_ProfileAndLogout(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.registerAndVerify(t, "me@example.com")
	access, _ := env.login(t, "me@example.com")

	rec, resp := env.do(t, http.MethodGet, "/auth/profile", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "me@example.com", user["email"])

	rec, resp = env.do(t, http.MethodPost, "/auth/logout", access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", resp.Message)

	// logout is stateless, the token keeps working until it expires
	rec, _ = env.do(t, http.MethodGet, "/auth/profile", access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthFlow_MissingToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", resp.Status)

	rec, _ = env.do(t, http.MethodGet, "/auth/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
