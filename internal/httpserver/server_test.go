package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/config"
	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/service"
	"github.com/gantangan/gantangan-api/internal/tokens"
)

type captureMailer struct {
	tokens map[string]string
}

func (m *captureMailer) SendVerificationEmail(_ context.Context, user *models.User, token string) error {
	m.tokens[user.Email] = token
	return nil
}

type testEnv struct {
	E      *echo.Echo
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Svc    *service.AuthService
	Mailer *captureMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedAdminRole(db))

	gormRepo := &repo.GormRepo{DB: db}
	recorder := &audit.Recorder{DB: db}
	tokenSvc := &tokens.Service{
		AccessSecret:  []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		VerifyTTL:     24 * time.Hour,
	}
	mailer := &captureMailer{tokens: map[string]string{}}
	authSvc := &service.AuthService{
		Repo:   gormRepo,
		Tokens: tokenSvc,
		Mailer: mailer,
		Audit:  recorder,
	}
	authMw := &AuthMiddleware{Repo: gormRepo, Tokens: tokenSvc, Audit: recorder}

	e := echo.New()
	Register(e, &Deps{
		Auth:          authMw,
		AuthHandler:   &AuthHTTP{Svc: authSvc},
		Roles:         &RoleHTTP{Repo: gormRepo, Audit: recorder},
		Users:         &UserHTTP{Repo: gormRepo, Audit: recorder},
		Categories:    &CategoryHTTP{Repo: gormRepo, Audit: recorder},
		Products:      &ProductHTTP{Repo: gormRepo, Audit: recorder},
		Events:        &EventHTTP{Repo: gormRepo, Audit: recorder},
		EventCats:     &EventCategoryHTTP{Repo: gormRepo, Audit: recorder},
		Registrations: &RegistrationHTTP{Repo: gormRepo, Audit: recorder},
	})

	return &testEnv{E: e, DB: db, Repo: gormRepo, Svc: authSvc, Mailer: mailer}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	var resp Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

// registerAndVerify walks the real flow: register, pull the token the mailer
// captured, verify.
func (env *testEnv) registerAndVerify(t *testing.T, email string) {
	t.Helper()

	rec, _ := env.do(t, http.MethodPost, "/auth/register", "", echo.Map{
		"name":                  "Test User",
		"email":                 email,
		"password":              "secret123",
		"password_confirmation": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	token, ok := env.Mailer.tokens[email]
	require.True(t, ok, "no verification mail captured for %s", email)

	rec, _ = env.do(t, http.MethodPost, "/auth/verify", "", echo.Map{"token": token})
	require.Equal(t, http.StatusOK, rec.Code)
}

func (env *testEnv) login(t *testing.T, email string) (access, refresh string) {
	t.Helper()

	rec, resp := env.do(t, http.MethodPost, "/auth/login", "", echo.Map{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "success", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	access, _ = data["access_token"].(string)
	refresh, _ = data["refresh_token"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}

func (env *testEnv) grantRole(t *testing.T, email, roleName string, actions []string) {
	t.Helper()

	role := models.Role{Name: roleName, Actions: models.ActionList(actions)}
	require.NoError(t, env.DB.Where("name = ?", roleName).FirstOrCreate(&role).Error)
	require.NoError(t, env.DB.Model(&models.User{}).
		Where("email = ?", email).
		Update("role_id", role.ID).Error)
}
