package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/gantangan/gantangan-api/internal/audit"
	"github.com/gantangan/gantangan-api/internal/authz"
	"github.com/gantangan/gantangan-api/internal/hash"
	"github.com/gantangan/gantangan-api/internal/logging"
	"github.com/gantangan/gantangan-api/internal/mail"
	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/mykafka"
	"github.com/gantangan/gantangan-api/internal/repo"
	"github.com/gantangan/gantangan-api/internal/tokens"
	"github.com/gantangan/gantangan-api/internal/transport"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot probe which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnconfirmed        = errors.New("please verify your email to continue")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrMailDispatch       = errors.New("failed to send verification email")
)

type AuthService struct {
	Repo     *repo.GormRepo
	Tokens   *tokens.Service
	Mailer   mail.Mailer
	Audit    *audit.Recorder
	Producer *mykafka.Producer
}

type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishEvent(ctx, "user_events", key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "error", err)
	}
}

// Register creates an unconfirmed user and dispatches the verification mail.
// A dispatch failure does not roll back the user row: the resend endpoint
// exists to recover from it.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return ErrEmailTaken
		}
		return err
	}

	s.publish(ctx, user.ID.String(), map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	if err := s.sendVerification(ctx, &user); err != nil {
		l.Error("verification_dispatch_failed", "user_id", user.ID, "error", err)
		return ErrMailDispatch
	}
	return nil
}

func (s *AuthService) sendVerification(ctx context.Context, user *models.User) error {
	token, err := s.Tokens.IssueVerificationToken(user.ID, user.Email)
	if err != nil {
		return err
	}
	return s.Mailer.SendVerificationEmail(ctx, user, token)
}

// VerifyEmail resolves the verification token and flips the confirmation
// flag. Re-verifying an already confirmed user succeeds without effect.
func (s *AuthService) VerifyEmail(ctx context.Context, rawToken string) error {
	claims, err := s.Tokens.ParseVerificationToken(rawToken)
	if err != nil {
		return tokens.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return tokens.ErrInvalidToken
	}
	if err := s.Repo.ConfirmUser(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return tokens.ErrInvalidToken
		}
		return err
	}
	return nil
}

// ResendVerification re-dispatches the mail for the authenticated caller.
func (s *AuthService) ResendVerification(ctx context.Context, userID uuid.UUID) error {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsConfirmed {
		return nil
	}
	if err := s.sendVerification(ctx, user); err != nil {
		logging.FromContext(ctx).Error("verification_dispatch_failed", "user_id", userID, "error", err)
		return ErrMailDispatch
	}
	return nil
}

// Login never mutates the user record. Exactly one SUCCESS audit entry with
// action "auth:login" is written before the tokens are returned.
func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsConfirmed {
		return nil, ErrUnconfirmed
	}

	accessToken, err := s.Tokens.IssueAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.Tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.Audit.Record(ctx, authz.ActionAuthLogin, &user.ID, audit.StatusSuccess, http.StatusOK)
	s.publish(ctx, user.ID.String(), map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
		"email":   user.Email,
	})
	l.Info("login_successful", "user_id", user.ID)

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh mints a new access token for the refresh token's subject. An empty
// token is rejected before any signature check. The refresh token itself is
// not rotated; it stays usable until expiry.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (string, error) {
	if rawToken == "" {
		return "", tokens.ErrInvalidToken
	}
	claims, err := s.Tokens.ParseRefreshToken(rawToken)
	if err != nil {
		return "", tokens.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", tokens.ErrInvalidToken
	}
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", tokens.ErrInvalidToken
		}
		return "", err
	}
	return s.Tokens.IssueAccessToken(user.ID, user.Email, user.RoleID)
}

// Profile returns the user's public projection; the password hash is never
// serialized.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.Repo.GetUser(ctx, userID)
}
