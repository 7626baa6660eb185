package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	typeRefresh = "refresh"
	typeVerify  = "verify"
)

type AccessClaims struct {
	Email     string `json:"email"`
	RoleID    string `json:"role_id,omitempty"`
	TokenType string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type VerifyClaims struct {
	Email     string `json:"email"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// Service mints and verifies signed, time-bounded tokens. It keeps no state:
// validity is fully determined by signature and expiry, so a leaked access
// token stays valid until it expires (accepted limitation, no revocation list).
type Service struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	VerifyTTL     time.Duration
}

func (s *Service) IssueAccessToken(userID uuid.UUID, email string, roleID *uuid.UUID) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTTL)),
		},
	}
	if roleID != nil {
		claims.RoleID = roleID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.AccessSecret)
}

func (s *Service) IssueRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		TokenType: typeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.RefreshTTL)),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.RefreshSecret)
}

func (s *Service) IssueVerificationToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := VerifyClaims{
		Email:     email,
		TokenType: typeVerify,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.VerifyTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.AccessSecret)
}

func (s *Service) ParseAccessToken(raw string) (*AccessClaims, error) {
	var claims AccessClaims
	if err := parseInto(raw, &claims, s.AccessSecret); err != nil {
		return nil, err
	}
	// verification tokens share the secret but carry a typ claim
	if claims.TokenType != "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (s *Service) ParseRefreshToken(raw string) (*RefreshClaims, error) {
	var claims RefreshClaims
	if err := parseInto(raw, &claims, s.RefreshSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != typeRefresh {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (s *Service) ParseVerificationToken(raw string) (*VerifyClaims, error) {
	var claims VerifyClaims
	if err := parseInto(raw, &claims, s.AccessSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != typeVerify {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func parseInto(raw string, claims jwt.Claims, secret []byte) error {
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return ErrInvalidToken
	}
	return nil
}
