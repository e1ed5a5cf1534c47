package service

import (
	"context"
	"errors"
	"time"

	"github.com/aicsoa/checkin-backend/internal/hash"
	"github.com/aicsoa/checkin-backend/internal/logging"
	"github.com/aicsoa/checkin-backend/internal/repo"
	"github.com/aicsoa/checkin-backend/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type LoginResult struct {
	AccessToken string
	Role        string
	ExpiresAt   time.Time
}

// Login verifies the credential pair against the stored bcrypt hash and
// issues a stateless access token. Disabled accounts fail even with the
// correct password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.Repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("login_failed", "reason", "unknown_user")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "reason", "db_error", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "bad_password")
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		l.Warn("login_failed", "reason", "account_disabled")
		return nil, ErrAccountDisabled
	}

	now := time.Now()
	token, err := tokens.Issue(user.Username, user.Role, s.JWTSecret, now)
	if err != nil {
		l.Error("login_failed", "reason", "cannot_sign_token", "error", err)
		return nil, err
	}

	l.Info("login_successful", "role", user.Role)
	return &LoginResult{
		AccessToken: token,
		Role:        user.Role,
		ExpiresAt:   now.Add(tokens.AccessTokenTTL),
	}, nil
}
