package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/admin-dashboard/internal/store"
)

// AuthService issues and validates bearer sessions for dashboard accounts.
type AuthService struct {
	store       *store.Memory
	idGenerator func() string
	now         func() time.Time
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(memory *store.Memory, idGenerator func() string, now func() time.Time, sessionTTL time.Duration) *AuthService {
	return NewAuthServiceWithLogger(memory, idGenerator, now, sessionTTL, nil)
}

// NewAuthServiceWithLogger constructs an AuthService with an explicit base
// logger.
func NewAuthServiceWithLogger(memory *store.Memory, idGenerator func() string, now func() time.Time, sessionTTL time.Duration, logger *slog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		store:       memory,
		idGenerator: idGenerator,
		now:         now,
		sessionTTL:  sessionTTL,
		logger:      defaultLogger(logger),
	}
}

func (s *AuthService) loggerWith(ctx context.Context, operation string) *slog.Logger {
	return serviceLogger(ctx, s.logger, "auth_service", operation)
}

// Authenticate verifies the credentials and issues a fresh session. Unknown
// accounts and wrong passwords both collapse to ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *AuthService) Authenticate(ctx context.Context, params AuthenticateParams) (result AuthenticateResult, err error) {
	logger := s.loggerWith(ctx, "authenticate")
	defer func() {
		if err != nil {
			logger.Warn("authentication failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("session issued", "user_id", result.User.ID, "session_id", result.Session.ID)
	}()

	email := strings.TrimSpace(strings.ToLower(params.Email))
	if email == "" || params.Password == "" {
		return AuthenticateResult{}, ErrInvalidCredentials
	}

	user, getErr := s.store.GetUserByEmail(ctx, email)
	if getErr != nil {
		if errors.Is(getErr, store.ErrNotFound) {
			return AuthenticateResult{}, ErrInvalidCredentials
		}
		return AuthenticateResult{}, fmt.Errorf("load user: %w", getErr)
	}

	if verifyErr := VerifyPassword(user.PasswordHash, params.Password); verifyErr != nil {
		if errors.Is(verifyErr, ErrInvalidCredentials) {
			return AuthenticateResult{}, ErrInvalidCredentials
		}
		return AuthenticateResult{}, fmt.Errorf("verify password: %w", verifyErr)
	}

	token, tokenErr := generateSessionToken()
	if tokenErr != nil {
		return AuthenticateResult{}, fmt.Errorf("generate session token: %w", tokenErr)
	}

	now := s.now()
	session := store.Session{
		ID:        s.idGenerator(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, createErr := s.store.CreateSession(ctx, session)
	if createErr != nil {
		return AuthenticateResult{}, fmt.Errorf("create session: %w", createErr)
	}
	return AuthenticateResult{User: user, Session: created}, nil
}

// ValidateSession resolves a bearer token to its principal. Expired and
// revoked sessions are distinguished so clients can explain the rejection.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (principal Principal, err error) {
	logger := s.loggerWith(ctx, "validate_session")
	defer func() {
		if err != nil {
			logger.Debug("session validation failed", "error_kind", ErrorKind(err))
		}
	}()

	if strings.TrimSpace(token) == "" {
		return Principal{}, ErrUnauthorized
	}

	session, getErr := s.store.GetSession(ctx, token)
	if getErr != nil {
		if errors.Is(getErr, store.ErrNotFound) {
			return Principal{}, ErrUnauthorized
		}
		return Principal{}, fmt.Errorf("load session: %w", getErr)
	}

	if session.RevokedAt != nil {
		return Principal{}, ErrSessionRevoked
	}
	if !session.ExpiresAt.After(s.now()) {
		return Principal{}, ErrSessionExpired
	}

	user, getErr := s.store.GetUser(ctx, session.UserID)
	if getErr != nil {
		if errors.Is(getErr, store.ErrNotFound) {
			return Principal{}, ErrUnauthorized
		}
		return Principal{}, fmt.Errorf("load user: %w", getErr)
	}

	return Principal{UserID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// RevokeSession marks the session behind the token as revoked. Revoking an
// unknown token succeeds; the caller's goal (that the token no longer works)
// already holds.
func (s *AuthService) RevokeSession(ctx context.Context, token string) (err error) {
	logger := s.loggerWith(ctx, "revoke_session")
	defer func() {
		if err != nil {
			logger.Warn("session revocation failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.Info("session revoked")
	}()

	if _, revokeErr := s.store.RevokeSession(ctx, token, s.now()); revokeErr != nil {
		if errors.Is(revokeErr, store.ErrNotFound) {
			logger.Info("session already absent")
			return nil
		}
		return fmt.Errorf("revoke session: %w", revokeErr)
	}
	return nil
}

// PurgeExpiredSessions removes sessions whose expiry has passed.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) error {
	return s.store.DeleteExpiredSessions(ctx, s.now())
}

func generateSessionToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
