package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/admin-dashboard/internal/application"
	"github.com/example/admin-dashboard/internal/store"
	"github.com/example/admin-dashboard/internal/testfixtures"
)

func seedUser(t *testing.T, factory *testfixtures.ServiceFactory, email, password string) store.User {
	t.Helper()

	hash, err := application.CreatePasswordHash(password, application.DefaultArgon2idParams)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	user := store.User{
		ID:           "user-admin",
		Name:         "Alison Eyo",
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := factory.Store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func TestAuthenticateIssuesSession(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	user := seedUser(t, factory, "alison.e@rayna.ui", "s3cret")
	service := factory.Auth()

	result, err := service.Authenticate(context.Background(), application.AuthenticateParams{
		Email:    "alison.e@rayna.ui",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Authenticate returned %v", err)
	}
	if result.User.ID != user.ID {
		t.Fatalf("authenticated wrong user: %+v", result.User)
	}
	if result.Session.Token == "" {
		t.Fatal("session token is empty")
	}
	wantExpiry := testfixtures.ReferenceTime().Add(24 * time.Hour)
	if !result.Session.ExpiresAt.Equal(wantExpiry) {
		t.Fatalf("session expires %v, want %v", result.Session.ExpiresAt, wantExpiry)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	seedUser(t, factory, "alison.e@rayna.ui", "s3cret")
	service := factory.Auth()

	_, err := service.Authenticate(context.Background(), application.AuthenticateParams{
		Email:    "alison.e@rayna.ui",
		Password: "wrong",
	})
	if !errors.Is(err, application.ErrInvalidCredentials) {
		t.Fatalf("Authenticate returned %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownEmailCollapsesToInvalidCredentials(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	service := factory.Auth()

	_, err := service.Authenticate(context.Background(), application.AuthenticateParams{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, application.ErrInvalidCredentials) {
		t.Fatalf("Authenticate returned %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateSessionResolvesPrincipal(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	user := seedUser(t, factory, "alison.e@rayna.ui", "s3cret")
	service := factory.Auth()
	ctx := context.Background()

	result, err := service.Authenticate(ctx, application.AuthenticateParams{Email: user.Email, Password: "s3cret"})
	if err != nil {
		t.Fatalf("Authenticate returned %v", err)
	}

	principal, err := service.ValidateSession(ctx, result.Session.Token)
	if err != nil {
		t.Fatalf("ValidateSession returned %v", err)
	}
	if principal.UserID != user.ID || principal.Email != user.Email {
		t.Fatalf("principal mismatch: %+v", principal)
	}
}

func TestValidateSessionExpired(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	user := seedUser(t, factory, "alison.e@rayna.ui", "s3cret")
	service := factory.Auth()
	ctx := context.Background()

	result, err := service.Authenticate(ctx, application.AuthenticateParams{Email: user.Email, Password: "s3cret"})
	if err != nil {
		t.Fatalf("Authenticate returned %v", err)
	}

	factory.Clock.Advance(25 * time.Hour)

	if _, err := service.ValidateSession(ctx, result.Session.Token); !errors.Is(err, application.ErrSessionExpired) {
		t.Fatalf("ValidateSession returned %v, want ErrSessionExpired", err)
	}
}

func TestValidateSessionRevoked(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	user := seedUser(t, factory, "alison.e@rayna.ui", "s3cret")
	service := factory.Auth()
	ctx := context.Background()

	result, err := service.Authenticate(ctx, application.AuthenticateParams{Email: user.Email, Password: "s3cret"})
	if err != nil {
		t.Fatalf("Authenticate returned %v", err)
	}

	if err := service.RevokeSession(ctx, result.Session.Token); err != nil {
		t.Fatalf("RevokeSession returned %v", err)
	}

	if _, err := service.ValidateSession(ctx, result.Session.Token); !errors.Is(err, application.ErrSessionRevoked) {
		t.Fatalf("ValidateSession returned %v, want ErrSessionRevoked", err)
	}
}

func TestValidateSessionUnknownToken(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	service := factory.Auth()

	if _, err := service.ValidateSession(context.Background(), "unknown"); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("ValidateSession returned %v, want ErrUnauthorized", err)
	}
	if _, err := service.ValidateSession(context.Background(), ""); !errors.Is(err, application.ErrUnauthorized) {
		t.Fatalf("empty token returned %v, want ErrUnauthorized", err)
	}
}

func TestRevokeSessionUnknownTokenSucceeds(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	service := factory.Auth()

	if err := service.RevokeSession(context.Background(), "unknown"); err != nil {
		t.Fatalf("RevokeSession returned %v, want nil", err)
	}
}

func TestPurgeExpiredSessions(t *testing.T) {
	t.Parallel()

	factory := testfixtures.NewServiceFactory()
	user := seedUser(t, factory, "alison.e@rayna.ui", "s3cret")
	service := factory.Auth()
	ctx := context.Background()

	result, err := service.Authenticate(ctx, application.AuthenticateParams{Email: user.Email, Password: "s3cret"})
	if err != nil {
		t.Fatalf("Authenticate returned %v", err)
	}

	factory.Clock.Advance(25 * time.Hour)
	if err := service.PurgeExpiredSessions(ctx); err != nil {
		t.Fatalf("PurgeExpiredSessions returned %v", err)
	}

	if _, err := factory.Store.GetSession(ctx, result.Session.Token); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expired session survived purge: %v", err)
	}
}
