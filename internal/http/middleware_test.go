package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/admin-dashboard/internal/application"
	httptransport "github.com/example/admin-dashboard/internal/http"
)

type stubSessionValidator struct {
	principal application.Principal
	err       error
}

func (s stubSessionValidator) ValidateSession(_ context.Context, _ string) (application.Principal, error) {
	return s.principal, s.err
}

func TestRequireSessionRejectsMissingToken(t *testing.T) {
	t.Parallel()

	middleware := httptransport.RequireSession(stubSessionValidator{}, nil)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a token")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/appointments", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", recorder.Code)
	}
}

func TestRequireSessionDistinguishesFailureModes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "expired", err: application.ErrSessionExpired, wantStatus: http.StatusUnauthorized, wantMessage: "expired"},
		{name: "revoked", err: application.ErrSessionRevoked, wantStatus: http.StatusUnauthorized, wantMessage: "revoked"},
		{name: "invalid", err: application.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantMessage: "not valid"},
		{name: "store failure", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError, wantMessage: "session validation failed"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			middleware := httptransport.RequireSession(stubSessionValidator{err: tc.err}, nil)
			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler reached with a failing validator")
			}))

			request := httptest.NewRequest(http.MethodGet, "/appointments", nil)
			request.Header.Set("Authorization", "Bearer token-1")
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			if recorder.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tc.wantStatus)
			}
			if !strings.Contains(recorder.Body.String(), tc.wantMessage) {
				t.Fatalf("body %q does not mention %q", recorder.Body.String(), tc.wantMessage)
			}
		})
	}
}

func TestRequireSessionInjectsPrincipal(t *testing.T) {
	t.Parallel()

	validator := stubSessionValidator{principal: application.Principal{UserID: "user-1", Email: "alison.e@rayna.ui"}}
	middleware := httptransport.RequireSession(validator, nil)

	var seen application.Principal
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httptransport.PrincipalFromContext(r.Context())
		if !ok {
			t.Error("principal missing from request context")
		}
		seen = principal
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	request.AddCookie(&http.Cookie{Name: "session_token", Value: "token-1"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if seen.UserID != "user-1" {
		t.Fatalf("principal = %+v", seen)
	}
}

func TestRequestLoggerPassesRequestThrough(t *testing.T) {
	t.Parallel()

	middleware := httptransport.RequestLogger(nil)

	called := false
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if httptransport.LoggerFromContext(r.Context()) == nil {
			t.Error("request logger not attached to the context")
		}
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/calendar", nil))

	if !called {
		t.Fatal("wrapped handler was not invoked")
	}
	if recorder.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want the handler's status", recorder.Code)
	}
}
