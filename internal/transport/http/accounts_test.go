package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/onu24/learnsphere-v1/internal/app"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

func TestHandleRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "created",
			body:           `{"username":"ada","email":"ada@x.com","password":"secret"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"email":"ada@x.com"`,
		},
		{
			name:           "invalid body",
			body:           `{"username":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing field",
			body:           `{"username":"ada","email":"","password":"secret"}`,
			serviceErr:     domain.ErrMissingField,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "email taken",
			body:           `{"username":"ada","email":"ada@x.com","password":"secret"}`,
			serviceErr:     domain.ErrEmailTaken,
			expectedStatus: http.StatusConflict,
			expectedSubstr: codeEmailTaken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubAccountService{
				user: domain.User{ID: "user-1", Username: "ada", Email: "ada@x.com", Role: domain.RoleUser},
				err:  tt.serviceErr,
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandleRegister(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "ok",
			body:           `{"email":"ada@x.com","password":"secret"}`,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"token":"tok-1"`,
		},
		{
			name:           "invalid credentials",
			body:           `{"email":"ada@x.com","password":"wrong"}`,
			serviceErr:     domain.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid body",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubAccountService{
				token: "tok-1",
				user:  domain.User{ID: "user-1", Email: "ada@x.com", Role: domain.RoleUser},
				err:   tt.serviceErr,
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandleLogin(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

type stubAccountService struct {
	user  domain.User
	token string
	err   error
}

func (s *stubAccountService) Register(_ context.Context, _ app.RegisterInput) (domain.User, error) {
	if s.err != nil {
		return domain.User{}, s.err
	}
	return s.user, nil
}

func (s *stubAccountService) Login(_ context.Context, _, _ string) (string, domain.User, error) {
	if s.err != nil {
		return "", domain.User{}, s.err
	}
	return s.token, s.user, nil
}
