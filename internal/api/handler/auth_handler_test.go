package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/core/domain"
)

type stubAuthService struct {
	registerBody string
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error

	gotUsername string
	gotEmail    string
}

func (s *stubAuthService) Register(_ context.Context, username, email, _ string) (string, error) {
	s.gotUsername = username
	s.gotEmail = email
	return s.registerBody, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	s.gotEmail = email
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) LoadByUsername(_ context.Context, username string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_PassesBodyThrough(t *testing.T) {
	svc := &stubAuthService{registerBody: `[{"user_id":1,"username":"alice"}]`}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, `{"username":"alice","email":"alice@x.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Body.String() != `[{"user_id":1,"username":"alice"}]` {
		t.Fatalf("store body not passed through: %q", rec.Body.String())
	}
	if svc.gotUsername != "alice" || svc.gotEmail != "alice@x.com" {
		t.Fatalf("service called with %q/%q", svc.gotUsername, svc.gotEmail)
	}
}

func TestAuthHandler_Register_RejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, `{"username":"al","email":"not-an-email","password":"secret1"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginToken: "signed-token",
		loginUser: &domain.User{
			Username:     "alice",
			Email:        "alice@x.com",
			PasswordHash: "$2a$10$secret",
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, `{"email":"alice@x.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["jwtToken"]) != `"signed-token"` {
		t.Fatalf("jwtToken missing: %s", rec.Body.String())
	}
	// The password hash must never appear in any returned payload.
	if strings.Contains(rec.Body.String(), "secret") && strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newAuthContext(t, `{"email":"alice@x.com","password":"wrong1"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
