package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error)
	loginFn  func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(_ context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Token: "tok",
				User:  &domain.User{ID: "user_1", Name: input.Name, Email: input.Email, Role: input.Role},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"name":"Ana","email":"ana@example.com","password":"secret1","role":"viewer"}`
	c, rec := jsonContext(http.MethodPost, "/api/auth/signup", body)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
	if resp.User.Email != "ana@example.com" || resp.User.Role != domain.RoleViewer {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("response must not carry any password field")
	}
}

func TestAuthHandler_Signup_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (*ports.AuthResult, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"BadRole", `{"name":"Ana","email":"ana@example.com","password":"secret1","role":"root"}`},
		{"ShortPassword", `{"name":"Ana","email":"ana@example.com","password":"abc","role":"viewer"}`},
		{"BadEmail", `{"name":"Ana","email":"not-an-email","password":"secret1","role":"viewer"}`},
		{"MissingName", `{"email":"ana@example.com","password":"secret1","role":"viewer"}`},
		{"Malformed", `{"name":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := jsonContext(http.MethodPost, "/api/auth/signup", tc.body)

			err := h.Signup(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", httpErr.Code)
			}
		})
	}
}

func TestAuthHandler_Signup_ServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	})

	body := `{"name":"Ana","email":"ana@example.com","password":"secret1","role":"viewer"}`
	c, _ := jsonContext(http.MethodPost, "/api/auth/signup", body)

	if err := h.Signup(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, _ string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Token: "tok",
				User:  &domain.User{ID: "user_1", Name: "Ana", Email: email, Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := jsonContext(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Login successful" || resp.Token != "tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := jsonContext(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
