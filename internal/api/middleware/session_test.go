package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/storefront/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionStore) Create(_ context.Context, userID string, role domain.Role) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubSessionStore) Resolve(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, token string) error {
	if _, ok := s.sessions[token]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func TestSession_MissingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(&stubSessionStore{sessions: map[string]*domain.Session{}}, "storefront_session")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_UnknownToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(&stubSessionStore{sessions: map[string]*domain.Session{}}, "storefront_session")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "tok123"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"tok123": {UserID: "u1", Role: domain.RoleAdmin},
	}}

	called := false
	mw := Session(store, "storefront_session")
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "u1" {
			t.Errorf("expected user_id u1, got %v", c.Get("user_id"))
		}
		if c.Get("role") != "admin" {
			t.Errorf("expected role admin, got %v", c.Get("role"))
		}
		if c.Get("session_token") != "tok123" {
			t.Errorf("expected session_token tok123, got %v", c.Get("session_token"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}
