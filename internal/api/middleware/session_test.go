package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

type stubAuth struct {
	token   string
	session *ports.Session
	user    *domain.User
	touched int
}

func (a *stubAuth) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return a.token, a.user, nil
}

func (a *stubAuth) Logout(_ context.Context, _ string) error { return nil }

func (a *stubAuth) Whoami(_ context.Context, userID string) (*domain.User, error) {
	if a.user != nil && a.user.ID == userID {
		return a.user, nil
	}
	return nil, domain.ErrNotFound
}

func (a *stubAuth) ResolveSession(_ context.Context, token string) (*ports.Session, error) {
	if a.session != nil && token == a.token {
		return a.session, nil
	}
	return nil, domain.ErrAccessDenied
}

func (a *stubAuth) TouchSession(_ context.Context, _ string) error {
	a.touched++
	return nil
}

func runSession(t *testing.T, auth ports.AuthService, cookie string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(auth)(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return c
}

func TestSession_ValidCookiePopulatesIdentity(t *testing.T) {
	auth := &stubAuth{
		token:   "good-token",
		session: &ports.Session{ID: "s1", UserID: "u1", LastActivity: time.Now()},
		user:    &domain.User{ID: "u1", Username: "carol", Role: domain.RoleAdmin},
	}
	c := runSession(t, auth, "good-token")

	if got, _ := c.Get(KeyUserID).(string); got != "u1" {
		t.Fatalf("user id = %q", got)
	}
	if got, _ := c.Get(KeyUsername).(string); got != "carol" {
		t.Fatalf("username = %q", got)
	}
	if got, _ := c.Get(KeyRole).(string); got != domain.RoleAdmin {
		t.Fatalf("role = %q", got)
	}
	if auth.touched != 1 {
		t.Fatalf("session touched %d times, want 1", auth.touched)
	}
}

func TestSession_NoCookieStaysAnonymous(t *testing.T) {
	c := runSession(t, &stubAuth{}, "")

	if got := c.Get(KeyUserID); got != nil {
		t.Fatalf("anonymous request carries identity: %v", got)
	}
}

func TestSession_BadTokenStaysAnonymous(t *testing.T) {
	auth := &stubAuth{
		token:   "good-token",
		session: &ports.Session{ID: "s1", UserID: "u1"},
		user:    &domain.User{ID: "u1", Username: "carol", Role: domain.RoleNormal},
	}
	c := runSession(t, auth, "forged-token")

	if got := c.Get(KeyUserID); got != nil {
		t.Fatalf("forged token resolved to identity: %v", got)
	}
	if auth.touched != 0 {
		t.Fatalf("dead session was touched")
	}
}

func TestSession_DeletedUserStaysAnonymous(t *testing.T) {
	auth := &stubAuth{
		token:   "good-token",
		session: &ports.Session{ID: "s1", UserID: "gone"},
		user:    &domain.User{ID: "u1", Username: "carol", Role: domain.RoleNormal},
	}
	c := runSession(t, auth, "good-token")

	if got := c.Get(KeyUserID); got != nil {
		t.Fatalf("stale session resolved to identity: %v", got)
	}
}
