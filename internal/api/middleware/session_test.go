package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

type stubAuthService struct {
	resolveFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, time.Time, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	return s.resolveFn(ctx, token)
}

func (s *stubAuthService) DestroySession(ctx context.Context, token string) error {
	return nil
}

func runSession(t *testing.T, auth *stubAuthService, cookie *http.Cookie) (*httptest.ResponseRecorder, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}

	err := Session(auth)(next)(c)
	return rec, err, nextCalled
}

func TestSession_MissingCookie(t *testing.T) {
	auth := &stubAuthService{
		resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
			t.Fatalf("resolve must not be called without a cookie")
			return nil, nil
		},
	}

	_, err, nextCalled := runSession(t, auth, nil)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if nextCalled {
		t.Fatalf("next must not run without a session")
	}
}

func TestSession_InvalidToken(t *testing.T) {
	auth := &stubAuthService{
		resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrUnauthenticated
		},
	}

	_, err, nextCalled := runSession(t, auth, &http.Cookie{Name: SessionCookieName, Value: "bogus"})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if nextCalled {
		t.Fatalf("next must not run with an invalid session")
	}
}

func TestSession_ValidToken(t *testing.T) {
	want := &domain.User{ID: "user_1", Email: "alice@example.com"}
	auth := &stubAuthService{
		resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "tok123" {
				t.Fatalf("unexpected token %q", token)
			}
			return want, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok123"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Session(auth)(func(c echo.Context) error {
		if got := UserFromContext(c); got != want {
			t.Fatalf("expected user in context, got %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewSessionCookie_Attributes(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour)
	cookie := NewSessionCookie("tok123", expiresAt)

	if cookie.Name != "session_token" || cookie.Value != "tok123" {
		t.Fatalf("unexpected cookie identity: %+v", cookie)
	}
	if !cookie.HttpOnly || cookie.Path != "/" || cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}
	// 24h TTL → Max-Age within a second of 86400.
	if cookie.MaxAge < 86399 || cookie.MaxAge > 86400 {
		t.Fatalf("unexpected Max-Age: %d", cookie.MaxAge)
	}
}

func TestClearSessionCookie_Expires(t *testing.T) {
	cookie := ClearSessionCookie()
	if cookie.MaxAge >= 0 {
		t.Fatalf("expected negative MaxAge, got %d", cookie.MaxAge)
	}
	// Negative MaxAge serializes as Max-Age=0, expiring the cookie.
	if s := cookie.String(); !strings.Contains(s, "Max-Age=0") {
		t.Fatalf("expected Max-Age=0 in %s", s)
	}
}
