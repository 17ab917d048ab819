package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/warungkita/food-ordering/internal/core/domain"
	"github.com/warungkita/food-ordering/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session token. The
// cookie is the only token transport the API accepts.
const SessionCookieName = "session_token"

// userContextKey is where Session stores the resolved user on the echo context.
const userContextKey = "user"

// Session resolves the session cookie on every request and injects the
// owning user into the context. Requests without a valid, unexpired session
// are rejected with 401.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			user, err := auth.ResolveSession(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session not found or expired")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user injected by Session, or nil when the
// middleware did not run.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// TokenFromRequest extracts the raw session token, if any, without resolving it.
func TokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// NewSessionCookie builds the Set-Cookie payload issued on login:
// HttpOnly, Path=/, SameSite=Strict, Max-Age matching the session TTL.
func NewSessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expiresAt).Round(time.Second).Seconds()),
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearSessionCookie builds the cookie sent on logout. The negative MaxAge
// renders as Max-Age=0, expiring the cookie immediately.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
