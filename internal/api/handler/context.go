package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warungkita/food-ordering/internal/api/middleware"
	"github.com/warungkita/food-ordering/internal/core/domain"
)

// currentUser extracts the user injected by the session middleware and
// fast-fails before any service call. A nil user means the route was wired
// without the middleware or the middleware was bypassed — reject with 401
// rather than trusting the request.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.UserFromContext(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}
