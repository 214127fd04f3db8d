package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/api/middleware"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/view"
)

// ctxSession extracts the session injected by the session middleware.
// Returns nil on public routes where no session was resolved; handlers on
// protected routes can rely on the middleware having rejected first, and the
// services re-check regardless.
func ctxSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(middleware.SessionKey).(*domain.Session)
	return sess
}

// ctxFilters reads the shared list controls from the query string.
func ctxFilters(c echo.Context) view.Filters {
	return view.Filters{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Sort:     view.SortKey(c.QueryParam("sort")),
	}
}
