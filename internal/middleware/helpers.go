package middleware

import (
	"context"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// LayoutInjector copies layout data (CSRF token, active path, signed-in
// flag) from the Echo context into the Go context templ components read
// from. Set once at startup in app/routes.go so this package never imports
// the layouts package's callers.
var LayoutInjector func(echo.Context, context.Context) context.Context

// IsHTMX returns true if the request asks for an HTML fragment (HX-Request)
// and is not a boosted navigation. Toolbar clicks send it to get the
// re-rendered toolbar instead of a redirect.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true" &&
		c.Request().Header.Get("HX-Boosted") != "true"
}

// Render writes a templ component with the given status code after running
// the LayoutInjector.
func Render(c echo.Context, statusCode int, component templ.Component) error {
	ctx := c.Request().Context()

	if LayoutInjector != nil {
		ctx = LayoutInjector(c, ctx)
	}

	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Response().WriteHeader(statusCode)
	return component.Render(ctx, c.Response().Writer)
}
