package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/teamcal/internal/apperror"
)

// Recovery returns middleware that turns a panicking handler into a logged
// 500 instead of a dead server.
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered",
						slog.Any("panic", r),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", c.Request().Method),
						slog.String("path", c.Request().URL.Path),
					)
					returnErr = apperror.NewInternal(fmt.Errorf("panic: %v", r))
				}
			}()

			return next(c)
		}
	}
}
