// Package app is the application bootstrap and dependency injection root.
// It creates and holds all shared infrastructure (DB pool, Redis client,
// backend client, Echo instance) and wires the plugins together.
package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/keyxmakerx/teamcal/internal/apperror"
	"github.com/keyxmakerx/teamcal/internal/backend"
	"github.com/keyxmakerx/teamcal/internal/config"
	"github.com/keyxmakerx/teamcal/internal/middleware"
	"github.com/keyxmakerx/teamcal/internal/templates/pages"
)

// App holds all shared dependencies and the Echo HTTP server instance.
// Created once at startup in main.go and used to register all routes.
type App struct {
	// Config holds the loaded application configuration.
	Config *config.Config

	// DB is the MariaDB connection pool holding the priority palette.
	DB *sql.DB

	// Redis stores the per-session priority selections.
	Redis *redis.Client

	// Backend is the client for the org/team API the forms relay to.
	Backend *backend.Client

	// Echo is the HTTP server instance.
	Echo *echo.Echo
}

// New creates a new App instance with the given dependencies and configures
// the Echo server with global middleware and error handling.
func New(cfg *config.Config, db *sql.DB, rdb *redis.Client) (*App, error) {
	bc, err := backend.New(cfg.Backend.URL, cfg.Backend.Timeout)
	if err != nil {
		return nil, fmt.Errorf("creating backend client: %w", err)
	}

	e := echo.New()

	// Disable Echo's default banner and startup message -- we log our own.
	e.HideBanner = true
	e.HidePort = true

	// Trust private ranges so c.RealIP() sees the real client behind a
	// reverse proxy. The form rate limits key on it.
	middleware.TrustedProxies(e, []string{
		"127.0.0.0/8",
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"fd00::/8",
	})

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Backend: bc,
		Echo:    e,
	}

	app.setupMiddleware()
	e.HTTPErrorHandler = app.errorHandler

	// Serve static files (form scripts, calendar glue, priority icons).
	e.Static("/static", "static")

	return app, nil
}

// setupMiddleware registers global middleware on the Echo instance.
// Order matters: outermost (recovery) runs first, innermost (CSRF) runs last.
func (a *App) setupMiddleware() {
	a.Echo.Use(middleware.Recovery())
	a.Echo.Use(middleware.RequestLogger())
	a.Echo.Use(middleware.SecurityHeaders())
	a.Echo.Use(middleware.CSRF())
}

// errorResponse is the JSON error body. Fields lists the form inputs the
// page should mark aria-invalid.
type errorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// errorHandler is the custom Echo error handler. It maps domain errors
// (AppError) to HTTP responses: JSON for the API and the form relay, an
// error page for browser requests.
//
// For HTMX partial requests we set HX-Retarget and HX-Reswap so the error
// page replaces the full body instead of landing in the toolbar.
func (a *App) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "An unexpected error occurred"
	var fields []string

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
		fields = appErr.Fields

		if appErr.Internal != nil {
			slog.Error("internal error",
				slog.String("type", appErr.Type),
				slog.String("message", appErr.Message),
				slog.Any("internal", appErr.Internal),
				slog.String("path", c.Request().URL.Path),
			)
		}
	} else {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			code = echoErr.Code
			if msg, ok := echoErr.Message.(string); ok {
				message = msg
			} else {
				message = defaultErrorMessage(code)
			}
		} else {
			slog.Error("unhandled error",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}
	}

	if isJSONRequest(c) {
		_ = c.JSON(code, errorResponse{
			Error:   http.StatusText(code),
			Message: message,
			Fields:  fields,
		})
		return
	}

	if middleware.IsHTMX(c) {
		c.Response().Header().Set("HX-Retarget", "body")
		c.Response().Header().Set("HX-Reswap", "innerHTML")
	}

	_ = middleware.Render(c, code, pages.ErrorPage(code, message))
}

// defaultErrorMessage returns a user-friendly message for common HTTP status
// codes when no specific message was provided by the error.
func defaultErrorMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "The request was invalid or cannot be processed."
	case http.StatusUnauthorized:
		return "Please sign in first."
	case http.StatusForbidden:
		return "You don't have permission to do that."
	case http.StatusNotFound:
		return "The page you're looking for doesn't exist or has been moved."
	case http.StatusMethodNotAllowed:
		return "This action is not allowed."
	case http.StatusUnprocessableEntity:
		return "The submitted data could not be processed."
	case http.StatusTooManyRequests:
		return "You're making too many requests. Please slow down."
	case http.StatusBadGateway:
		return "The backend could not be reached. Please try again."
	case http.StatusServiceUnavailable:
		return "The service is temporarily unavailable. Please try again later."
	default:
		return "An unexpected error occurred."
	}
}

// isJSONRequest reports whether the request targets the JSON API or the
// form relay, both of which are called by scripts expecting JSON.
func isJSONRequest(c echo.Context) bool {
	p := c.Request().URL.Path
	return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/forms/")
}

// Start begins listening for HTTP requests on the configured port.
func (a *App) Start() error {
	addr := fmt.Sprintf(":%d", a.Config.Port)
	slog.Info("starting teamcal server",
		slog.String("addr", addr),
		slog.String("env", a.Config.Env),
	)
	return a.Echo.Start(addr)
}
