package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/teamcal/internal/backend"
	"github.com/keyxmakerx/teamcal/internal/middleware"
	"github.com/keyxmakerx/teamcal/internal/plugins/account"
	"github.com/keyxmakerx/teamcal/internal/plugins/calendar"
	"github.com/keyxmakerx/teamcal/internal/templates/layouts"
	"github.com/keyxmakerx/teamcal/internal/templates/pages"
)

// healthTimeout bounds each dependency ping in /healthz.
const healthTimeout = 2 * time.Second

// RegisterRoutes sets up all application routes. This is the single place
// where plugins are constructed and their routes registered.
func (a *App) RegisterRoutes() {
	e := a.Echo

	middleware.LayoutInjector = injectLayout

	// --- Public pages ---
	e.GET("/", func(c echo.Context) error {
		return middleware.Render(c, http.StatusOK, pages.Landing())
	})
	e.GET("/healthz", a.healthz)

	// --- Calendar plugin ---
	priorityRepo := calendar.NewPriorityRepository(a.DB)
	selections := calendar.NewRedisSelectionStore(a.Redis, a.Config.Selection.TTL)
	calendarHandler := calendar.NewHandler(calendar.NewPriorityService(priorityRepo, selections))
	calendar.RegisterRoutes(e, calendarHandler)

	// --- Form relay to the org/team backend ---
	accountHandler := account.NewHandler(account.NewAccountService(a.Backend))
	account.RegisterRoutes(e, accountHandler, a.Config.Forms.RateLimit, a.Config.Forms.RateWindow)
}

// injectLayout copies per-request layout data into the templ context.
func injectLayout(c echo.Context, ctx context.Context) context.Context {
	ctx = layouts.SetCSRFToken(ctx, middleware.GetCSRFToken(c))
	ctx = layouts.SetActivePath(ctx, c.Request().URL.Path)
	if cookie, err := c.Cookie(backend.TokenCookie); err == nil && cookie.Value != "" {
		ctx = layouts.SetSignedIn(ctx, true)
	}
	return ctx
}

// healthz reports whether MariaDB and Redis answer.
// GET /healthz
func (a *App) healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := a.DB.PingContext(ctx); err != nil {
		status["database"] = err.Error()
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := a.Redis.Ping(ctx).Err(); err != nil {
		status["redis"] = err.Error()
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}
