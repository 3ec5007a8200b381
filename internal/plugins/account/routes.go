package account

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/teamcal/internal/middleware"
)

// RegisterRoutes sets up the form relay under /forms. Login and signup are
// rate-limited per client IP, each with its own bucket.
func RegisterRoutes(e *echo.Echo, h *Handler, limit int, window time.Duration) {
	g := e.Group("/forms")

	g.POST("/login", h.Login, middleware.RateLimit(limit, window))
	g.POST("/signup", h.Signup, middleware.RateLimit(limit, window))
	g.POST("/logout", h.Logout)

	g.POST("/org-creation", h.CreateOrg)
	g.POST("/org/:org/team-creation", h.CreateTeam)
	g.POST("/org/:org/team/:team/join-team", h.JoinTeam)
	g.POST("/org/:org/team/:team/leave-team", h.LeaveTeam)
}
