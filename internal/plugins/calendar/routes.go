package calendar

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the calendar page and the priority API.
// Nothing here requires a signed-in user: selections are keyed per browser.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/calendar", h.Show)
	e.GET("/calendar/toolbar", h.Toolbar)
	e.POST("/calendar/priority", h.SelectPriority)

	api := e.Group("/api/v1")
	api.GET("/priorities", h.ListPrioritiesAPI)
	api.GET("/priorities/:pid", h.GetPriorityAPI)
	api.GET("/priorities/:pid/style", h.EventStyleAPI)
	api.GET("/contrast", h.ContrastAPI)
	api.GET("/selection", h.GetSelectionAPI)
	api.PUT("/selection", h.UpdateSelectionAPI)
}
