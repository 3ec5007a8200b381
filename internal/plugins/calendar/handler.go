package calendar

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/teamcal/internal/apperror"
	"github.com/keyxmakerx/teamcal/internal/middleware"
)

// TokenCookieName is the cookie the login form stores the backend session
// token in.
const TokenCookieName = "token"

// Handler processes HTTP requests for the calendar plugin.
type Handler struct {
	svc PriorityService
}

// NewHandler creates a new calendar Handler.
func NewHandler(svc PriorityService) *Handler {
	return &Handler{svc: svc}
}

// sessionKey identifies the browser a selection belongs to: the backend
// token when signed in, otherwise the CSRF cookie every browser gets.
func sessionKey(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return middleware.GetCSRFToken(c)
}

// toolbarData loads the palette and the session's selection.
func (h *Handler) toolbarData(c echo.Context) (ToolbarData, error) {
	ctx := c.Request().Context()

	priorities, err := h.svc.ListPriorities(ctx)
	if err != nil {
		return ToolbarData{}, err
	}
	sel, err := h.svc.CurrentSelection(ctx, sessionKey(c))
	if err != nil {
		return ToolbarData{}, err
	}
	return ToolbarData{Priorities: priorities, Selected: sel}, nil
}

// Show renders the calendar page.
// GET /calendar
func (h *Handler) Show(c echo.Context) error {
	data, err := h.toolbarData(c)
	if err != nil {
		return err
	}
	return middleware.Render(c, http.StatusOK, CalendarPage(data))
}

// Toolbar renders only the priority toolbar.
// GET /calendar/toolbar
func (h *Handler) Toolbar(c echo.Context) error {
	data, err := h.toolbarData(c)
	if err != nil {
		return err
	}
	return middleware.Render(c, http.StatusOK, PriorityToolbar(data))
}

// SelectPriority handles a toolbar button click. HTMX gets the re-rendered
// toolbar; a plain form post is redirected back to the calendar.
// POST /calendar/priority
func (h *Handler) SelectPriority(c echo.Context) error {
	var req SelectRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	ctx := c.Request().Context()
	sel, err := h.svc.SelectPriority(ctx, sessionKey(c), req.PriorityID)
	if err != nil {
		return err
	}

	if !middleware.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/calendar")
	}

	priorities, err := h.svc.ListPriorities(ctx)
	if err != nil {
		return err
	}
	return middleware.Render(c, http.StatusOK, PriorityToolbar(ToolbarData{
		Priorities: priorities,
		Selected:   sel,
	}))
}

// --- JSON API ---

// ListPrioritiesAPI returns the palette.
// GET /api/v1/priorities
func (h *Handler) ListPrioritiesAPI(c echo.Context) error {
	priorities, err := h.svc.ListPriorities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, priorities)
}

// GetPriorityAPI returns one priority.
// GET /api/v1/priorities/:pid
func (h *Handler) GetPriorityAPI(c echo.Context) error {
	p, err := h.svc.GetPriority(c.Request().Context(), c.Param("pid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// EventStyleAPI returns the colors an event of this priority is drawn with,
// plus its start date formatted for the event tooltip when ?start= is given.
// GET /api/v1/priorities/:pid/style
func (h *Handler) EventStyleAPI(c echo.Context) error {
	colors, err := h.svc.EventColors(c.Request().Context(), c.Param("pid"))
	if err != nil {
		return err
	}

	style := EventStyle{EventColors: colors}
	if start := c.QueryParam("start"); start != "" {
		date, err := FormatDateDDMMYYYY(start)
		if err != nil {
			return apperror.NewValidation("start must be a YYYY-MM-DD date").WithFields("start")
		}
		style.Date = date
	}
	return c.JSON(http.StatusOK, style)
}

// ContrastAPI resolves the text color for an arbitrary background.
// GET /api/v1/contrast?color=%23RRGGBB
func (h *Handler) ContrastAPI(c echo.Context) error {
	bg := c.QueryParam("color")
	color, err := h.svc.ResolveContrast(bg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ContrastResponse{Background: bg, Color: color})
}

// GetSelectionAPI returns the session's current selection.
// GET /api/v1/selection
func (h *Handler) GetSelectionAPI(c echo.Context) error {
	sel, err := h.svc.CurrentSelection(c.Request().Context(), sessionKey(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sel)
}

// UpdateSelectionAPI changes the session's selection.
// PUT /api/v1/selection
func (h *Handler) UpdateSelectionAPI(c echo.Context) error {
	var req SelectRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	sel, err := h.svc.SelectPriority(c.Request().Context(), sessionKey(c), req.PriorityID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sel)
}
