package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/teamcal/internal/apperror"
	"github.com/keyxmakerx/teamcal/internal/backend"
)

// Handler serves the /forms endpoints. Handlers only bind and delegate.
type Handler struct {
	service AccountService
}

// NewHandler creates a new account handler.
func NewHandler(service AccountService) *Handler {
	return &Handler{service: service}
}

// sessionToken returns the backend token the page stored after login.
func sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(backend.TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func respond(c echo.Context, res FormResult, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Login handles POST /forms/login.
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}
	if req.Next == "" {
		req.Next = c.QueryParam("next")
	}
	res, err := h.service.Login(c.Request().Context(), req)
	return respond(c, res, err)
}

// Signup handles POST /forms/signup.
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}
	res, err := h.service.Signup(c.Request().Context(), req)
	return respond(c, res, err)
}

// Logout handles POST /forms/logout.
func (h *Handler) Logout(c echo.Context) error {
	res, err := h.service.Logout(c.Request().Context(), sessionToken(c))
	return respond(c, res, err)
}

// CreateOrg handles POST /forms/org-creation.
func (h *Handler) CreateOrg(c echo.Context) error {
	var req OrgRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}
	res, err := h.service.CreateOrg(c.Request().Context(), sessionToken(c), req)
	return respond(c, res, err)
}

// CreateTeam handles POST /forms/org/:org/team-creation.
func (h *Handler) CreateTeam(c echo.Context) error {
	var req TeamRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}
	res, err := h.service.CreateTeam(c.Request().Context(), sessionToken(c), c.Param("org"), req)
	return respond(c, res, err)
}

// JoinTeam handles POST /forms/org/:org/team/:team/join-team.
func (h *Handler) JoinTeam(c echo.Context) error {
	res, err := h.service.JoinTeam(c.Request().Context(), sessionToken(c), c.Param("org"), c.Param("team"))
	return respond(c, res, err)
}

// LeaveTeam handles POST /forms/org/:org/team/:team/leave-team.
func (h *Handler) LeaveTeam(c echo.Context) error {
	res, err := h.service.LeaveTeam(c.Request().Context(), sessionToken(c), c.Param("org"), c.Param("team"))
	return respond(c, res, err)
}
