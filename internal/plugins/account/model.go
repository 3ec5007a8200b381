// Package account relays the sign-in, sign-up and org/team forms to the
// backend. Each endpoint answers with a FormResult telling the page where to
// go next, or with an error naming the inputs to mark invalid.
package account

import (
	"context"

	"github.com/goccy/go-json"
)

// Backend is the subset of the backend client the relay needs.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Signup(ctx context.Context, username, password string) error
	Logout(ctx context.Context, token string) error
	CreateOrg(ctx context.Context, token, name string) (json.RawMessage, error)
	CreateTeam(ctx context.Context, token, orgID, teamName string) (string, error)
	JoinTeam(ctx context.Context, token, orgID, teamID string) error
	LeaveTeam(ctx context.Context, token, orgID, teamID string) error
}

// FormResult is what a successful form submission returns to the page.
type FormResult struct {
	// Redirect is where the browser should navigate.
	Redirect string `json:"redirect,omitempty"`

	// Reload asks the page to reload itself.
	Reload bool `json:"reload,omitempty"`

	// Token is the new session token after a login. The page stores it in
	// the "token" cookie.
	Token string `json:"token,omitempty"`

	// Data is the backend response, passed through unchanged.
	Data json.RawMessage `json:"data,omitempty"`
}

// Input names, matching the form element ids.
const (
	fieldUsername  = "username"
	fieldPassword  = "password"
	fieldPassword1 = "password1"
	fieldPassword2 = "password2"
	fieldOrgName   = "org-name"
	fieldTeamName  = "team-name"
)

// --- Request DTOs ---

// LoginRequest is the login form.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Next     string `json:"next" form:"next" query:"next"`
}

// SignupRequest is the signup form. Password2 is the confirmation field.
type SignupRequest struct {
	Username  string `json:"username" form:"username"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

// OrgRequest is the org creation form.
type OrgRequest struct {
	Name string `json:"name" form:"name"`
}

// TeamRequest is the team creation form.
type TeamRequest struct {
	TeamName string `json:"team_name" form:"team_name"`
}
