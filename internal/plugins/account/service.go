package account

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/keyxmakerx/teamcal/internal/apperror"
	"github.com/keyxmakerx/teamcal/internal/backend"
	"github.com/keyxmakerx/teamcal/internal/sanitize"
)

const (
	homePath  = "/home"
	loginPath = "/login"
)

// AccountService turns form submissions into backend calls.
type AccountService interface {
	Login(ctx context.Context, req LoginRequest) (FormResult, error)
	Signup(ctx context.Context, req SignupRequest) (FormResult, error)
	Logout(ctx context.Context, token string) (FormResult, error)
	CreateOrg(ctx context.Context, token string, req OrgRequest) (FormResult, error)
	CreateTeam(ctx context.Context, token, orgID string, req TeamRequest) (FormResult, error)
	JoinTeam(ctx context.Context, token, orgID, teamID string) (FormResult, error)
	LeaveTeam(ctx context.Context, token, orgID, teamID string) (FormResult, error)
}

type accountService struct {
	backend Backend
}

// NewAccountService creates an AccountService that relays to b.
func NewAccountService(b Backend) AccountService {
	return &accountService{backend: b}
}

// Login signs in and sends the browser to next, or home.
func (s *accountService) Login(ctx context.Context, req LoginRequest) (FormResult, error) {
	if req.Username == "" || req.Password == "" {
		return FormResult{}, apperror.NewValidation("Username and password are required.").
			WithFields(fieldUsername, fieldPassword)
	}

	token, err := s.backend.Login(ctx, req.Username, req.Password)
	if err != nil {
		return FormResult{}, relayError(err, map[int][]string{
			http.StatusUnauthorized: {fieldUsername, fieldPassword},
		})
	}
	return FormResult{Redirect: safeNext(req.Next), Token: token}, nil
}

// Signup registers a user. Mismatched passwords never reach the backend.
func (s *accountService) Signup(ctx context.Context, req SignupRequest) (FormResult, error) {
	if req.Password1 != req.Password2 {
		return FormResult{}, apperror.NewValidation("Passwords do not match.").
			WithFields(fieldPassword1, fieldPassword2)
	}
	if req.Username == "" || req.Password1 == "" {
		return FormResult{}, apperror.NewValidation("Username and password are required.").
			WithFields(fieldUsername, fieldPassword1)
	}

	if err := s.backend.Signup(ctx, req.Username, req.Password1); err != nil {
		return FormResult{}, relayError(err, map[int][]string{
			http.StatusConflict: {fieldUsername},
		})
	}
	return FormResult{Redirect: loginPath}, nil
}

// Logout ends the session. Without a token there is nothing to end and the
// browser is sent straight to the login page.
func (s *accountService) Logout(ctx context.Context, token string) (FormResult, error) {
	if token != "" {
		if err := s.backend.Logout(ctx, token); err != nil {
			return FormResult{}, relayError(err, nil)
		}
	}
	return FormResult{Redirect: loginPath}, nil
}

// CreateOrg creates an organization and hands its JSON back to the page.
func (s *accountService) CreateOrg(ctx context.Context, token string, req OrgRequest) (FormResult, error) {
	if err := requireToken(token); err != nil {
		return FormResult{}, err
	}
	name := sanitize.Text(req.Name)
	if name == "" {
		return FormResult{}, apperror.NewValidation("Organization name is required.").WithFields(fieldOrgName)
	}

	data, err := s.backend.CreateOrg(ctx, token, name)
	if err != nil {
		return FormResult{}, relayError(err, map[int][]string{
			http.StatusConflict: {fieldOrgName},
		})
	}
	return FormResult{Data: data}, nil
}

// CreateTeam creates a team and sends the browser to its page.
func (s *accountService) CreateTeam(ctx context.Context, token, orgID string, req TeamRequest) (FormResult, error) {
	if err := requireToken(token); err != nil {
		return FormResult{}, err
	}
	name := sanitize.Text(req.TeamName)
	if name == "" {
		return FormResult{}, apperror.NewValidation("Team name is required.").WithFields(fieldTeamName)
	}

	teamID, err := s.backend.CreateTeam(ctx, token, orgID, name)
	if err != nil {
		return FormResult{}, relayError(err, map[int][]string{
			http.StatusConflict: {fieldTeamName},
		})
	}
	return FormResult{
		Redirect: "/org/" + url.PathEscape(orgID) + "/team/" + url.PathEscape(teamID),
	}, nil
}

// JoinTeam joins a team and asks the page to reload.
func (s *accountService) JoinTeam(ctx context.Context, token, orgID, teamID string) (FormResult, error) {
	if err := requireToken(token); err != nil {
		return FormResult{}, err
	}
	if err := s.backend.JoinTeam(ctx, token, orgID, teamID); err != nil {
		return FormResult{}, relayError(err, nil)
	}
	return FormResult{Reload: true}, nil
}

// LeaveTeam leaves a team and asks the page to reload.
func (s *accountService) LeaveTeam(ctx context.Context, token, orgID, teamID string) (FormResult, error) {
	if err := requireToken(token); err != nil {
		return FormResult{}, err
	}
	if err := s.backend.LeaveTeam(ctx, token, orgID, teamID); err != nil {
		return FormResult{}, relayError(err, nil)
	}
	return FormResult{Reload: true}, nil
}

func requireToken(token string) error {
	if token == "" {
		return apperror.NewUnauthorized("Please sign in first.")
	}
	return nil
}

// relayError converts a backend failure into an AppError. A backend status is
// passed through with its body as the message, flagging the fields listed
// for that status. Anything else means the backend was unreachable.
func relayError(err error, fields map[int][]string) error {
	se, ok := backend.AsStatusError(err)
	if !ok {
		slog.Warn("backend call failed", slog.Any("error", err))
		return apperror.NewBadGateway(err)
	}

	appErr := apperror.NewStatus(se.Code, se.Message())
	if f := fields[se.Code]; len(f) > 0 {
		appErr = appErr.WithFields(f...)
	}
	return appErr
}

// safeNext returns next if it is a path on this site, otherwise the home
// page. Absolute and scheme-relative URLs are rejected.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") ||
		strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return homePath
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return homePath
	}
	return next
}
