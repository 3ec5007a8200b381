// Package backend is the HTTP client for the organization and team API that
// owns users, sessions, orgs and teams. Every call takes a context and sends
// a JSON body; authenticated calls forward the session token as the "token"
// cookie, the way the browser would.
package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// TokenCookie is the cookie name the backend reads the session token from.
const TokenCookie = "token"

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	base *url.URL
	http *http.Client
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend url must be http or https, got %q", baseURL)
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// --- Request and response bodies ---

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type orgRequest struct {
	Name string `json:"name"`
}

type teamRequest struct {
	TeamName string `json:"team_name"`
}

// teamResponse accepts team_id as either a JSON number or string.
type teamResponse struct {
	TeamID json.RawMessage `json:"team_id"`
}

// --- Operations ---

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	if err := c.post(ctx, "/login", "", credentials{username, password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return resp.Token, nil
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	return c.post(ctx, "/signup", "", credentials{username, password}, nil)
}

// Logout ends the session identified by token.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/logout", token, nil, nil)
}

// CreateOrg creates an organization and returns the backend's response
// unchanged.
func (c *Client) CreateOrg(ctx context.Context, token, name string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "/org-creation", token, orgRequest{Name: name}, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// CreateTeam creates a team in orgID and returns the new team's ID.
func (c *Client) CreateTeam(ctx context.Context, token, orgID, teamName string) (string, error) {
	var resp teamResponse
	p := "/org/" + url.PathEscape(orgID) + "/team-creation"
	if err := c.post(ctx, p, token, teamRequest{TeamName: teamName}, &resp); err != nil {
		return "", err
	}
	id := strings.Trim(string(resp.TeamID), `"`)
	if id == "" || id == "null" {
		return "", fmt.Errorf("team creation response carried no team_id")
	}
	return id, nil
}

// JoinTeam adds the session's user to a team.
func (c *Client) JoinTeam(ctx context.Context, token, orgID, teamID string) error {
	return c.post(ctx, teamPath(orgID, teamID, "join-team"), token, nil, nil)
}

// LeaveTeam removes the session's user from a team.
func (c *Client) LeaveTeam(ctx context.Context, token, orgID, teamID string) error {
	return c.post(ctx, teamPath(orgID, teamID, "leave-team"), token, nil, nil)
}

func teamPath(orgID, teamID, action string) string {
	return "/org/" + url.PathEscape(orgID) + "/team/" + url.PathEscape(teamID) + "/" + action
}

// post sends body as JSON to path and decodes a 2xx response into out when
// out is non-nil. Non-2xx responses become *StatusError.
func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	var payload io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base.String()+path, payload)
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
