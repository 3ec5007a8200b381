package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// csrfTokenLength is the number of random bytes in a token (64 hex chars).
	csrfTokenLength = 32

	// CSRFCookieName is the cookie holding the CSRF token. It is readable by
	// page scripts, which echo it back in csrfHeaderName.
	CSRFCookieName = "teamcal_csrf"

	csrfHeaderName = "X-CSRF-Token"
	csrfFormField  = "csrf_token"
	csrfContextKey = "csrf_token"
)

// CSRF implements the double-submit cookie pattern. Every response ensures
// a token cookie exists; every POST/PUT/PATCH/DELETE must repeat the cookie
// value in the X-CSRF-Token header or the csrf_token form field.
//
// The JSON API and the form relay are both called from our own pages with
// cookies attached, so unlike a bearer-token API they are not exempt.
func CSRF() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			cookieToken := ""
			if cookie, err := req.Cookie(CSRFCookieName); err == nil {
				cookieToken = cookie.Value
			}

			if cookieToken == "" {
				token, err := generateCSRFToken()
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate CSRF token")
				}
				c.SetCookie(&http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false,
					Secure:   req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https",
					SameSite: http.SameSiteLaxMode,
				})
				cookieToken = token
			}
			c.Set(csrfContextKey, cookieToken)

			if isSafeMethod(req.Method) {
				return next(c)
			}

			submitted := req.Header.Get(csrfHeaderName)
			if submitted == "" {
				submitted = req.FormValue(csrfFormField)
			}

			if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(cookieToken)) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or missing CSRF token")
			}

			return next(c)
		}
	}
}

// isSafeMethod returns true for HTTP methods that should not change state.
func isSafeMethod(method string) bool {
	return method == http.MethodGet ||
		method == http.MethodHead ||
		method == http.MethodOptions
}

// generateCSRFToken generates a cryptographically random hex-encoded token.
func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GetCSRFToken returns the request's CSRF token, set by the CSRF middleware.
func GetCSRFToken(c echo.Context) string {
	if token, ok := c.Get(csrfContextKey).(string); ok {
		return token
	}
	return ""
}
