package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func runCSRF(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	called := false
	err := CSRF()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(e.NewContext(req, rec))
	return rec, called, err
}

func TestCSRF_GetIssuesCookie(t *testing.T) {
	rec, called, err := runCSRF(t, httptest.NewRequest(http.MethodGet, "/calendar", nil))
	if err != nil || !called {
		t.Fatalf("GET should pass, err=%v called=%v", err, called)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), CSRFCookieName+"=") {
		t.Errorf("expected CSRF cookie to be set, got %q", rec.Header().Get("Set-Cookie"))
	}
}

func TestCSRF_PostWithoutToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/forms/login", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "abc"})

	_, called, err := runCSRF(t, req)
	if called {
		t.Error("handler should not run without a token")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestCSRF_PostWithMatchingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/selection", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "abc"})
	req.Header.Set("X-CSRF-Token", "abc")

	_, called, err := runCSRF(t, req)
	if err != nil || !called {
		t.Errorf("matching token should pass, err=%v called=%v", err, called)
	}
}

func TestCSRF_PostWithMismatchedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/forms/signup", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "abc"})
	req.Header.Set("X-CSRF-Token", "abd")

	_, called, err := runCSRF(t, req)
	if called || err == nil {
		t.Error("mismatched token should be rejected")
	}
}
