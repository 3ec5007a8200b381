package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// newTestHandler wires a handler over the built-in palette and an in-memory
// selection store.
func newTestHandler() (*Handler, *memSelectionStore) {
	store := newMemSelectionStore()
	return NewHandler(NewPriorityService(&mockPriorityRepo{}, store)), store
}

func newContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestContrastAPI(t *testing.T) {
	h, _ := newTestHandler()
	c, rec := newContext(http.MethodGet, "/api/v1/contrast?color="+url.QueryEscape("#cc343e"), "")

	if err := h.ContrastAPI(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp ContrastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Color != "#e8e9e9" || resp.Background != "#cc343e" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestContrastAPI_Malformed(t *testing.T) {
	h, _ := newTestHandler()
	c, _ := newContext(http.MethodGet, "/api/v1/contrast?color=red", "")

	assertAppError(t, h.ContrastAPI(c), http.StatusUnprocessableEntity)
}

func TestEventStyleAPI(t *testing.T) {
	h, _ := newTestHandler()
	c, rec := newContext(http.MethodGet, "/api/v1/priorities/notime/style?start=2024-03-09T10:00:00", "")
	c.SetParamNames("pid")
	c.SetParamValues(PriorityNoTime)

	if err := h.EventStyleAPI(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var style EventStyle
	if err := json.Unmarshal(rec.Body.Bytes(), &style); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if style.Background != "#cc343e" || style.Text != "#e8e9e9" || style.Date != "09.03.2024" {
		t.Errorf("unexpected style: %+v", style)
	}
}

func TestEventStyleAPI_BadDate(t *testing.T) {
	h, _ := newTestHandler()
	c, _ := newContext(http.MethodGet, "/api/v1/priorities/notime/style?start=yesterday", "")
	c.SetParamNames("pid")
	c.SetParamValues(PriorityNoTime)

	appErr := assertAppError(t, h.EventStyleAPI(c), http.StatusUnprocessableEntity)
	if len(appErr.Fields) != 1 || appErr.Fields[0] != "start" {
		t.Errorf("expected start flagged, got %v", appErr.Fields)
	}
}

func TestUpdateSelectionAPI_UsesTokenCookie(t *testing.T) {
	h, store := newTestHandler()
	c, rec := newContext(http.MethodPut, "/api/v1/selection", `{"priority":"certain"}`)
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.Request().AddCookie(&http.Cookie{Name: TokenCookieName, Value: "backend-token"})

	if err := h.UpdateSelectionAPI(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if store.data["backend-token"].PriorityID != PriorityCertain {
		t.Errorf("selection not stored under token: %+v", store.data)
	}
}

func TestUpdateSelectionAPI_NoSession(t *testing.T) {
	h, _ := newTestHandler()
	c, _ := newContext(http.MethodPut, "/api/v1/selection", `{"priority":"certain"}`)
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	assertAppError(t, h.UpdateSelectionAPI(c), http.StatusUnauthorized)
}

func TestGetSelectionAPI_Default(t *testing.T) {
	h, _ := newTestHandler()
	c, rec := newContext(http.MethodGet, "/api/v1/selection", "")
	c.Set("csrf_token", "browser-1")

	if err := h.GetSelectionAPI(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sel Selection
	if err := json.Unmarshal(rec.Body.Bytes(), &sel); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sel != DefaultSelection() {
		t.Errorf("expected default selection, got %+v", sel)
	}
}

func TestSelectPriority_HTMXReturnsToolbar(t *testing.T) {
	h, store := newTestHandler()
	c, rec := newContext(http.MethodPost, "/calendar/priority", "priority=notime")
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c.Request().Header.Set("HX-Request", "true")
	c.Set("csrf_token", "browser-1")

	if err := h.SelectPriority(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.data["browser-1"].PriorityID != PriorityNoTime {
		t.Errorf("selection not stored under CSRF key")
	}
	if !strings.Contains(rec.Body.String(), `class="notime event-priority-button outline pressed"`) {
		t.Errorf("returned toolbar should mark notime pressed:\n%s", rec.Body.String())
	}
}

func TestSelectPriority_PlainPostRedirects(t *testing.T) {
	h, _ := newTestHandler()
	c, rec := newContext(http.MethodPost, "/calendar/priority", "priority=certain")
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c.Set("csrf_token", "browser-1")

	if err := h.SelectPriority(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/calendar" {
		t.Errorf("expected 303 to /calendar, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestListPrioritiesAPI(t *testing.T) {
	h, _ := newTestHandler()
	c, rec := newContext(http.MethodGet, "/api/v1/priorities", "")

	if err := h.ListPrioritiesAPI(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []Priority
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 4 || got[0].ID != PriorityStandard {
		t.Errorf("unexpected palette: %+v", got)
	}
}
