// data.go provides typed context helpers for passing layout data from
// middleware to templ components. Only simple types are stored, so the
// layouts package never imports plugin types.
//
// Data flow: Middleware → Echo Context → LayoutInjector → Go Context → templ
package layouts

import "context"

// ctxKey is a private type for context keys to prevent collisions.
type ctxKey string

const (
	keyCSRFToken  ctxKey = "layout_csrf_token"
	keyActivePath ctxKey = "layout_active_path"
	keySignedIn   ctxKey = "layout_signed_in"
)

// SetCSRFToken stores the CSRF token forms and fetch calls must echo back.
func SetCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, keyCSRFToken, token)
}

// GetCSRFToken returns the CSRF token, or "" if none was injected.
func GetCSRFToken(ctx context.Context) string {
	if v, ok := ctx.Value(keyCSRFToken).(string); ok {
		return v
	}
	return ""
}

// SetActivePath stores the request path so the nav can highlight it.
func SetActivePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, keyActivePath, path)
}

// GetActivePath returns the request path, or "".
func GetActivePath(ctx context.Context) string {
	if v, ok := ctx.Value(keyActivePath).(string); ok {
		return v
	}
	return ""
}

// SetSignedIn records whether the browser carries a backend token.
func SetSignedIn(ctx context.Context, signedIn bool) context.Context {
	return context.WithValue(ctx, keySignedIn, signedIn)
}

// IsSignedIn reports whether the browser carries a backend token.
func IsSignedIn(ctx context.Context) bool {
	v, _ := ctx.Value(keySignedIn).(bool)
	return v
}
