package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestIPExtractor_UntrustedPeerIgnoresHeaders(t *testing.T) {
	extract := buildIPExtractor([]string{"10.0.0.0/8"})
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "203.0.113.5:1234"
	req.Header.Set("X-Forwarded-For", "1.2.3.4")

	if got := extract(req); got != "203.0.113.5" {
		t.Errorf("expected direct IP, got %q", got)
	}
}

func TestIPExtractor_TrustedPeerUsesForwardedFor(t *testing.T) {
	extract := buildIPExtractor([]string{"10.0.0.0/8", "not-a-cidr"})
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.1.2.3:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.1.2.3")

	if got := extract(req); got != "198.51.100.7" {
		t.Errorf("expected leftmost forwarded IP, got %q", got)
	}
}

func TestIPExtractor_TrustedPeerPrefersRealIP(t *testing.T) {
	extract := buildIPExtractor([]string{"127.0.0.0/8"})
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	req.Header.Set("X-Real-IP", " 198.51.100.9 ")
	req.Header.Set("X-Forwarded-For", "198.51.100.7")

	if got := extract(req); got != "198.51.100.9" {
		t.Errorf("expected X-Real-IP, got %q", got)
	}
}
