package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// TrustedProxies makes c.RealIP() honor X-Real-IP and X-Forwarded-For, but
// only when the direct peer is inside one of trustedCIDRs. The form rate
// limiter keys on c.RealIP(), so without this every client behind the
// reverse proxy would share one bucket.
func TrustedProxies(e *echo.Echo, trustedCIDRs []string) {
	e.IPExtractor = buildIPExtractor(trustedCIDRs)
}

// buildIPExtractor returns an Echo IPExtractor that trusts forwarding
// headers only from connections originating in trusted CIDRs. Invalid CIDRs
// are skipped.
func buildIPExtractor(trustedCIDRs []string) echo.IPExtractor {
	var trusted []*net.IPNet
	for _, cidr := range trustedCIDRs {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		trusted = append(trusted, network)
	}

	return func(req *http.Request) string {
		directIP := extractDirectIP(req.RemoteAddr)
		if !isTrusted(directIP, trusted) {
			return directIP
		}

		if realIP := req.Header.Get("X-Real-IP"); realIP != "" {
			return strings.TrimSpace(realIP)
		}

		// Leftmost entry is the original client.
		if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		return directIP
	}
}

// extractDirectIP extracts the IP address from a "host:port" RemoteAddr string.
func extractDirectIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// isTrusted returns true if the given IP falls within any of the trusted CIDRs.
func isTrusted(ipStr string, trusted []*net.IPNet) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return false
	}
	for _, network := range trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
