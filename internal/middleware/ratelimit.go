package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// clientLimiter is one client's token bucket and when it was last used.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns middleware that allows each client IP maxRequests
// requests per window as a token bucket: a full burst up front, refilled
// evenly across the window. Excess requests get 429.
func RateLimit(maxRequests int, window time.Duration) echo.MiddlewareFunc {
	return newRateLimiter(maxRequests, window, time.Now).middleware()
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	every   rate.Limit
	burst   int
	window  time.Duration
	now     func() time.Time
	swept   time.Time
}

func newRateLimiter(maxRequests int, window time.Duration, now func() time.Time) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*clientLimiter),
		every:   rate.Every(window / time.Duration(maxRequests)),
		burst:   maxRequests,
		window:  window,
		now:     now,
		swept:   now(),
	}
}

// allow reports whether ip may make a request at the current time.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	// Idle buckets are full again; dropping them loses nothing.
	if now.Sub(rl.swept) > rl.window {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > rl.window*2 {
				delete(rl.clients, k)
			}
		}
		rl.swept = now
	}

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (rl *rateLimiter) middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"Too many attempts. Please wait a moment and try again.")
			}
			return next(c)
		}
	}
}
