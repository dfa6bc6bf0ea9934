package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/pinmoji/pkg/ctxutil"
)

// idleTTL is how long an unused limiter is kept.
const idleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per route group and client. Clients
// are keyed by the signed-in uid, or by host for anonymous requests.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client

	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	return newRateLimiter(cleanupInterval, time.Now)
}

func newRateLimiter(cleanupInterval time.Duration, now func() time.Time) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		now:     now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows a burst of maxPerMinute requests per
// client, refilled evenly over a minute. name separates route groups that
// share one limiter. A non-positive maxPerMinute disables limiting.
func (rl *RateLimiter) Limit(name string, maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		interval := time.Minute / time.Duration(maxPerMinute)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			lim := rl.limiter(name+"|"+clientKey(r), interval, maxPerMinute, now)

			if !lim.AllowN(now, 1) {
				wait := time.Duration((1 - lim.TokensAt(now)) * float64(interval))
				w.Header().Set("Retry-After", strconv.Itoa(ceilSeconds(wait)))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(key string, interval time.Duration, burst int, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(rate.Every(interval), burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.lim
}

func clientKey(r *http.Request) string {
	if uid, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "uid:" + uid
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func ceilSeconds(d time.Duration) int {
	return max(1, int((d+time.Second-1)/time.Second))
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleTTL {
			delete(rl.clients, key)
		}
	}
}
