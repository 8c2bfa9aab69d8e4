package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter caps the number of requests a single client IP may make within
// a fixed window. It guards the JSON API, which is the endpoint scripts poll.
type RateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*window
	limit       int
	period      time.Duration
	trustedNets []*net.IPNet
	now         func() time.Time
	stop        chan struct{}
	stopOnce    sync.Once
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter allows limit requests per period for each client IP.
// trustedProxies lists CIDRs (or bare IPs) of reverse proxies whose
// X-Forwarded-For header is believed; with none, RemoteAddr is used as is.
func NewRateLimiter(limit int, period time.Duration, trustedProxies ...string) *RateLimiter {
	rl := &RateLimiter{
		clients:     make(map[string]*window),
		limit:       limit,
		period:      period,
		trustedNets: parseCIDRs(trustedProxies),
		now:         time.Now,
		stop:        make(chan struct{}),
	}
	go rl.sweep(period * 2)
	return rl
}

// Stop ends the background sweep. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit wraps next, answering 429 once a client exceeds its budget.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := rl.take(rl.clientIP(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "Too many requests, please try again later", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// take records a request from ip. When the budget is spent it returns false
// and the number of whole seconds until the window resets.
func (rl *RateLimiter) take(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	win, ok := rl.clients[ip]
	if !ok || now.Sub(win.start) >= rl.period {
		rl.clients[ip] = &window{start: now, count: 1}
		return true, 0
	}

	win.count++
	if win.count <= rl.limit {
		return true, 0
	}
	remaining := rl.period - now.Sub(win.start)
	return false, int(math.Ceil(remaining.Seconds()))
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for ip, win := range rl.clients {
				if now.Sub(win.start) >= rl.period {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// clientIP returns the address to account the request against. Forwarding
// headers are only honoured when the direct peer is a trusted proxy.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !rl.trusted(remote) {
		return remote
	}

	// Rightmost untrusted hop is the real client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop != "" && !rl.trusted(hop) {
				return hop
			}
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return remote
}

func (rl *RateLimiter) trusted(addr string) bool {
	ip := net.ParseIP(strings.TrimSpace(addr))
	if ip == nil {
		return false
	}
	for _, n := range rl.trustedNets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// parseCIDRs accepts CIDRs or bare IPs; malformed entries are skipped.
func parseCIDRs(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, e := range entries {
		if !strings.Contains(e, "/") {
			if strings.Contains(e, ":") {
				e += "/128"
			} else {
				e += "/32"
			}
		}
		if _, n, err := net.ParseCIDR(e); err == nil {
			nets = append(nets, n)
		}
	}
	return nets
}
