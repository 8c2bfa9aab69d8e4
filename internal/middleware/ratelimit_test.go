package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(remote string) *http.Request {
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.RemoteAddr = remote
	return req
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	handler := rl.Limit(okHandler())

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, requestFrom("192.0.2.1:1234"))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestFrom("192.0.2.1:1234"))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	// A different client has its own budget.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, requestFrom("192.0.2.2:1234"))
	if rr.Code != http.StatusOK {
		t.Errorf("expected other client to get 200, got %d", rr.Code)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if ok, _ := rl.take("192.0.2.1"); !ok {
		t.Fatal("expected first request allowed")
	}
	now = now.Add(15 * time.Second)
	ok, retry := rl.take("192.0.2.1")
	if ok {
		t.Fatal("expected second request blocked")
	}
	if retry != 45 {
		t.Errorf("expected Retry-After 45, got %d", retry)
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.take("192.0.2.1"); !ok {
		t.Error("expected request allowed after window reset")
	}
}

func TestRateLimiter_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	req := requestFrom("198.51.100.7:5555")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if ip := rl.clientIP(req); ip != "198.51.100.7" {
		t.Errorf("expected RemoteAddr IP, got %q", ip)
	}
}

func TestRateLimiter_TrustedProxyUsesRightmostUntrustedHop(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, "10.0.0.0/8", "127.0.0.1")
	defer rl.Stop()

	req := requestFrom("10.1.2.3:5555")
	req.Header.Set("X-Forwarded-For", "203.0.113.1, 203.0.113.9, 10.0.0.5")
	if ip := rl.clientIP(req); ip != "203.0.113.9" {
		t.Errorf("expected 203.0.113.9, got %q", ip)
	}

	req = requestFrom("127.0.0.1:5555")
	req.Header.Set("X-Real-IP", "203.0.113.4")
	if ip := rl.clientIP(req); ip != "203.0.113.4" {
		t.Errorf("expected X-Real-IP 203.0.113.4, got %q", ip)
	}
}

func TestParseCIDRs_SkipsMalformed(t *testing.T) {
	nets := parseCIDRs([]string{"10.0.0.0/8", "not-an-ip", "::1"})
	if len(nets) != 2 {
		t.Errorf("expected 2 parsed networks, got %d", len(nets))
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	rl.Stop()
}
