package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestBucket_Burst(t *testing.T) {
	b := newBucket(10, 1.0) // 10 tokens, 1 token per second

	// The full burst goes through immediately
	for i := 0; i < 10; i++ {
		allowed, _, _ := b.take()
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request is denied (no tokens left)
	if allowed, remaining, _ := b.take(); allowed || remaining != 0 {
		t.Errorf("Expected 11th request denied with 0 remaining, got allowed=%v remaining=%d", allowed, remaining)
	}
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(10, 1.0) // 1 token per second

	// Consume all tokens
	for i := 0; i < 10; i++ {
		b.take()
	}

	// Wait for 1 token to refill
	time.Sleep(1100 * time.Millisecond)

	if allowed, _, _ := b.take(); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if allowed, _, _ := b.take(); allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestBucket_RemainingAndReset(t *testing.T) {
	b := newBucket(10, 1.0)

	var remaining int
	var resetTime time.Time
	for i := 0; i < 5; i++ {
		_, remaining, resetTime = b.take()
	}

	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if resetTime.Before(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/admin/drives"
	method := "GET"

	// Should allow requests up to limit
	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
		if rateInfo.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, rateInfo.Remaining)
		}
	}

	// 11th request should be denied
	allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", rateInfo.Remaining)
	}
	if rateInfo.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Whitelisted IP should always be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/chatbot/ask", "POST")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 for whitelisted, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Blacklisted IP should always be denied
	allowed, _ := limiter.Allow("192.168.1.1", "/market/roles", "GET")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	config := &Config{
		Enabled: false,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// When disabled, all requests should be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/auth/login", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_LoginEndpointTier(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"

	// Login burst capacity is 5
	for i := 0; i < 5; i++ {
		allowed, rateInfo := limiter.Allow(clientID, "/auth/login", "POST")
		if !allowed {
			t.Errorf("Expected login attempt %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
	}

	// 6th attempt should be denied (burst exhausted)
	allowed, rateInfo := limiter.Allow(clientID, "/auth/login", "POST")
	if allowed {
		t.Error("Expected 6th login attempt to be denied")
	}
	if rateInfo.Limit != 10 {
		t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
	}

	// A read endpoint should still use the default limit
	allowed, rateInfo = limiter.Allow(clientID, "/market/roles", "GET")
	if !allowed {
		t.Error("Expected read endpoint to be allowed")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/students/me/drives"
	method := "GET"

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	// Make 200 concurrent requests (should only allow 100)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow(clientID, endpoint, method)
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	// Should have allowed exactly 100 requests
	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 100 * time.Millisecond,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Create buckets for multiple clients
	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/admin/drives", "GET")
		if !allowed {
			t.Errorf("Expected request from %s to be allowed", clientID)
		}
	}

	// Wait for cleanup
	time.Sleep(150 * time.Millisecond)

	// Recently accessed buckets survive cleanup and keep working
	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/admin/drives", "GET")
		if !allowed {
			t.Errorf("Expected request from %s to still be allowed after cleanup", clientID)
		}
	}
}

func TestLimiter_DropStale(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	limiter.Allow("127.0.0.1", "/admin/drives", "GET")
	limiter.Allow("127.0.0.2", "/admin/drives", "GET")

	// A cutoff in the future makes every bucket stale
	limiter.dropStale(time.Now().Add(time.Second))

	limiter.mu.RLock()
	n := len(limiter.buckets)
	limiter.mu.RUnlock()
	if n != 0 {
		t.Errorf("Expected all stale buckets dropped, %d left", n)
	}

	// A cutoff in the past keeps fresh buckets
	limiter.Allow("127.0.0.3", "/admin/drives", "GET")
	limiter.dropStale(time.Now().Add(-time.Second))

	limiter.mu.RLock()
	n = len(limiter.buckets)
	limiter.mu.RUnlock()
	if n != 1 {
		t.Errorf("Expected the fresh bucket kept, got %d buckets", n)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	if limiter == nil {
		t.Error("Expected limiter to be created with nil config")
	}

	// Should use defaults
	allowed, rateInfo := limiter.Allow("127.0.0.1", "/admin/drives", "GET")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected health check to match a config")
	}
	if config.Limit != 0 {
		t.Errorf("Expected health check to be unlimited, got limit %d", config.Limit)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	config := MatchEndpoint("/auth/register", "POST", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected register endpoint to match a config")
	}
	if config.Limit != 5 {
		t.Errorf("Expected register limit 5, got %d", config.Limit)
	}
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	// The notify fan-out lives under /admin/drives/{id}/notify and should be
	// caught by the "/admin/drives/" prefix config.
	config := MatchEndpoint("/admin/drives/3f1f8a64-0000-0000-0000-000000000000/notify", "POST", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected notify endpoint to match the drives prefix config")
	}
	if config.Limit != 30 {
		t.Errorf("Expected notify limit 30, got %d", config.Limit)
	}

	// GET under the same prefix has no config and falls back to the default
	if got := MatchEndpoint("/admin/drives/3f1f8a64-0000-0000-0000-000000000000/eligible", "GET", DefaultEndpointConfigs()); got != nil {
		t.Errorf("Expected no match for GET under the drives prefix, got %+v", got)
	}
}

func TestMatchEndpoint_LongestPrefixWins(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/admin/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 50},
		{Path: "/admin/drives/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
	}

	config := MatchEndpoint("/admin/drives/3f1f8a64-0000-0000-0000-000000000000/notify", "POST", configs)
	if config == nil {
		t.Fatal("Expected a prefix match")
	}
	if config.Limit != 30 {
		t.Errorf("Expected the narrower prefix to win with limit 30, got %d", config.Limit)
	}

	config = MatchEndpoint("/admin/faqs", "POST", configs)
	if config == nil {
		t.Fatal("Expected the broad prefix to match")
	}
	if config.Limit != 100 {
		t.Errorf("Expected the broad prefix limit 100, got %d", config.Limit)
	}
}
