package httpx

import (
	"testing"
	"time"
)

func TestMemoryRateLimiterEnforcesWindow(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	for i := 0; i < 3; i++ {
		decision := rl.Allow("ip:1.2.3.4", 3, time.Minute)
		if !decision.allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if decision.count != i+1 {
			t.Fatalf("unexpected count %d on request %d", decision.count, i+1)
		}
	}
	decision := rl.Allow("ip:1.2.3.4", 3, time.Minute)
	if decision.allowed {
		t.Fatal("fourth request should be denied")
	}
	if decision.windowEnd.IsZero() {
		t.Fatal("expected window end on denial")
	}
}

func TestMemoryRateLimiterIsolatesKeys(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	rl.Allow("ip:1.1.1.1", 1, time.Minute)
	if decision := rl.Allow("ip:1.1.1.1", 1, time.Minute); decision.allowed {
		t.Fatal("second request on same key should be denied")
	}
	if decision := rl.Allow("ip:2.2.2.2", 1, time.Minute); !decision.allowed {
		t.Fatal("other key should not be affected")
	}
}

func TestMemoryRateLimiterZeroLimitAllows(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	if decision := rl.Allow("ip:1.1.1.1", 0, time.Minute); !decision.allowed {
		t.Fatal("zero limit should disable limiting")
	}
}

func TestMemoryRateLimiterCleanupDropsExpired(t *testing.T) {
	rl := NewMemoryRateLimiter().(*memoryRateLimiter)
	defer rl.Close()

	rl.Allow("ip:1.1.1.1", 1, time.Millisecond)
	rl.cleanup(time.Now().Add(time.Second))

	rl.mu.Lock()
	remaining := len(rl.entries)
	rl.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("expected expired entries swept, got %d", remaining)
	}
}
