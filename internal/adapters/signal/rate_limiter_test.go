package signal

import (
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	now := time.Unix(1000, 0)
	rl.now = func() time.Time { return now }

	if !rl.Allow("c1") || !rl.Allow("c1") {
		t.Fatal("first two attempts should pass")
	}
	if rl.Allow("c1") {
		t.Fatal("third attempt within window should be blocked")
	}
	if !rl.Allow("c2") {
		t.Fatal("connections must not share a window")
	}

	now = now.Add(1100 * time.Millisecond)
	if !rl.Allow("c1") {
		t.Fatal("attempt after window should pass")
	}
}

func TestRateLimiterForget(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	if !rl.Allow("c1") {
		t.Fatal("first attempt should pass")
	}
	if rl.Allow("c1") {
		t.Fatal("second attempt should be blocked")
	}
	rl.Forget("c1")
	if !rl.Allow("c1") {
		t.Fatal("forgotten connection should start fresh")
	}
}
