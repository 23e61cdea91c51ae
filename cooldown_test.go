package npc

import (
	"testing"
	"time"
)

func TestCooldownTryFire(t *testing.T) {
	t.Parallel()

	var c Cooldown[string]
	now := time.Unix(1000, 0)
	d := 2 * time.Second

	if !c.TryFire("steve", now, d) {
		t.Fatal("first TryFire = false, want true")
	}
	if c.TryFire("steve", now, d) {
		t.Fatal("second TryFire at same instant = true, want false")
	}
	if !c.TryFire("alex", now, d) {
		t.Fatal("TryFire for another key = false, want true")
	}
	if c.TryFire("steve", now.Add(d-time.Millisecond), d) {
		t.Fatal("TryFire before duration elapsed = true, want false")
	}
	if !c.TryFire("steve", now.Add(d), d) {
		t.Fatal("TryFire after duration elapsed = false, want true")
	}
}

func TestCooldownNonPositiveDurationAlwaysFires(t *testing.T) {
	t.Parallel()

	var c Cooldown[int]
	now := time.Unix(1000, 0)
	for i := 0; i < 3; i++ {
		if !c.TryFire(1, now, 0) {
			t.Fatalf("TryFire #%d with zero duration = false", i)
		}
		if !c.TryFire(1, now, -time.Second) {
			t.Fatalf("TryFire #%d with negative duration = false", i)
		}
	}
}

func TestCooldownRemaining(t *testing.T) {
	t.Parallel()

	var c Cooldown[string]
	now := time.Unix(1000, 0)
	d := 2 * time.Second

	if got := c.Remaining("steve", now, d); got != 0 {
		t.Fatalf("Remaining without record = %v, want 0", got)
	}
	c.TryFire("steve", now, d)
	if got := c.Remaining("steve", now.Add(500*time.Millisecond), d); got != 1500*time.Millisecond {
		t.Fatalf("Remaining = %v, want 1.5s", got)
	}
	if got := c.Remaining("steve", now.Add(5*time.Second), d); got != 0 {
		t.Fatalf("Remaining after expiry = %v, want 0", got)
	}

	c.Reset("steve")
	if c.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", c.Len())
	}
	if !c.TryFire("steve", now, d) {
		t.Fatal("TryFire after Reset = false, want true")
	}
}
