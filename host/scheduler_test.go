package host

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/oriumgames/npc"
)

type stubBody struct{ closed bool }

func (b *stubBody) SetNameTag(string) {}
func (b *stubBody) SetScale(float64)  {}
func (b *stubBody) Close() error      { b.closed = true; return nil }

func testManager(t *testing.T) *npc.Manager {
	t.Helper()

	c := npc.NewCatalog()
	err := c.Register(npc.Species{
		Key:       "Cow",
		Name:      "Cow",
		NetworkID: "minecraft:cow",
		Height:    1.4,
		Width:     0.9,
		Ageable:   true,
		New:       func(npc.SpawnParams) (npc.Body, error) { return &stubBody{}, nil },
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	m := npc.NewBuilder().
		Catalog(c).
		Logger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		Init()
	t.Cleanup(m.Close)
	return m
}

func TestBatch(t *testing.T) {
	t.Parallel()

	actors := make([]*npc.Actor, 10)
	tests := []struct {
		workers int
		sizes   []int
	}{
		{workers: 1, sizes: []int{10}},
		{workers: 3, sizes: []int{4, 4, 2}},
		{workers: 20, sizes: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got := batch(actors, tt.workers)
		if len(got) != len(tt.sizes) {
			t.Fatalf("batch(10, %d) = %d batches, want %d", tt.workers, len(got), len(tt.sizes))
		}
		for i, b := range got {
			if len(b) != tt.sizes[i] {
				t.Fatalf("batch(10, %d)[%d] has %d actors, want %d", tt.workers, i, len(b), tt.sizes[i])
			}
		}
	}
	if got := batch(nil, 4); got != nil {
		t.Fatalf("batch(nil) = %v, want nil", got)
	}
}

func TestSchedulerTicksActors(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	owner := namedOperator("Steve")
	a, err := m.Spawn("cow", owner, npc.SpawnConfig{})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	s := NewScheduler(m, slog.New(slog.NewTextHandler(io.Discard, nil)), WithTickRate(time.Millisecond), WithWorkers(2))
	s.Start()
	deadline := time.Now().Add(2 * time.Second)
	for a.Ticks() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()
	s.Stop()

	if a.Ticks() < 3 {
		t.Fatalf("Ticks = %d after 2s, want at least 3", a.Ticks())
	}
	if s.TickNumber() == 0 {
		t.Fatal("TickNumber = 0 after ticking")
	}
	if s.Panics() != 0 {
		t.Fatalf("Panics = %d, want 0", s.Panics())
	}
}
