package npc

import (
	"context"
	"errors"
	"testing"
)

func TestStoreFollowsLifecycle(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	o1 := newOperator("O1")
	h := newHarnessWithStore(t, store, o1)

	a := h.spawn(t, "Cow", o1, SpawnConfig{})
	h.m.Flush()
	if store.Len() != 1 {
		t.Fatalf("stored rows = %d, want 1", store.Len())
	}

	if err := h.m.Rename(o1, a, "Daisy"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	h.m.Flush()
	rows, _ := store.ListActors(context.Background())
	p, err := DecodePayload(rows[0].Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Name != "Daisy" || rows[0].Species != "Cow" || rows[0].Owner != o1.id {
		t.Fatalf("row = %+v, name %q", rows[0], p.Name)
	}

	if err := h.m.Despawn(o1, a.ID()); err != nil {
		t.Fatalf("Despawn: %v", err)
	}
	h.m.Flush()
	if store.Len() != 0 {
		t.Fatalf("stored rows after despawn = %d, want 0", store.Len())
	}
}

func TestRestoreRecreatesActors(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	o1 := newOperator("O1")
	first := newHarnessWithStore(t, store, o1)

	first.spawn(t, "Villager", o1, SpawnConfig{
		Name:       "Trader",
		Baby:       true,
		Visibility: VisibleToCreator,
		Commands: []Command{
			{Text: "say a", Target: ServerConsole},
			{Text: "b", Target: ActingPlayer},
		},
	})
	first.m.Close()
	if store.Len() != 1 {
		t.Fatalf("Close deleted stored rows: %d left", store.Len())
	}

	o2 := newOperator("O2")
	second := newHarnessWithStore(t, store, o1, o2)
	n, err := second.m.Restore(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("Restore() = %d, %v, want 1, nil", n, err)
	}
	all := second.m.All()
	if len(all) != 1 {
		t.Fatalf("All() = %d actors, want 1", len(all))
	}
	a := all[0]
	if a.Name() != "Trader" || !a.Baby() || a.Scale() != BabyScale || a.Owner() != o1.id {
		t.Fatalf("restored actor = %q baby=%v scale=%v owner=%s", a.Name(), a.Baby(), a.Scale(), a.Owner())
	}
	if cmds := a.Commands(); len(cmds) != 2 || cmds[0].Text != "say a" || cmds[1].Target != ActingPlayer {
		t.Fatalf("commands = %v", cmds)
	}
	if !second.world.visible(a, o1) || second.world.visible(a, o2) {
		t.Fatal("restored visibility not applied")
	}

	if n, _ := second.m.Restore(context.Background()); n != 0 {
		t.Fatalf("second Restore() = %d, want 0", n)
	}
}

func TestRestoreSkipsUnknownSpecies(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	o1 := newOperator("O1")
	first := newHarnessWithStore(t, store, o1)
	first.spawn(t, "Cow", o1, SpawnConfig{})
	first.m.Close()

	rows, _ := store.ListActors(context.Background())
	p, _ := DecodePayload(rows[0].Payload)
	p.Species = "Unicorn"
	rows[0].Payload, _ = EncodePayload(p)
	_ = store.SaveActor(context.Background(), rows[0])

	second := newHarnessWithStore(t, store, o1)
	n, err := second.m.Restore(context.Background())
	if n != 0 || !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("Restore() = %d, %v, want 0, ErrUnknownSpecies", n, err)
	}
}

func TestSaveWritesEveryActor(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	o1 := newOperator("O1")
	h := newHarnessWithStore(t, store, o1)
	h.spawn(t, "Cow", o1, SpawnConfig{})
	h.spawn(t, "Pig", o1, SpawnConfig{})
	h.m.Flush()

	store.fail = errBoom
	if err := h.m.Save(context.Background()); !errors.Is(err, errBoom) {
		t.Fatalf("Save() error = %v, want boom", err)
	}
	store.fail = nil
	if err := h.m.Save(context.Background()); err != nil {
		t.Fatalf("Save(): %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("stored rows = %d, want 2", store.Len())
	}
}
