package npc

import (
	"errors"
	"testing"
)

func TestCatalogLookupIgnoresCase(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	RegisterAll(c, nil)

	for _, name := range []string{"Cow", "cow", "COW", "cOw"} {
		s, err := c.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if s.Key != "Cow" {
			t.Fatalf("Lookup(%q).Key = %q, want %q", name, s.Key, "Cow")
		}
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	RegisterAll(c, nil)

	_, err := c.Lookup("Dragonfly")
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("Lookup(Dragonfly) error = %v, want ErrUnknownSpecies", err)
	}
}

func TestCatalogRegisterDuplicate(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	mustRegister(t, c, Species{Key: "Cow"})
	if err := c.Register(Species{Key: "COW"}); !errors.Is(err, ErrDuplicateSpecies) {
		t.Fatalf("Register(COW) error = %v, want ErrDuplicateSpecies", err)
	}
	if err := c.Register(Species{Key: " "}); err == nil {
		t.Fatal("Register with blank key succeeded")
	}
}

func TestRegisterAllPanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	mustRegister(t, c, Species{Key: "Human"})

	defer func() {
		if recover() == nil {
			t.Fatal("RegisterAll did not panic")
		}
	}()
	RegisterAll(c, nil)
}

func TestDefaultSpeciesTable(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	RegisterAll(c, nil)
	if got, want := c.Len(), len(DefaultSpecies()); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	humans := 0
	for _, s := range c.All() {
		if s.Height <= 0 || s.Width <= 0 {
			t.Errorf("%s has size %vx%v", s.Key, s.Height, s.Width)
		}
		if s.NetworkID == "" || s.Name == "" {
			t.Errorf("%s is missing a network id or name", s.Key)
		}
		if s.Human {
			humans++
		}
	}
	if humans != 1 {
		t.Fatalf("human species = %d, want 1", humans)
	}

	keys := c.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("Keys() not sorted at %d: %q >= %q", i, keys[i-1], keys[i])
		}
	}
}

func TestSpeciesSize(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	RegisterAll(c, nil)

	tests := []struct {
		key    string
		baby   bool
		height float64
		width  float64
	}{
		{"PolarBear", false, 1.4, 1.4},
		{"PolarBear", true, 0.7, 0.7},
		{"Bee", true, 0.25, 0.275},
		{"Creeper", true, 1.8, 0.6},
		{"EnderDragon", false, 4, 13},
	}
	for _, tt := range tests {
		s, err := c.Lookup(tt.key)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", tt.key, err)
		}
		h, w := s.Size(tt.baby)
		if h != tt.height || w != tt.width {
			t.Errorf("%s.Size(%v) = %v, %v, want %v, %v", tt.key, tt.baby, h, w, tt.height, tt.width)
		}
	}
}
