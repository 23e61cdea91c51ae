package npc

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// BabyScale is the render scale of juvenile actors without an explicit scale.
const BabyScale = 0.5

// validScale reports whether s is usable as an explicit scale.
func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0)
}

// SpawnParams is everything a species constructor needs to build a body.
type SpawnParams struct {
	UUID           uuid.UUID
	Species        *Species
	Name           string
	NameTagVisible bool
	Scale          float64
	Baby           bool
	Position       mgl64.Vec3
	Rotation       cube.Rotation
	Skin           SkinData
}

// Constructor builds the world-side body of an actor.
type Constructor func(SpawnParams) (Body, error)

// Species describes a spawnable kind of actor.
type Species struct {
	// Key is the type name used in commands and persistence, e.g. "CaveSpider".
	Key string
	// Name is the human readable display name, e.g. "Cave Spider".
	Name string
	// NetworkID is the Bedrock entity identifier, e.g. "minecraft:cave_spider".
	NetworkID string
	// Height and Width are the adult hitbox dimensions in blocks.
	Height, Width float64
	// Ageable species may be spawned as babies.
	Ageable bool
	// Human species are rendered as players with a skin and support arm swings.
	Human bool
	// New constructs the body. It must be set before spawning.
	New Constructor
}

// Size returns the hitbox height and width, halved for juveniles of ageable
// species.
func (s *Species) Size(baby bool) (height, width float64) {
	if baby && s.Ageable {
		return s.Height * BabyScale, s.Width * BabyScale
	}
	return s.Height, s.Width
}

// String returns the species key.
func (s *Species) String() string {
	return s.Key
}

// Catalog maps case-insensitive type names to species.
// Populated once during startup, read concurrently afterwards.
type Catalog struct {
	mu      sync.RWMutex
	species map[string]*Species
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{species: make(map[string]*Species)}
}

// Register adds a species to the catalog.
func (c *Catalog) Register(s Species) error {
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("register species: empty key")
	}
	if s.Name == "" {
		s.Name = s.Key
	}
	key := fold(s.Key)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.species[key]; ok {
		return fmt.Errorf("register species %q: %w", s.Key, ErrDuplicateSpecies)
	}
	c.species[key] = &s
	return nil
}

// Lookup returns the species registered under name, ignoring case.
func (c *Catalog) Lookup(name string) (*Species, error) {
	c.mu.RLock()
	s, ok := c.species[fold(name)]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrUnknownSpecies)
	}
	return s, nil
}

// All returns every registered species sorted by key.
func (c *Catalog) All() []*Species {
	c.mu.RLock()
	out := make([]*Species, 0, len(c.species))
	for _, s := range c.species {
		out = append(out, s)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Species) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out
}

// Keys returns the key of every registered species, sorted.
func (c *Catalog) Keys() []string {
	all := c.All()
	keys := make([]string, len(all))
	for i, s := range all {
		keys[i] = s.Key
	}
	return keys
}

// Len returns the number of registered species.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.species)
}

// RegisterAll registers the human species and every built-in mob species,
// all constructed by ctor. It panics if any of them is already registered.
func RegisterAll(c *Catalog, ctor Constructor) {
	for _, s := range DefaultSpecies() {
		s.New = ctor
		if err := c.Register(s); err != nil {
			panic(err)
		}
	}
}

// fold returns the case-folded form of s used for case-insensitive keys.
// Casers are stateful, so a fresh one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
