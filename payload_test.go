package npc

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

func TestPayloadPreservesCommandOrder(t *testing.T) {
	t.Parallel()

	o1 := newOperator("O1")
	h := newHarness(t, o1)
	emote := uuid.New()
	a := h.spawn(t, "Human", o1, SpawnConfig{
		Name:       "Guide",
		Visibility: VisibleToCreator,
		Emote:      uuid.NullUUID{UUID: emote, Valid: true},
		Skin:       SkinData{Width: 64, Height: 64, Pix: make([]byte, 64*64*4), ModelName: "geometry.humanoid.custom"},
		Commands: []Command{
			{Text: "say one", Target: ServerConsole},
			{Text: "two", Target: ActingPlayer},
			{Text: "say three", Target: ServerConsole},
		},
	})

	b, err := EncodePayload(a.Payload())
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	p, err := DecodePayload(b)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}

	cfg, err := p.SpawnConfig()
	if err != nil {
		t.Fatalf("SpawnConfig: %v", err)
	}
	if !slices.Equal(cfg.Commands, a.Commands()) {
		t.Fatalf("commands = %v, want %v", cfg.Commands, a.Commands())
	}
	if cfg.Visibility != VisibleToCreator || cfg.Name != "Guide" {
		t.Fatalf("visibility, name = %v, %q", cfg.Visibility, cfg.Name)
	}
	if !cfg.Emote.Valid || cfg.Emote.UUID != emote || cfg.ActionEmote.Valid {
		t.Fatalf("emotes = %v, %v", cfg.Emote, cfg.ActionEmote)
	}
	if cfg.Skin.Width != 64 || len(cfg.Skin.Pix) != 64*64*4 {
		t.Fatalf("skin = %dx%d with %d bytes", cfg.Skin.Width, cfg.Skin.Height, len(cfg.Skin.Pix))
	}

	id, creator, err := p.Identity()
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	if id != a.UUID() || creator != o1.id {
		t.Fatalf("Identity() = %s, %s, want %s, %s", id, creator, a.UUID(), o1.id)
	}
}

func TestDecodePayloadDefaults(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	b, err := nbt.MarshalEncoding(map[string]any{
		"UUID":    uuid.NewString(),
		"Species": "Cow",
		"Creator": creator[:],
	}, nbt.LittleEndian)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	p, err := DecodePayload(b)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Scale != 1 || p.RotateToPlayers != 1 || p.NameTagVisible != 1 || p.SlapBack != 1 {
		t.Fatalf("defaults = %+v", p)
	}
	if p.Visibility != int32(VisibleToEveryone) || len(p.Commands) != 0 || p.Baby != 0 {
		t.Fatalf("defaults = %+v", p)
	}

	cfg, err := p.SpawnConfig()
	if err != nil {
		t.Fatalf("SpawnConfig: %v", err)
	}
	if cfg.Scale != 0 || !*cfg.RotateToPlayers || !*cfg.SlapBack {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestPayloadRejectsBadVisibility(t *testing.T) {
	t.Parallel()

	p := defaultPayload()
	p.Visibility = 9
	if _, err := p.SpawnConfig(); err == nil {
		t.Fatal("SpawnConfig accepted visibility 9")
	}
}
