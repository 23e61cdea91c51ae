package npc

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Payload is the persisted form of an actor, encoded as little endian NBT.
type Payload struct {
	UUID    string `nbt:"UUID"`
	Species string `nbt:"Species"`
	Creator []byte `nbt:"Creator"`
	Name    string `nbt:"CustomName"`

	Scale         float32 `nbt:"Scale"`
	ScaleOverride uint8   `nbt:"ScaleOverride"`
	Baby          uint8   `nbt:"Baby"`

	RotateToPlayers uint8 `nbt:"RotateToPlayers"`
	NameTagVisible  uint8 `nbt:"NameTagVisible"`
	Visibility      int32 `nbt:"Visibility"`
	SlapBack        uint8 `nbt:"SlapBack"`

	Emote       string           `nbt:"Emote,omitempty"`
	ActionEmote string           `nbt:"ActionEmote,omitempty"`
	Commands    []PayloadCommand `nbt:"Commands,omitempty"`

	Pos      []float64 `nbt:"Pos"`
	Rotation []float32 `nbt:"Rotation"`

	SkinWidth     int32  `nbt:"SkinWidth,omitempty"`
	SkinHeight    int32  `nbt:"SkinHeight,omitempty"`
	SkinData      []byte `nbt:"SkinData,omitempty"`
	SkinModel     []byte `nbt:"SkinModel,omitempty"`
	SkinModelName string `nbt:"SkinModelName,omitempty"`
}

// PayloadCommand is a persisted command.
type PayloadCommand struct {
	Command string `nbt:"Command"`
	Type    string `nbt:"Type"`
}

// defaultPayload holds the values used for tags missing from stored data.
func defaultPayload() Payload {
	return Payload{
		Scale:           1,
		RotateToPlayers: 1,
		NameTagVisible:  1,
		SlapBack:        1,
		Visibility:      int32(VisibleToEveryone),
	}
}

// EncodePayload encodes p as little endian NBT.
func EncodePayload(p Payload) ([]byte, error) {
	b, err := nbt.MarshalEncoding(p, nbt.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return b, nil
}

// DecodePayload decodes little endian NBT. Missing tags take their defaults.
func DecodePayload(b []byte) (Payload, error) {
	p := defaultPayload()
	if err := nbt.UnmarshalEncoding(b, &p, nbt.LittleEndian); err != nil {
		return Payload{}, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

// Payload returns the persisted form of a.
func (a *Actor) Payload() Payload {
	a.mu.RLock()
	defer a.mu.RUnlock()

	p := Payload{
		UUID:            a.uuid.String(),
		Species:         a.species.Key,
		Creator:         a.owner[:],
		Name:            a.name,
		Scale:           float32(a.scale),
		ScaleOverride:   boolByte(a.scaleOverride),
		Baby:            boolByte(a.baby),
		RotateToPlayers: boolByte(a.rotate),
		NameTagVisible:  boolByte(a.nameTagVisible),
		Visibility:      int32(a.visibility),
		SlapBack:        boolByte(a.slapBack),
		Pos:             []float64{a.position[0], a.position[1], a.position[2]},
		Rotation:        []float32{float32(a.rotation[0]), float32(a.rotation[1])},
	}
	if a.emote.Valid {
		p.Emote = a.emote.UUID.String()
	}
	if a.actionEmote.Valid {
		p.ActionEmote = a.actionEmote.UUID.String()
	}
	for _, c := range a.commands.All() {
		p.Commands = append(p.Commands, PayloadCommand{Command: c.Text, Type: string(c.Target)})
	}
	if !a.skin.Empty() {
		p.SkinWidth = int32(a.skin.Width)
		p.SkinHeight = int32(a.skin.Height)
		p.SkinData = a.skin.Pix
		p.SkinModel = a.skin.Model
		p.SkinModelName = a.skin.ModelName
	}
	return p
}

// Identity returns the persistent identity and creator of the payload.
func (p Payload) Identity() (id, creator uuid.UUID, err error) {
	if id, err = uuid.Parse(p.UUID); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("payload uuid: %w", err)
	}
	if creator, err = uuid.FromBytes(p.Creator); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("payload creator: %w", err)
	}
	return id, creator, nil
}

// SpawnConfig converts the payload back into a spawn configuration.
func (p Payload) SpawnConfig() (SpawnConfig, error) {
	v := Visibility(p.Visibility)
	if !v.Valid() {
		return SpawnConfig{}, fmt.Errorf("payload visibility %d: %w", p.Visibility, ErrInvalidVisibility)
	}
	rotate, nameTag, slap := p.RotateToPlayers != 0, p.NameTagVisible != 0, p.SlapBack != 0

	cfg := SpawnConfig{
		Name:            p.Name,
		Baby:            p.Baby != 0,
		Visibility:      v,
		RotateToPlayers: &rotate,
		NameTagVisible:  &nameTag,
		SlapBack:        &slap,
	}
	if p.ScaleOverride != 0 && validScale(float64(p.Scale)) {
		cfg.Scale = float64(p.Scale)
	}
	if len(p.Pos) == 3 {
		cfg.Position = mgl64.Vec3{p.Pos[0], p.Pos[1], p.Pos[2]}
	}
	if len(p.Rotation) == 2 {
		cfg.Rotation = cube.Rotation{float64(p.Rotation[0]), float64(p.Rotation[1])}
	}

	var err error
	if cfg.Emote, err = parseNullUUID(p.Emote); err != nil {
		return SpawnConfig{}, fmt.Errorf("payload emote: %w", err)
	}
	if cfg.ActionEmote, err = parseNullUUID(p.ActionEmote); err != nil {
		return SpawnConfig{}, fmt.Errorf("payload action emote: %w", err)
	}
	for _, c := range p.Commands {
		cfg.Commands = append(cfg.Commands, Command{Text: c.Command, Target: CommandTarget(c.Type)})
	}
	if len(p.SkinData) > 0 {
		cfg.Skin = SkinData{
			Width:     int(p.SkinWidth),
			Height:    int(p.SkinHeight),
			Pix:       p.SkinData,
			Model:     p.SkinModel,
			ModelName: p.SkinModelName,
		}
	}
	return cfg, nil
}

func parseNullUUID(s string) (uuid.NullUUID, error) {
	if s == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
