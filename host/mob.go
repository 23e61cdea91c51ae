package host

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oriumgames/npc"
)

// mobType is the entity type of a non-human species.
type mobType struct {
	species *npc.Species
}

// mobState is the per-entity data of a mob.
type mobState struct {
	nameTag string
	scale   float64
}

// mobConfig seeds the state of a new mob.
type mobConfig struct {
	nameTag string
	scale   float64
}

// Apply stores the configuration in data.
func (c mobConfig) Apply(data *world.EntityData) {
	data.Name = c.nameTag
	data.Data = &mobState{nameTag: c.nameTag, scale: c.scale}
}

func (t mobType) Open(tx *world.Tx, handle *world.EntityHandle, data *world.EntityData) world.Entity {
	st, ok := data.Data.(*mobState)
	if !ok {
		st = &mobState{scale: 1}
		data.Data = st
	}
	return &mob{tx: tx, handle: handle, data: data, state: st}
}

func (t mobType) EncodeEntity() string {
	return t.species.NetworkID
}

// BBox is the adult size of the species times the mob's scale, which already
// carries the juvenile factor unless overridden.
func (t mobType) BBox(e world.Entity) cube.BBox {
	scale := 1.0
	if m, ok := e.(*mob); ok {
		scale = m.state.scale
	}
	height, width := t.species.Size(false)
	height, width = height*scale, width*scale
	return cube.Box(-width/2, 0, -width/2, width/2, height, width/2)
}

// DecodeNBT does nothing: mobs are restored from the actor store.
func (t mobType) DecodeNBT(map[string]any, *world.EntityData) {}

// EncodeNBT saves nothing: mob identifiers are not in the world's entity
// registry, so a saved mob is never loaded back.
func (t mobType) EncodeNBT(*world.EntityData) map[string]any {
	return map[string]any{}
}

// mob is the world entity of a non-human actor. It has no behaviour of its
// own: it never moves, takes no damage and only changes when told to.
type mob struct {
	tx     *world.Tx
	handle *world.EntityHandle
	data   *world.EntityData
	state  *mobState
}

func (m *mob) H() *world.EntityHandle {
	return m.handle
}

func (m *mob) Position() mgl64.Vec3 {
	return m.data.Pos
}

func (m *mob) Rotation() cube.Rotation {
	return m.data.Rot
}

// NameTag returns the tag rendered above the mob.
func (m *mob) NameTag() string {
	return m.state.nameTag
}

// Scale returns the render scale of the mob.
func (m *mob) Scale() float64 {
	return m.state.scale
}

// Close removes the mob from its world.
func (m *mob) Close() error {
	m.tx.RemoveEntity(m)
	return nil
}

func (m *mob) setNameTag(name string) {
	m.state.nameTag = name
	m.data.Name = name
	m.updateState()
}

func (m *mob) setScale(scale float64) {
	m.state.scale = scale
	m.updateState()
}

// face turns the mob and its head towards rot.
func (m *mob) face(rot cube.Rotation) {
	m.data.Rot = rot
	for _, v := range m.tx.Viewers(m.data.Pos) {
		v.ViewEntityMovement(m, m.data.Pos, rot, true)
	}
}

func (m *mob) updateState() {
	for _, v := range m.tx.Viewers(m.data.Pos) {
		v.ViewEntityState(m)
	}
}
