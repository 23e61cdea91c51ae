package npc

import (
	"fmt"

	"github.com/google/uuid"
)

// edit authorizes op against a, applies fn and persists the result.
func (m *Manager) edit(op Operator, a *Actor, what string, fn func(a *Actor) error) error {
	if !m.mayManage(op, a, CapEditOthers) {
		return fmt.Errorf("%s actor %d: %w", what, a.id, ErrNotAuthorized)
	}
	if err := a.update(fn); err != nil {
		return fmt.Errorf("%s actor %d: %w", what, a.id, err)
	}
	m.persist(a)
	m.log.Debug("npc: actor edited", "actor", a.id, "edit", what, "by", op.UUID())
	return nil
}

// Rename changes the name of a. An empty name shows the species name.
func (m *Manager) Rename(op Operator, a *Actor, name string) error {
	err := m.edit(op, a, "rename", func(a *Actor) error {
		a.name = RenderName(name, op)
		return nil
	})
	if err == nil {
		a.body.SetNameTag(a.nameTag())
	}
	return err
}

// SetScale sets an explicit scale, overriding the juvenile scale.
func (m *Manager) SetScale(op Operator, a *Actor, scale float64) error {
	if !validScale(scale) {
		return fmt.Errorf("scale actor %d: %w", a.id, ErrInvalidScale)
	}
	err := m.edit(op, a, "scale", func(a *Actor) error {
		a.scale = scale
		a.scaleOverride = true
		return nil
	})
	if err == nil {
		a.body.SetScale(scale)
	}
	return err
}

// SetBaby makes a a juvenile or an adult. Unless a has an explicit scale its
// scale follows.
func (m *Manager) SetBaby(op Operator, a *Actor, baby bool) error {
	if !a.species.Ageable {
		return fmt.Errorf("baby actor %d (%s): %w", a.id, a.species.Key, ErrUnsupported)
	}
	var rescaled bool
	err := m.edit(op, a, "baby", func(a *Actor) error {
		a.baby = baby
		if !a.scaleOverride {
			a.scale = 1
			if baby {
				a.scale = BabyScale
			}
			rescaled = true
		}
		return nil
	})
	if err == nil && rescaled {
		a.body.SetScale(a.Scale())
	}
	return err
}

// SetRotate toggles whether a turns towards nearby players.
func (m *Manager) SetRotate(op Operator, a *Actor, rotate bool) error {
	return m.edit(op, a, "rotate", func(a *Actor) error {
		a.rotate = rotate
		return nil
	})
}

// SetSlapBack toggles the arm swing of a human actor.
func (m *Manager) SetSlapBack(op Operator, a *Actor, slap bool) error {
	if !a.species.Human {
		return fmt.Errorf("slap back actor %d (%s): %w", a.id, a.species.Key, ErrUnsupported)
	}
	return m.edit(op, a, "slap back", func(a *Actor) error {
		a.slapBack = slap
		return nil
	})
}

// SetNameTagVisible shows or hides the name tag of a.
func (m *Manager) SetNameTagVisible(op Operator, a *Actor, visible bool) error {
	err := m.edit(op, a, "name tag", func(a *Actor) error {
		a.nameTagVisible = visible
		return nil
	})
	if err == nil {
		a.body.SetNameTag(a.nameTag())
	}
	return err
}

// SetEmote sets or clears the passive emote of a.
func (m *Manager) SetEmote(op Operator, a *Actor, emote uuid.NullUUID) error {
	return m.edit(op, a, "emote", func(a *Actor) error {
		a.emote = emote
		return nil
	})
}

// SetActionEmote sets or clears the emote a plays when used.
func (m *Manager) SetActionEmote(op Operator, a *Actor, emote uuid.NullUUID) error {
	return m.edit(op, a, "action emote", func(a *Actor) error {
		a.actionEmote = emote
		return nil
	})
}

// ChangeVisibility is SetVisibility on behalf of op.
func (m *Manager) ChangeVisibility(op Operator, a *Actor, v Visibility) error {
	if !m.mayManage(op, a, CapEditOthers) {
		return fmt.Errorf("visibility actor %d: %w", a.id, ErrNotAuthorized)
	}
	return m.SetVisibility(a, v)
}

// AddCommand appends a command to a and returns its index.
func (m *Manager) AddCommand(op Operator, a *Actor, text string, target CommandTarget) (int, error) {
	if !target.Valid() {
		return 0, fmt.Errorf("add command to actor %d: target %q: %w", a.id, target, ErrInvalidCommandTarget)
	}
	var i int
	err := m.edit(op, a, "add command", func(a *Actor) error {
		i = a.commands.Add(text, target)
		return nil
	})
	return i, err
}

// RemoveCommand removes the command at index i of a.
func (m *Manager) RemoveCommand(op Operator, a *Actor, i int) (Command, error) {
	var removed Command
	err := m.edit(op, a, "remove command", func(a *Actor) error {
		var err error
		removed, err = a.commands.RemoveAt(i)
		return err
	})
	return removed, err
}
