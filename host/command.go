package host

import (
	"errors"
	"strconv"
	"strings"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
	"github.com/oriumgames/npc"
)

// registerCommand registers the /npc command.
func registerCommand() {
	cmd.Register(NewCommand())
}

// NewCommand returns the /npc command tree.
func NewCommand() cmd.Command {
	return cmd.New("npc", "Create and manage NPCs.", []string{"slapper"},
		createCommand{},
		deleteCommand{},
		idCommand{},
		cancelCommand{},
		listCommand{},
		visibilityCommand{},
		commandAddCommand{},
		commandRemoveCommand{},
		commandListCommand{},
		editNameCommand{},
		editScaleCommand{},
		editToggleCommand{},
		editEmoteCommand{},
	)
}

// speciesName is a species key, completed from the manager's catalog.
type speciesName string

func (speciesName) Type() string {
	return "species"
}

func (speciesName) Options(src cmd.Source) []string {
	_, h := Command(src)
	if h == nil {
		return nil
	}
	m := h.host.Manager()
	if m == nil {
		return nil
	}
	return m.Catalog().Keys()
}

type visibilityName string

func (visibilityName) Type() string {
	return "visibility"
}

func (visibilityName) Options(cmd.Source) []string {
	return []string{
		npc.VisibleToEveryone.String(),
		npc.VisibleToCreator.String(),
		npc.InvisibleToEveryone.String(),
	}
}

type targetName string

func (targetName) Type() string {
	return "target"
}

func (targetName) Options(cmd.Source) []string {
	return []string{string(npc.ServerConsole), string(npc.ActingPlayer)}
}

type toggleName string

const (
	toggleBaby     = "baby"
	toggleRotate   = "rotate"
	toggleSlapBack = "slapback"
	toggleNameTag  = "nametag"
)

func (toggleName) Type() string {
	return "setting"
}

func (toggleName) Options(cmd.Source) []string {
	return []string{toggleBaby, toggleRotate, toggleSlapBack, toggleNameTag}
}

type emoteSlot string

const (
	slotEmote       = "emote"
	slotActionEmote = "actionemote"
)

func (emoteSlot) Type() string {
	return "slot"
}

func (emoteSlot) Options(cmd.Source) []string {
	return []string{slotEmote, slotActionEmote}
}

// playerOnly restricts a command to players handled by a Host.
type playerOnly struct{}

func (playerOnly) Allow(src cmd.Source) bool {
	_, h := Command(src)
	return h != nil
}

// actor resolves an id for a command, reporting a missing actor on o.
func (h *Handler) actor(id int, o *cmd.Output) (*npc.Actor, bool) {
	a, ok := h.host.manager().Find(int64(id))
	if !ok {
		o.Errorf("NPC ID %d not found.", id)
		return nil, false
	}
	return a, true
}

type createCommand struct {
	playerOnly
	Sub   cmd.SubCommand        `cmd:"create"`
	Type  speciesName           `cmd:"type"`
	Name  cmd.Optional[string]  `cmd:"name"`
	Scale cmd.Optional[float64] `cmd:"scale"`
	Baby  cmd.Optional[bool]    `cmd:"baby"`
}

func (c createCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p, h := Command(src)
	if h == nil {
		return
	}
	cfg := npc.SpawnConfig{
		Position: p.Position(),
		Rotation: p.Rotation(),
		Skin:     encodeSkin(p.Skin()),
	}
	cfg.Name, _ = c.Name.Load()
	cfg.Scale, _ = c.Scale.Load()
	cfg.Baby, _ = c.Baby.Load()

	if _, err := h.host.manager().Spawn(string(c.Type), h.session, cfg); err != nil {
		o.Error(describe(err))
	}
}

type deleteCommand struct {
	playerOnly
	Sub cmd.SubCommand    `cmd:"delete"`
	ID  cmd.Optional[int] `cmd:"id"`
}

func (c deleteCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	m := h.host.manager()
	if id, ok := c.ID.Load(); ok {
		if err := m.Despawn(h.session, int64(id)); err != nil {
			o.Error(describe(err))
		}
		return
	}
	m.Pending().Request(h.session.uuid, npc.ConfirmDelete)
	o.Print("Punch the NPC you want to delete.")
}

type idCommand struct {
	playerOnly
	Sub cmd.SubCommand `cmd:"id"`
}

func (idCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	h.host.manager().Pending().Request(h.session.uuid, npc.RetrieveID)
	o.Print("Punch an NPC to see its ID.")
}

type cancelCommand struct {
	playerOnly
	Sub cmd.SubCommand `cmd:"cancel"`
}

func (cancelCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	if h.host.manager().Pending().Cancel(h.session.uuid) {
		o.Print("Pending NPC action cancelled.")
		return
	}
	o.Print("You have no pending NPC action.")
}

type listCommand struct {
	playerOnly
	Sub cmd.SubCommand `cmd:"list"`
}

func (listCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	m := h.host.manager()
	actors := m.ActorsOf(h.session.uuid)
	if m.Allowed(h.session, npc.CapEditOthers) {
		actors = m.All()
	}
	if len(actors) == 0 {
		o.Print("There are no NPCs to list.")
		return
	}
	for _, a := range actors {
		o.Print(describeActor(a))
	}
}

type visibilityCommand struct {
	playerOnly
	Sub        cmd.SubCommand `cmd:"visibility"`
	ID         int            `cmd:"id"`
	Visibility visibilityName `cmd:"mode"`
}

func (c visibilityCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	v, err := npc.ParseVisibility(string(c.Visibility))
	if err != nil {
		o.Error(describe(err))
		return
	}
	if err := h.host.manager().ChangeVisibility(h.session, a, v); err != nil {
		o.Error(describe(err))
		return
	}
	o.Printf("NPC ID %d is now visible to %s.", c.ID, v)
}

type commandAddCommand struct {
	playerOnly
	Sub    cmd.SubCommand `cmd:"command"`
	Add    cmd.SubCommand `cmd:"add"`
	ID     int            `cmd:"id"`
	Target targetName     `cmd:"target"`
	Line   cmd.Varargs    `cmd:"line"`
}

func (c commandAddCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	target, err := npc.ParseCommandTarget(string(c.Target))
	if err != nil {
		o.Error(describe(err))
		return
	}
	i, err := h.host.manager().AddCommand(h.session, a, strings.TrimSpace(string(c.Line)), target)
	if err != nil {
		o.Error(describe(err))
		return
	}
	o.Printf("Command #%d added to NPC ID %d.", i, c.ID)
}

type commandRemoveCommand struct {
	playerOnly
	Sub    cmd.SubCommand `cmd:"command"`
	Remove cmd.SubCommand `cmd:"remove"`
	ID     int            `cmd:"id"`
	Index  int            `cmd:"index"`
}

func (c commandRemoveCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	removed, err := h.host.manager().RemoveCommand(h.session, a, c.Index)
	if err != nil {
		o.Error(describe(err))
		return
	}
	o.Printf("Removed command %s from NPC ID %d.", removed, c.ID)
}

type commandListCommand struct {
	playerOnly
	Sub  cmd.SubCommand `cmd:"command"`
	List cmd.SubCommand `cmd:"list"`
	ID   int            `cmd:"id"`
}

func (c commandListCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	commands := a.Commands()
	if len(commands) == 0 {
		o.Printf("NPC ID %d has no commands.", c.ID)
		return
	}
	for i, command := range commands {
		o.Printf("#%d %s", i, command)
	}
}

type editNameCommand struct {
	playerOnly
	Sub  cmd.SubCommand `cmd:"edit"`
	ID   int            `cmd:"id"`
	Edit cmd.SubCommand `cmd:"name"`
	Name cmd.Varargs    `cmd:"value"`
}

func (c editNameCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	if err := h.host.manager().Rename(h.session, a, strings.TrimSpace(string(c.Name))); err != nil {
		o.Error(describe(err))
		return
	}
	o.Printf("NPC ID %d renamed to %s.", c.ID, a.Name())
}

type editScaleCommand struct {
	playerOnly
	Sub   cmd.SubCommand `cmd:"edit"`
	ID    int            `cmd:"id"`
	Edit  cmd.SubCommand `cmd:"scale"`
	Scale float64        `cmd:"value"`
}

func (c editScaleCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	if err := h.host.manager().SetScale(h.session, a, c.Scale); err != nil {
		o.Error(describe(err))
		return
	}
	o.Printf("NPC ID %d scale set to %.2f.", c.ID, c.Scale)
}

type editToggleCommand struct {
	playerOnly
	Sub     cmd.SubCommand `cmd:"edit"`
	ID      int            `cmd:"id"`
	Setting toggleName     `cmd:"setting"`
	Value   bool           `cmd:"value"`
}

func (c editToggleCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	if err := applyToggle(h.host.manager(), h.session, a, string(c.Setting), c.Value); err != nil {
		o.Error(describe(err))
		return
	}
	o.Printf("NPC ID %d %s set to %t.", c.ID, c.Setting, c.Value)
}

// applyToggle sets one of the boolean actor settings.
func applyToggle(m *npc.Manager, op npc.Operator, a *npc.Actor, setting string, value bool) error {
	switch strings.ToLower(setting) {
	case toggleBaby:
		return m.SetBaby(op, a, value)
	case toggleRotate:
		return m.SetRotate(op, a, value)
	case toggleSlapBack:
		return m.SetSlapBack(op, a, value)
	case toggleNameTag:
		return m.SetNameTagVisible(op, a, value)
	default:
		return errUnknownSetting
	}
}

type editEmoteCommand struct {
	playerOnly
	Sub   cmd.SubCommand `cmd:"edit"`
	ID    int            `cmd:"id"`
	Slot  emoteSlot      `cmd:"slot"`
	Emote string         `cmd:"emote"`
}

func (c editEmoteCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, h := Command(src)
	if h == nil {
		return
	}
	a, ok := h.actor(c.ID, o)
	if !ok {
		return
	}
	emote, err := parseEmote(c.Emote)
	if err != nil {
		o.Error(describe(err))
		return
	}

	m := h.host.manager()
	if strings.EqualFold(string(c.Slot), slotActionEmote) {
		err = m.SetActionEmote(h.session, a, emote)
	} else {
		err = m.SetEmote(h.session, a, emote)
	}
	if err != nil {
		o.Error(describe(err))
		return
	}
	if !emote.Valid {
		o.Printf("NPC ID %d %s cleared.", c.ID, c.Slot)
		return
	}
	o.Printf("NPC ID %d %s set to %s.", c.ID, c.Slot, emote.UUID)
}

var (
	errUnknownSetting = errors.New("unknown setting")
	errInvalidEmote   = errors.New("invalid emote")
)

// parseEmote parses an emote UUID. "none" and "off" clear the emote.
func parseEmote(s string) (uuid.NullUUID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.NullUUID{}, errInvalidEmote
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// describeActor returns a one-line summary of a for listings.
func describeActor(a *npc.Actor) string {
	var b strings.Builder
	b.WriteString("#")
	b.WriteString(strconv.FormatInt(a.ID(), 10))
	b.WriteString(" ")
	b.WriteString(a.Species().Name)
	if name := a.Name(); name != "" && name != a.Species().Name {
		b.WriteString(" \"")
		b.WriteString(name)
		b.WriteString("\"")
	}
	b.WriteString(" (")
	b.WriteString(a.Visibility().String())
	b.WriteString(")")
	return b.String()
}

// describe turns a manager error into a message for players.
func describe(err error) string {
	switch {
	case errors.Is(err, npc.ErrUnknownSpecies):
		return "Unknown NPC type."
	case errors.Is(err, npc.ErrNotFound):
		return "NPC not found."
	case errors.Is(err, npc.ErrNotAuthorized):
		return "You don't have permission to manage this NPC."
	case errors.Is(err, npc.ErrInvalidCommandTarget):
		return "Command target must be server or player."
	case errors.Is(err, npc.ErrInvalidVisibility):
		return "Visibility must be everyone, creator or nobody."
	case errors.Is(err, npc.ErrInvalidScale):
		return "Scale must be a finite number greater than zero."
	case errors.Is(err, npc.ErrIndexOutOfRange):
		return "There is no command at that index."
	case errors.Is(err, npc.ErrUnsupported):
		return "This NPC type does not support that setting."
	case errors.Is(err, npc.ErrConstructionFailed):
		return "The NPC could not be created."
	case errors.Is(err, npc.ErrDestroyed):
		return "That NPC no longer exists."
	case errors.Is(err, errUnknownSetting):
		return "Unknown setting."
	case errors.Is(err, errInvalidEmote):
		return "Emote must be a UUID or none."
	default:
		return "Something went wrong: " + err.Error()
	}
}
