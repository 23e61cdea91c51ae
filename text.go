package npc

import (
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// displayNamer is implemented by operators with a display name distinct
// from their account name.
type displayNamer interface {
	DisplayName() string
}

// RenderName expands a name template for an actor spawned by owner.
// {player} is the owner's name, {display_name} the owner's display name and
// {line} a line break.
func RenderName(template string, owner Operator) string {
	if template == "" || owner == nil {
		return strings.ReplaceAll(template, "{line}", "\n")
	}
	display := owner.Name()
	if d, ok := owner.(displayNamer); ok && d.DisplayName() != "" {
		display = d.DisplayName()
	}
	return strings.NewReplacer(
		"{player}", owner.Name(),
		"{display_name}", display,
		"{line}", "\n",
	).Replace(template)
}

// sprintf formats operator-facing text in the manager's language.
// Printers are not safe for concurrent use, so one is created per message.
func (m *Manager) sprintf(format string, args ...any) string {
	return message.NewPrinter(m.lang).Sprintf(format, args...)
}

// itoa formats an actor id without locale digit grouping.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
