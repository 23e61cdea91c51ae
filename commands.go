package npc

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// CommandTarget selects who executes a stored command.
// Unrecognised targets survive persistence and are rejected at dispatch.
type CommandTarget string

const (
	// ServerConsole runs the command with console privileges.
	ServerConsole CommandTarget = "server"
	// ActingPlayer runs the command as the interacting player.
	ActingPlayer CommandTarget = "player"
)

// ParseCommandTarget parses "server"/"console" or "player", ignoring case.
func ParseCommandTarget(s string) (CommandTarget, error) {
	switch fold(strings.TrimSpace(s)) {
	case "server", "console":
		return ServerConsole, nil
	case "player":
		return ActingPlayer, nil
	}
	return "", fmt.Errorf("parse command target %q: %w", s, ErrInvalidCommandTarget)
}

// Valid reports whether t can be dispatched.
func (t CommandTarget) Valid() bool {
	return t == ServerConsole || t == ActingPlayer
}

// Command is a templated command line run when an actor is used.
type Command struct {
	Text   string
	Target CommandTarget
}

// String returns a one-line description of the command.
func (c Command) String() string {
	return "[" + string(c.Target) + "] " + c.Text
}

// Render substitutes {player} with the double-quoted player name and strips
// a single leading slash.
func Render(text, playerName string) string {
	text = strings.ReplaceAll(text, "{player}", strconv.Quote(playerName))
	return strings.TrimPrefix(text, "/")
}

// Commands is an ordered, concurrency-safe command list.
// The zero value is an empty list.
type Commands struct {
	mu   sync.RWMutex
	list []Command
}

// Add appends a command and returns its index.
func (c *Commands) Add(text string, target CommandTarget) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append(c.list, Command{Text: text, Target: target})
	return len(c.list) - 1
}

// RemoveAt removes the command at index i, keeping the order of the rest.
func (c *Commands) RemoveAt(i int) (Command, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.list) {
		return Command{}, fmt.Errorf("remove command %d of %d: %w", i, len(c.list), ErrIndexOutOfRange)
	}
	removed := c.list[i]
	c.list = append(c.list[:i:i], c.list[i+1:]...)
	return removed, nil
}

// All returns a copy of the commands in insertion order.
func (c *Commands) All() []Command {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Command, len(c.list))
	copy(out, c.list)
	return out
}

// Len returns the number of commands.
func (c *Commands) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.list)
}

// replace swaps the whole list, used when restoring persisted actors.
func (c *Commands) replace(list []Command) {
	c.mu.Lock()
	c.list = append([]Command(nil), list...)
	c.mu.Unlock()
}
