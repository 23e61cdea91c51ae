package npc

import "time"

// Settings configures actor behaviour. Field tags allow loading from the
// environment with a prefix, e.g. NPC_COMMAND_COOLDOWN=2s.
type Settings struct {
	// CommandCooldownEnabled gates command dispatch per player and actor.
	CommandCooldownEnabled bool `env:"COMMAND_COOLDOWN_ENABLED" envDefault:"true"`
	// CommandCooldown is the minimum time between two command runs.
	// Default: 2 seconds.
	CommandCooldown time.Duration `env:"COMMAND_COOLDOWN" envDefault:"2s"`

	// EmoteCooldownEnabled gates the passive emote.
	EmoteCooldownEnabled bool `env:"EMOTE_COOLDOWN_ENABLED" envDefault:"true"`
	// EmoteCooldown is the minimum time between two passive emotes.
	// Default: 5 seconds.
	EmoteCooldown time.Duration `env:"EMOTE_COOLDOWN" envDefault:"5s"`

	// ActionEmoteCooldownEnabled gates the emote played on use.
	ActionEmoteCooldownEnabled bool `env:"ACTION_EMOTE_COOLDOWN_ENABLED" envDefault:"true"`
	// ActionEmoteCooldown is the minimum time between two action emotes.
	// Default: 5 seconds.
	ActionEmoteCooldown time.Duration `env:"ACTION_EMOTE_COOLDOWN" envDefault:"5s"`

	// RotateToPlayers is the default for new actors.
	RotateToPlayers bool `env:"ROTATE_TO_PLAYERS" envDefault:"true"`
	// RotationRadius is how far away a player may be to be looked at.
	RotationRadius float64 `env:"ROTATION_RADIUS" envDefault:"8"`

	// NameTagVisible is the default for new actors.
	NameTagVisible bool `env:"NAMETAG_VISIBLE" envDefault:"true"`
	// SlapBack is the default for new human actors.
	SlapBack bool `env:"SLAP_BACK" envDefault:"true"`
	// Particles enables ambient particles around human actors.
	Particles bool `env:"PARTICLES" envDefault:"true"`

	// StoreTimeout bounds every background store write.
	// Default: 5 seconds.
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		CommandCooldownEnabled:     true,
		CommandCooldown:            2 * time.Second,
		EmoteCooldownEnabled:       true,
		EmoteCooldown:              5 * time.Second,
		ActionEmoteCooldownEnabled: true,
		ActionEmoteCooldown:        5 * time.Second,
		RotateToPlayers:            true,
		RotationRadius:             8,
		NameTagVisible:             true,
		SlapBack:                   true,
		Particles:                  true,
		StoreTimeout:               5 * time.Second,
	}
}

// Option adjusts settings.
type Option func(*Settings)

// WithCommandCooldown sets the command cooldown. Zero disables it.
func WithCommandCooldown(d time.Duration) Option {
	return func(s *Settings) {
		s.CommandCooldown = d
		s.CommandCooldownEnabled = d > 0
	}
}

// WithEmoteCooldown sets the passive emote cooldown. Zero disables it.
func WithEmoteCooldown(d time.Duration) Option {
	return func(s *Settings) {
		s.EmoteCooldown = d
		s.EmoteCooldownEnabled = d > 0
	}
}

// WithActionEmoteCooldown sets the action emote cooldown. Zero disables it.
func WithActionEmoteCooldown(d time.Duration) Option {
	return func(s *Settings) {
		s.ActionEmoteCooldown = d
		s.ActionEmoteCooldownEnabled = d > 0
	}
}

// WithParticles toggles ambient particles.
func WithParticles(enabled bool) Option {
	return func(s *Settings) {
		s.Particles = enabled
	}
}

// WithRotation sets the default rotate-to-players behaviour and radius.
func WithRotation(enabled bool, radius float64) Option {
	return func(s *Settings) {
		s.RotateToPlayers = enabled
		s.RotationRadius = radius
	}
}
