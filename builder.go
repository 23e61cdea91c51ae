package npc

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
)

// Builder configures a Manager before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	catalog    *Catalog
	settings   Settings
	options    []Option
	presenter  Presenter
	directory  Directory
	dispatcher Dispatcher
	effects    Effects
	authorizer Authorizer
	store      Store
	log        *slog.Logger
	clock      func() time.Time
	lang       *language.Tag
}

// NewBuilder creates a new builder with DefaultSettings.
func NewBuilder() *Builder {
	return &Builder{settings: DefaultSettings()}
}

// Catalog sets the species catalog.
func (b *Builder) Catalog(c *Catalog) *Builder {
	b.catalog = c
	return b
}

// Settings replaces the behaviour settings and applies opts on top.
//
// Example:
//
//	builder.Settings(s, npc.WithCommandCooldown(time.Second))
func (b *Builder) Settings(s Settings, opts ...Option) *Builder {
	b.settings = s
	b.options = append(b.options, opts...)
	return b
}

// Presenter sets the presenter.
func (b *Builder) Presenter(p Presenter) *Builder {
	b.presenter = p
	return b
}

// Directory sets the online-operator directory.
func (b *Builder) Directory(d Directory) *Builder {
	b.directory = d
	return b
}

// Dispatcher sets the command dispatcher.
func (b *Builder) Dispatcher(d Dispatcher) *Builder {
	b.dispatcher = d
	return b
}

// Effects sets the cosmetic effects sink.
func (b *Builder) Effects(e Effects) *Builder {
	b.effects = e
	return b
}

// Authorizer sets the capability source. Without one nobody holds any
// capability.
func (b *Builder) Authorizer(a Authorizer) *Builder {
	b.authorizer = a
	return b
}

// Store enables persistence.
func (b *Builder) Store(s Store) *Builder {
	b.store = s
	return b
}

// Logger sets the logger. Default: slog.Default().
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.log = l
	return b
}

// Clock overrides the time source used by cooldowns.
func (b *Builder) Clock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// Language sets the language of operator-facing messages. Default: English.
func (b *Builder) Language(tag language.Tag) *Builder {
	b.lang = &tag
	return b
}

// Init creates the Manager. It panics if the catalog is empty, since no actor
// could ever be spawned.
func (b *Builder) Init() *Manager {
	m := newManager()
	if b.catalog != nil {
		m.catalog = b.catalog
	}
	if m.catalog.Len() == 0 {
		panic("npc: builder requires a catalog with at least one species")
	}

	m.settings = b.settings
	for _, opt := range b.options {
		opt(&m.settings)
	}

	if b.presenter != nil {
		m.presenter = b.presenter
	}
	if b.directory != nil {
		m.directory = b.directory
	}
	if b.dispatcher != nil {
		m.dispatcher = b.dispatcher
	}
	if b.effects != nil {
		m.effects = b.effects
	}
	if b.authorizer != nil {
		m.authorizer = b.authorizer
	}
	if b.log != nil {
		m.log = b.log
	}
	if b.clock != nil {
		m.now = b.clock
	}
	if b.lang != nil {
		m.lang = *b.lang
	}
	if b.store != nil {
		timeout := m.settings.StoreTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		m.persister = newPersister(b.store, m.log, timeout)
	}

	m.log.Debug("npc: manager initialised",
		"species", m.catalog.Len(),
		"persistent", b.store != nil,
	)
	return m
}
