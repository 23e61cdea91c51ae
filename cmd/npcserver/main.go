// Command npcserver runs a Dragonfly server with NPC support.
//
// Configuration is read from the environment; see envConfig. Behaviour
// settings use the NPC_ prefix, e.g. NPC_COMMAND_COOLDOWN=2s.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/df-mc/dragonfly/server"
	"github.com/oriumgames/npc"
	"github.com/oriumgames/npc/host"
	"github.com/oriumgames/npc/internal/config"
	"github.com/oriumgames/npc/internal/telemetry"
	"github.com/oriumgames/npc/store/sqlite"
	"golang.org/x/text/language"
)

type envConfig struct {
	Address        string   `env:"NPC_ADDRESS" envDefault:":19132"`
	WorldFolder    string   `env:"NPC_WORLD" envDefault:"world"`
	DBPath         string   `env:"NPC_DB_PATH" envDefault:"npc.db"`
	Operators      []string `env:"NPC_OPERATORS" envSeparator:","`
	CooldownBypass []string `env:"NPC_COOLDOWN_BYPASS" envSeparator:","`
	Language       string   `env:"NPC_LANGUAGE" envDefault:"en"`
	LogLevel       string   `env:"NPC_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint   string   `env:"NPC_OTEL_ENDPOINT"`
	OTelService    string   `env:"NPC_OTEL_SERVICE" envDefault:"npcserver"`
}

func main() {
	var cfg envConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("npcserver: %v", err)
	}
	var settings npc.Settings
	if err := config.ParseEnvPrefixed(&settings, "NPC_"); err != nil {
		config.Exitf("npcserver: %v", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		config.Exitf("npcserver: log level: %v", err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lang, err := language.Parse(cfg.Language)
	if err != nil {
		config.Exitf("npcserver: language: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelService, cfg.OTelEndpoint)
	if err != nil {
		config.Exitf("npcserver: telemetry: %v", err)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		config.Exitf("npcserver: %v", err)
	}

	uc := server.DefaultConfig()
	uc.Network.Address = cfg.Address
	uc.World.Folder = cfg.WorldFolder
	conf, err := uc.Config(log)
	if err != nil {
		config.Exitf("npcserver: server config: %v", err)
	}
	srv := conf.New()

	ops := host.NewOperators(cfg.Operators...)
	for _, name := range cfg.CooldownBypass {
		ops.Grant(name, npc.CapBypassCooldown)
	}
	h := host.New(srv.World(), log, ops)

	catalog := npc.NewCatalog()
	npc.RegisterAll(catalog, h.Constructor())

	mngr := npc.NewBuilder().
		Catalog(catalog).
		Settings(settings).
		Presenter(h).
		Directory(h.Directory()).
		Dispatcher(h).
		Effects(h).
		Authorizer(ops).
		Store(store).
		Logger(log).
		Language(lang).
		Init()
	h.Attach(mngr)

	restoreCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if _, err := mngr.Restore(restoreCtx); err != nil {
		log.Warn("npcserver: some actors could not be restored", "error", err)
	}
	cancel()

	go func() {
		<-ctx.Done()
		log.Info("npcserver: shutting down")
		h.Close()
		mngr.Close()
		if err := srv.Close(); err != nil {
			log.Error("npcserver: close server", "error", err)
		}
	}()

	srv.Listen()
	log.Info("npcserver: listening", "address", cfg.Address, "operators", ops.Len())
	for p := range srv.Accept() {
		h.Accept(p)
	}

	if err := store.Close(); err != nil {
		log.Error("npcserver: close store", "error", err)
	}
	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFlush()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("npcserver: shutdown tracing", "error", err)
	}
}
