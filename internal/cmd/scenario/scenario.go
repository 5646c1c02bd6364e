// Package scenario parses scenario command flags and seeds a demo event
// journal into the event store.
package scenario

import (
	"context"
	"flag"
	"log"

	gamescenario "github.com/louisbranch/hexfall/internal/game/scenario"
	entrypoint "github.com/louisbranch/hexfall/internal/platform/cmd"
	"github.com/louisbranch/hexfall/internal/storage/sqlite"
)

// Config holds scenario command configuration.
type Config struct {
	StoragePath string `env:"HEXFALL_STORAGE_PATH" envDefault:"hexfall.db"`
	GameID      string `env:"HEXFALL_GAME_ID"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.StoragePath, "storage", cfg.StoragePath, "The event store path")
	fs.StringVar(&cfg.GameID, "game", cfg.GameID, "The game id to seed (generated when empty)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the demo journal.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScenario, func(ctx context.Context) error {
		events, err := gamescenario.Demo(cfg.GameID)
		if err != nil {
			return err
		}

		store, err := sqlite.Open(cfg.StoragePath)
		if err != nil {
			return err
		}
		defer store.Close()

		gameID := ""
		for _, evt := range events {
			stored, err := store.AppendEvent(ctx, evt)
			if err != nil {
				return err
			}
			gameID = stored.GameID
		}

		log.Printf("seeded game %s with %d events", gameID, len(events))
		return nil
	})
}
