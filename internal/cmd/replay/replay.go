// Package replay parses replay command flags and derives game state from a
// stored event journal.
package replay

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/hexfall/internal/game/derive"
	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/query"
	entrypoint "github.com/louisbranch/hexfall/internal/platform/cmd"
	"github.com/louisbranch/hexfall/internal/storage"
	boltstore "github.com/louisbranch/hexfall/internal/storage/bbolt"
	"github.com/louisbranch/hexfall/internal/storage/sqlite"
)

// Config holds replay command configuration.
type Config struct {
	StoragePath  string `env:"HEXFALL_STORAGE_PATH" envDefault:"hexfall.db"`
	SnapshotPath string `env:"HEXFALL_SNAPSHOT_PATH"`
	GameID       string `env:"HEXFALL_GAME_ID"`
	UntilTurn    int    `env:"HEXFALL_UNTIL_TURN"`
	UntilSeq     uint64 `env:"HEXFALL_UNTIL_SEQ"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.StoragePath, "storage", cfg.StoragePath, "The event store path")
	fs.StringVar(&cfg.SnapshotPath, "snapshots", cfg.SnapshotPath, "The snapshot store path (optional)")
	fs.StringVar(&cfg.GameID, "game", cfg.GameID, "The game to derive")
	fs.IntVar(&cfg.UntilTurn, "until-turn", cfg.UntilTurn, "Stop replay after this turn")
	fs.Uint64Var(&cfg.UntilSeq, "until-seq", cfg.UntilSeq, "Stop replay after this sequence")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run derives the requested game state, logs a summary, and optionally
// records a snapshot of the derived state.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.GameID) == "" {
		return fmt.Errorf("game id is required")
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceReplay, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.StoragePath)
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := derive.Replay(ctx, store, cfg.GameID, derive.Options{
			UntilSeq:  cfg.UntilSeq,
			UntilTurn: cfg.UntilTurn,
		})
		if err != nil {
			return err
		}

		state := result.State
		log.Printf("game %s: status=%s turn=%d phase=%s events=%d",
			state.GameID, state.Status, state.Turn, state.Phase, result.Applied)
		log.Printf("active units: player=%d opponent=%d",
			len(query.ActiveUnits(state, domain.SidePlayer)),
			len(query.ActiveUnits(state, domain.SideOpponent)))
		if state.Result != nil {
			log.Printf("result: winner=%s reason=%s", state.Result.Winner, state.Result.Reason)
		}

		if cfg.SnapshotPath == "" {
			return nil
		}
		snapshots, err := boltstore.Open(cfg.SnapshotPath)
		if err != nil {
			return err
		}
		defer snapshots.Close()
		return snapshots.PutSnapshot(ctx, storage.Snapshot{
			GameID:  state.GameID,
			Seq:     result.LastSeq,
			Turn:    state.Turn,
			TakenAt: time.Now().UTC(),
			State:   state,
		})
	})
}
