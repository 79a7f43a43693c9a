// Command petsim runs the mini-pet simulation core.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/config"
	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/offline"
	"github.com/talgya/mini-pet/internal/persistence"
	"github.com/talgya/mini-pet/internal/scheduler"
	"github.com/talgya/mini-pet/internal/world"
)

var configPath string

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "petsim",
		Short: "Deterministic tick-driven virtual pet simulation",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config overriding the defaults")
	root.AddCommand(runCmd(), catchupCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the live simulation loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, db, gs, err := setup()
			if err != nil {
				return err
			}
			defer db.Close()

			rng := rand.New(rand.NewSource(cfg.Seed))

			// Reconcile elapsed real time before going live.
			result := offline.CalculateOfflineProgression(gs, cat, cfg.TickInterval(), time.Now(), rng)
			if result.Applied {
				for _, e := range result.Events {
					slog.Info("while you were away", "event", e.Kind, "detail", e.Detail)
				}
				gs.LastSaveTime = time.Now()
				if err := db.Save(gs); err != nil {
					slog.Error("post-catch-up save failed", "error", err)
				}
			}

			sched := scheduler.New(cat, gs, cfg.TickInterval(), rng).
				WithAutosave(db, cfg.AutosaveEveryTicks)
			sched.AddListener(func(gs *world.GameState, rec scheduler.TickRecord) {
				for _, a := range rec.Actions {
					slog.Info("tick action", "tick", rec.TickNumber, "action", a.Kind.String(), "detail", a.Detail)
				}
			})
			sched.Start()

			if p := gs.Pet; p != nil {
				fmt.Printf("%s the %s is %s (stage %s, tick %d)\n",
					p.Name, p.SpeciesID, p.State, p.Growth.Stage, gs.TickCount)
			}
			fmt.Println("Simulation running... (Ctrl+C to stop)")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			slog.Info("received signal, shutting down", "signal", sig)
			sched.Stop()

			gs.LastSaveTime = time.Now()
			if err := db.Save(gs); err != nil {
				slog.Error("final save failed", "error", err)
			}
			return nil
		},
	}
}

func catchupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catchup",
		Short: "Apply offline progression once and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, db, gs, err := setup()
			if err != nil {
				return err
			}
			defer db.Close()

			rng := rand.New(rand.NewSource(cfg.Seed))
			result := offline.CalculateOfflineProgression(gs, cat, cfg.TickInterval(), time.Now(), rng)
			if !result.Applied {
				fmt.Println("Nothing to catch up.")
				return nil
			}

			fmt.Printf("Processed %d of %d elapsed ticks.\n", result.TicksProcessed, result.TicksElapsed)
			for _, e := range result.Events {
				fmt.Printf("  %s %s\n", e.Kind, e.Detail)
			}

			gs.LastSaveTime = time.Now()
			return db.Save(gs)
		},
	}
}

// setup loads config, catalog, storage, and the game state, creating a
// fresh state with a starter pet on first run.
func setup() (*config.Config, *catalog.Catalog, *persistence.DB, *world.GameState, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	gs, err := db.Load()
	if err != nil {
		db.Close()
		return nil, nil, nil, nil, err
	}
	if gs == nil {
		gs = world.NewGameState(cat)
		gs.Settings.OfflineProgressionEnabled = cfg.OfflineProgression
		p, err := engine.NewPet(cat, cfg.Species, cfg.PetName, time.Now())
		if err != nil {
			db.Close()
			return nil, nil, nil, nil, err
		}
		gs.Pet = p
		gs.LastSaveTime = time.Now()
		if err := db.Save(gs); err != nil {
			slog.Error("initial save failed", "error", err)
		}
		slog.Info("new game created", "pet", p.Name, "species", p.SpeciesID)
	} else {
		slog.Info("game state restored", "tick", gs.TickCount, "has_pet", gs.Pet != nil)
	}

	return cfg, cat, db, gs, nil
}
