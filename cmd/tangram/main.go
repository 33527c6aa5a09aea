package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cbodonnell/tangram/client/game"
	"github.com/cbodonnell/tangram/client/scenes"
	"github.com/cbodonnell/tangram/pkg/api"
	"github.com/cbodonnell/tangram/pkg/config"
	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/cbodonnell/tangram/pkg/queue"
	"github.com/cbodonnell/tangram/pkg/state"
	"github.com/cbodonnell/tangram/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

const completionQueueSize = 16

func main() {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		panic(fmt.Sprintf("Failed to load env file: %v", err))
	}

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to parse config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting tangram version %s", version.Get())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("Shuffle seed is %d", seed)

	completionQueue := queue.NewInMemoryQueue[types.Completion](completionQueueSize)
	manager := puzzle.NewManager(puzzle.NewManagerOptions{
		Rand:     rand.New(rand.NewSource(seed)),
		Notifier: puzzle.NewQueueNotifier(completionQueue),
	})

	if cfg.DebugAddr != "" {
		ctx := context.Background()
		store := state.NewInMemorySnapshotStore()
		if err := store.Set(ctx, manager.Snapshot()); err != nil {
			panic(fmt.Sprintf("Failed to store initial snapshot: %v", err))
		}
		manager.Subscribe(store.Observe(ctx))

		debugServer := api.NewDebugServer(api.NewDebugServerOptions{
			Addr:  cfg.DebugAddr,
			Store: store,
		})
		go debugServer.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := debugServer.Stop(shutdownCtx); err != nil {
				log.Error("Failed to stop debug server: %v", err)
			}
		}()
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:       cfg.Debug,
		Manager:     manager,
		Completions: completionQueue,
		HintImage:   cfg.HintImage,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}
	defer g.Close()

	ebiten.SetWindowSize(int(float64(scenes.ScreenWidth)*cfg.Scale), int(float64(scenes.ScreenHeight)*cfg.Scale))
	ebiten.SetWindowTitle("Tangram")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
