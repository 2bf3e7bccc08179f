package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/motionctl/internal/application/game"
	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/application/scene/playing"
	"github.com/younwookim/motionctl/internal/application/system"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from this directory and hot-reload motion settings (default: embedded)")
	stageName := flag.String("stage", "demo", "Stage to load from stages/")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "Run -replay without a window and print the result")
	verbose := flag.Bool("v", false, "Log per-jump debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Stage != "" {
			*stageName = data.Stage
		}
	}

	cfg, err := loader.LoadAll(*stageName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	stage := system.LoadStage(cfg.Stage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		if data == nil {
			log.Fatal("-headless requires -replay")
		}
		if err := runHeadless(ctx, os.Stdout, cfg.Motion, stage, *data, logger); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	opts := []playing.Option{playing.WithLogger(logger)}
	switch {
	case data != nil:
		opts = append(opts, playing.WithReplay(*data))
	case *recordFlag != "":
		opts = append(opts, playing.WithRecording(*recordFlag))
	}

	if *configDir != "" {
		watcher, err := config.NewWatcher(*configDir)
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			reloads := config.WatchMotion(ctx, watcher, loader.LoadMotion, logger)
			opts = append(opts, playing.WithReloads(reloads))
			log.Printf("Watching %s for motion changes", *configDir)
		}
	}

	display := cfg.Motion.Display
	g := game.New(playing.New(cfg.Motion, *stageName, stage, opts...),
		display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Motion Controller Demo")
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader reads from dir when given, otherwise from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
