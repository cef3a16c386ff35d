package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ballattax/internal/config"
	"ballattax/internal/game"
	"ballattax/internal/platform"
	"ballattax/internal/scene"
)

func main() {
	var (
		cfgPath     = flag.String("config", "", "path to config.toml (default: user config dir)")
		width       = flag.Int("w", 0, "window width, overrides the config")
		height      = flag.Int("h", 0, "window height, overrides the config")
		fullscreen  = flag.Bool("f", false, "fullscreen")
		start       = flag.String("scene", game.SceneMenu, "first scene: menu or game")
		players     = flag.Int("players", 1, "players when starting straight into the game")
		writeConfig = flag.Bool("write-config", false, "write the effective config and exit")
		debug       = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	cfg, found, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if !found {
		path := *cfgPath
		if path == "" {
			path = config.DefaultPath()
		}
		slog.Info("no config file, using defaults", "path", path)
	}

	if *writeConfig {
		if err := config.Write(*cfgPath, cfg); err != nil {
			slog.Error("writing config", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := platform.Run(cfg, *start, scene.Args{"players": *players}); err != nil {
		slog.Error("ballattax", "err", err)
		os.Exit(1)
	}
}
