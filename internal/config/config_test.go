package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, found, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil || found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	d := Default()
	if c.Window != d.Window || c.Game != d.Game || c.Audio != d.Audio {
		t.Fatalf("expected defaults, got %+v", c)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[window]
width = 800
fullscreen = true

[game]
seed = 99
loss_delay = 1.5

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, found, err := Load(path)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if c.Window.Width != 800 || c.Window.Height != 480 || !c.Window.Fullscreen {
		t.Fatalf("window not merged: %+v", c.Window)
	}
	if c.Game.Seed != 99 || c.Game.LossDelay != 1.5 || c.Game.MaxVelocity != 12 {
		t.Fatalf("game not merged: %+v", c.Game)
	}
	if lvl, _ := ParseLevel(c.Log.Level); lvl != slog.LevelDebug {
		t.Fatalf("log level: %v", c.Log.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[audio]\nvolume = 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := os.WriteFile(path, []byte("[window\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	c := Default()
	c.Window.Title = "test"
	c.Storage.Path = ""
	if err := Write(path, c); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, _, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Window.Title != "test" || got.Storage.Path != "" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestParseLevel(t *testing.T) {
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if lvl, err := ParseLevel("WARN"); err != nil || lvl != slog.LevelWarn {
		t.Fatalf("got %v %v", lvl, err)
	}
}
