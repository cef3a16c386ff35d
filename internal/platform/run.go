// Package platform is the desktop host: a glfw window with an OpenGL
// surface, keyboard and joystick input, and oto audio output.
package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"ballattax/internal/audio"
	"ballattax/internal/config"
	"ballattax/internal/game"
	"ballattax/internal/gfx"
	"ballattax/internal/scene"
	"ballattax/internal/storage"
)

// MaxFrameDelta caps the simulated time of one frame after a stall.
const MaxFrameDelta = 0.1

// Run opens the window and drives the scenes until a scene asks to stop,
// the window is closed, or a scene fails.
func Run(cfg config.Config, start string, args scene.Args) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	synth := audio.NewSynth(cfg.Audio.SampleRate, openOutput(cfg.Audio))
	sched := audio.NewScheduler(synth)

	h := &host{win: window, clear: gfx.Palette.Black}
	d := scene.NewDispatcher()
	defer d.Close()
	game.Register(d, game.Deps{
		Env:   h,
		Store: openStore(cfg.Storage),
		Sched: sched,
		Options: game.Options{
			MaxVelocity: cfg.Game.MaxVelocity,
			LossDelay:   cfg.Game.LossDelay,
			Seed:        cfg.Game.Seed,
		},
	})

	input := NewInput(d.Input)
	input.Attach(window)

	if err := d.SwitchTo(start, args); err != nil {
		return err
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		input.Poll()

		running, err := d.Update(dt)
		if err != nil {
			return fmt.Errorf("update %s: %w", d.Name(), err)
		}
		if !running {
			slog.Info("scene ended the loop", "scene", d.Name())
			break
		}

		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()
		rend.BeginFrame(winW, winH, fbW, fbH, h.clear)
		d.Draw(rend)
		rend.EndFrame()
		window.SwapBuffers()
	}
	return nil
}

// openOutput falls back to silence when audio is off or the device fails.
func openOutput(cfg config.Audio) audio.Output {
	if !cfg.Enabled {
		return audio.Silent{}
	}
	out, err := audio.NewOtoOutput(cfg.SampleRate, cfg.Volume)
	if err != nil {
		slog.Warn("audio init failed, continuing without sound", "err", err)
		return audio.Silent{}
	}
	return out
}

// openStore falls back to memory when the file cannot be used; scores then
// last for this run only.
func openStore(cfg config.Storage) storage.Store {
	if cfg.Path == "" {
		return storage.NewMemStore()
	}
	st, err := storage.OpenFile(cfg.Path)
	if err != nil {
		slog.Warn("storage unavailable, keeping scores in memory", "path", cfg.Path, "err", err)
		return storage.NewMemStore()
	}
	slog.Debug("storage opened", "path", st.Path())
	return st
}
