package game

import (
	"time"

	"golang.org/x/exp/rand"

	"ballattax/internal/audio"
	"ballattax/internal/gfx"
	"ballattax/internal/scene"
	"ballattax/internal/storage"
)

// Env is the window the scenes draw into.
type Env interface {
	Size() (w, h int)
	SetClearColor(c gfx.RGBA)
}

// Switcher changes the active scene. *scene.Dispatcher implements it.
type Switcher interface {
	SwitchTo(name string, args scene.Args) error
}

type Options struct {
	MaxVelocity float64 // player speed in units per second at full deflection
	LossDelay   float64 // seconds between a miss and the restart
	Seed        uint64  // 0 seeds from the clock
}

func DefaultOptions() Options {
	return Options{
		MaxVelocity: DefaultMaxVelocity,
		LossDelay:   DefaultLossDelay,
	}
}

// Deps bundles the collaborators shared by the menu and game scenes.
type Deps struct {
	Env      Env
	Store    storage.Store
	Sched    *audio.Scheduler
	Switcher Switcher
	Options  Options
}

// Register installs the menu and game scenes on d. Each switch builds a
// fresh scene.
func Register(d *scene.Dispatcher, deps Deps) {
	if deps.Switcher == nil {
		deps.Switcher = d
	}
	d.Register(SceneMenu, func() scene.Scene { return NewMenu(deps) })
	d.Register(SceneGame, func() scene.Scene { return NewSession(deps) })
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
