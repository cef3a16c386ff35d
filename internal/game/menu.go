package game

import (
	"log/slog"

	"ballattax/internal/audio"
	"ballattax/internal/gfx"
	"ballattax/internal/scene"
)

type menuItem struct {
	label   string
	players int // 0 quits
	x, y    float64
}

// Menu is the title scene: pick single player, multiplayer or exit.
// Up/down on any device moves the selection, button 0 activates it.
type Menu struct {
	scene.Base

	env      Env
	sched    *audio.Scheduler
	switcher Switcher

	items    []menuItem
	Selected int // -1 until the player first moves
	running  bool
	prevY    float64
	// chordArmed turns true once the quit chord has been released, so a
	// chord held while leaving the game does not also close the menu.
	chordArmed bool

	w, h  float64
	scale float64
}

func NewMenu(deps Deps) *Menu {
	return &Menu{
		env:      deps.Env,
		sched:    deps.Sched,
		switcher: deps.Switcher,
	}
}

func (m *Menu) Enter(scene.Args) error {
	w, h := m.env.Size()
	m.w, m.h = float64(w), float64(h)
	m.scale = min(m.w/MenuRefWidth, m.h/MenuRefHeight)
	m.items = []menuItem{
		{label: "single player", players: 1},
		{label: "multiplayer", players: 2},
		{label: "exit"},
	}
	for i := range m.items {
		m.items[i].x = m.w / 2
		m.items[i].y = m.h/2 + MenuItemStride*m.scale*float64(i+1)
	}
	m.Selected = -1
	m.running = true
	m.prevY = 0
	m.chordArmed = false
	m.env.SetClearColor(gfx.Palette.MenuBG)
	return nil
}

func (m *Menu) Update(dt float64, in scene.Inputs) (bool, error) {
	m.sched.Advance(dt)

	var axisY float64
	var pressed, chord bool
	for i := 0; i < in.Len(); i++ {
		dev := in.Device(i)
		if axisY == 0 {
			axisY = dev.Axis(1)
		}
		pressed = pressed || dev.Button(0) != 0
		chord = chord || (dev.Pressed(QuitButtonA) && dev.Pressed(QuitButtonB))
	}

	if chord && m.chordArmed {
		slog.Info("quit chord in menu")
		return false, nil
	}
	if !chord {
		m.chordArmed = true
	}

	if pressed {
		switched, err := m.activate(m.Selected)
		if err != nil {
			return false, err
		}
		if switched {
			return true, nil
		}
	}

	if m.prevY == 0 && axisY != 0 {
		freq, step := 120.0, 1
		if axisY < 0 {
			freq, step = 60.0, -1
		}
		m.sched.PlayNow(freq, 0.01, 0.2, audio.DefaultTimbre, 0)
		m.Selected += step
		if m.Selected >= len(m.items) {
			m.Selected = 0
		} else if m.Selected < 0 {
			m.Selected = len(m.items) - 1
		}
	}
	m.prevY = axisY
	return m.running, nil
}

// activate runs the item at idx and reports whether the scene was switched
// away from the menu.
func (m *Menu) activate(idx int) (bool, error) {
	if idx < 0 || idx >= len(m.items) {
		return false, nil
	}
	it := m.items[idx]
	if it.players == 0 {
		m.running = false
		return false, nil
	}
	if err := m.switcher.SwitchTo(SceneGame, scene.Args{"players": it.players}); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Menu) Draw(sf gfx.Surface) {
	sf.SetColor(gfx.Palette.MenuBG)
	sf.FillRect(0, 0, m.w, m.h)

	sf.SetColor(gfx.Palette.White)
	sf.FillText(m.w/2, m.h*0.3, "BALLATTAX", 6*m.scale, gfx.AlignCenter)

	for i, it := range m.items {
		if i == m.Selected {
			sf.SetColor(gfx.Palette.White)
		} else {
			sf.SetColor(gfx.Palette.MenuDim)
		}
		sf.FillText(it.x, it.y, it.label, 2.5*m.scale, gfx.AlignCenter)
	}
}
