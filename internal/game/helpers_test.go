package game

import (
	"testing"

	"ballattax/internal/audio"
	"ballattax/internal/gfx"
	"ballattax/internal/scene"
	"ballattax/internal/storage"
)

type fakeEnv struct {
	w, h  int
	clear gfx.RGBA
}

func (e *fakeEnv) Size() (int, int)         { return e.w, e.h }
func (e *fakeEnv) SetClearColor(c gfx.RGBA) { e.clear = c }

type switchCall struct {
	name string
	args scene.Args
}

type fakeSwitcher struct {
	calls []switchCall
}

func (f *fakeSwitcher) SwitchTo(name string, args scene.Args) error {
	f.calls = append(f.calls, switchCall{name, args})
	return nil
}

type beep struct {
	freq, duration, volume, timbre, pan float64
}

type recordingBeeper struct {
	beeps []beep
}

func (r *recordingBeeper) Beep(freq, duration, volume, timbre, pan float64) {
	r.beeps = append(r.beeps, beep{freq, duration, volume, timbre, pan})
}

type drawCall struct {
	op         string
	color      gfx.RGBA
	x, y, w, h float64
	text       string
}

// recordingSurface logs every draw call with the colour active at the time.
type recordingSurface struct {
	color gfx.RGBA
	calls []drawCall
}

func (r *recordingSurface) SetColor(c gfx.RGBA) { r.color = c }

func (r *recordingSurface) FillRect(x, y, w, h float64) {
	r.calls = append(r.calls, drawCall{op: "rect", color: r.color, x: x, y: y, w: w, h: h})
}

func (r *recordingSurface) FillCircle(x, y, radius float64) {
	r.calls = append(r.calls, drawCall{op: "circle", color: r.color, x: x, y: y, w: radius})
}

func (r *recordingSurface) FillText(x, y float64, text string, scale float64, align gfx.Align) {
	r.calls = append(r.calls, drawCall{op: "text", color: r.color, x: x, y: y, w: scale, text: text})
}

func (r *recordingSurface) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

type harness struct {
	env      *fakeEnv
	store    *storage.MemStore
	beeper   *recordingBeeper
	sched    *audio.Scheduler
	switcher *fakeSwitcher
}

func newHarness() *harness {
	b := &recordingBeeper{}
	return &harness{
		env:      &fakeEnv{w: 600, h: 400},
		store:    storage.NewMemStore(),
		beeper:   b,
		sched:    audio.NewScheduler(b),
		switcher: &fakeSwitcher{},
	}
}

func (h *harness) deps() Deps {
	opts := DefaultOptions()
	opts.Seed = 7
	return Deps{
		Env:      h.env,
		Store:    h.store,
		Sched:    h.sched,
		Switcher: h.switcher,
		Options:  opts,
	}
}

func (h *harness) session(t *testing.T, players int) *GameSession {
	t.Helper()
	s := NewSession(h.deps())
	if err := s.Enter(scene.Args{"players": players}); err != nil {
		t.Fatalf("enter: %v", err)
	}
	return s
}

// idle returns an input set with n devices at rest.
func idle(n int) scene.Inputs {
	in := scene.NewInputs()
	for i := 1; i < n; i++ {
		in.Apply(scene.Event{Kind: scene.EventAxis, Device: i})
	}
	return in.Snapshot()
}

func inputs(evts ...scene.Event) scene.Inputs {
	in := scene.NewInputs()
	for _, e := range evts {
		in.Apply(e)
	}
	return in.Snapshot()
}

func axis(dev, id int, v float64) scene.Event {
	return scene.Event{Kind: scene.EventAxis, Device: dev, ID: id, Value: v}
}

func button(dev, id int, v float64) scene.Event {
	return scene.Event{Kind: scene.EventButton, Device: dev, ID: id, Value: v}
}

// record collects every event of the given types emitted on bus.
func record(bus *EventBus, types ...EventType) *[]Event {
	var got []Event
	for _, t := range types {
		bus.Subscribe(t, func(e Event) { got = append(got, e) })
	}
	return &got
}
