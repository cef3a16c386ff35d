package scene

import (
	"fmt"
	"log/slog"

	"ballattax/internal/gfx"
)

// Factory builds a fresh scene for a registered name.
type Factory func() Scene

// Dispatcher owns the active scene slot and the shared input state. Callbacks
// are forwarded to exactly one scene; scene errors are returned to the caller
// untouched and no recovery is attempted.
type Dispatcher struct {
	current   Scene
	name      string
	inputs    *Inputs
	factories map[string]Factory
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		inputs:    NewInputs(),
		factories: make(map[string]Factory),
	}
}

// Register binds name to a scene factory for SwitchTo.
func (d *Dispatcher) Register(name string, f Factory) {
	d.factories[name] = f
}

// Current returns the active scene, or nil.
func (d *Dispatcher) Current() Scene { return d.current }

// Name returns the registered name of the active scene; it is empty when the
// scene was installed with Switch.
func (d *Dispatcher) Name() string { return d.name }

// Inputs exposes the shared input state. Only the dispatcher mutates it.
func (d *Dispatcher) Inputs() *Inputs { return d.inputs }

// Switch exits the active scene, installs next and enters it with args. Exit
// of the old scene always completes before Enter of the new one begins.
func (d *Dispatcher) Switch(next Scene, args Args) error {
	return d.install("", next, args)
}

// SwitchTo builds the scene registered under name and switches to it.
func (d *Dispatcher) SwitchTo(name string, args Args) error {
	f, ok := d.factories[name]
	if !ok {
		return fmt.Errorf("unknown scene %q", name)
	}
	return d.install(name, f(), args)
}

func (d *Dispatcher) install(name string, next Scene, args Args) error {
	if d.current != nil {
		d.current.Exit()
	}
	d.current = next
	d.name = name
	slog.Debug("scene switched", "scene", name)
	if next == nil {
		return nil
	}
	if args == nil {
		args = Args{}
	}
	if err := next.Enter(args); err != nil {
		if name == "" {
			return fmt.Errorf("enter scene: %w", err)
		}
		return fmt.Errorf("enter scene %s: %w", name, err)
	}
	return nil
}

// Input records evt in the input state and forwards it verbatim to the
// active scene.
func (d *Dispatcher) Input(evt Event) {
	d.inputs.Apply(evt)
	if d.current != nil {
		d.current.Input(evt)
	}
}

// Update forwards to the active scene with a snapshot of the input state.
// Without an active scene it reports false.
func (d *Dispatcher) Update(dt float64) (bool, error) {
	if d.current == nil {
		return false, nil
	}
	return d.current.Update(dt, d.inputs.Snapshot())
}

// Draw forwards to the active scene.
func (d *Dispatcher) Draw(s gfx.Surface) {
	if d.current != nil {
		d.current.Draw(s)
	}
}

// Close exits the active scene and empties the slot.
func (d *Dispatcher) Close() {
	if d.current != nil {
		d.current.Exit()
	}
	d.current = nil
	d.name = ""
}
