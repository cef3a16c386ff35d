package platform

import (
	"log/slog"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"ballattax/internal/scene"
)

// AxisDeadzone zeroes small stick deflections so a resting stick reads 0.
const AxisDeadzone = 0.25

// keyBinding maps a key to a control on one of the two keyboard devices.
// device is relative to the first keyboard device.
type keyBinding struct {
	device int
	kind   string
	id     int
	value  float64
}

// Keyboard devices come after the joysticks. The first uses the arrows and
// the keys around them, the second WASD and 1-4.
var keyBindings = map[glfw.Key]keyBinding{
	glfw.KeyLeft:         {0, scene.EventAxis, 0, -1},
	glfw.KeyRight:        {0, scene.EventAxis, 0, 1},
	glfw.KeyUp:           {0, scene.EventAxis, 1, -1},
	glfw.KeyDown:         {0, scene.EventAxis, 1, 1},
	glfw.KeyEnter:        {0, scene.EventButton, 0, 1},
	glfw.KeyBackspace:    {0, scene.EventButton, 1, 1},
	glfw.KeyRightAlt:     {0, scene.EventButton, 2, 1},
	glfw.KeyRightControl: {0, scene.EventButton, 3, 1},
	glfw.KeyTab:          {0, scene.EventButton, 6, 1},
	glfw.KeyEscape:       {0, scene.EventButton, 7, 1},

	glfw.KeyA: {1, scene.EventAxis, 0, -1},
	glfw.KeyD: {1, scene.EventAxis, 0, 1},
	glfw.KeyW: {1, scene.EventAxis, 1, -1},
	glfw.KeyS: {1, scene.EventAxis, 1, 1},
	glfw.Key1: {1, scene.EventButton, 0, 1},
	glfw.Key2: {1, scene.EventButton, 1, 1},
	glfw.Key3: {1, scene.EventButton, 2, 1},
	glfw.Key4: {1, scene.EventButton, 3, 1},
}

// keyEvent translates a key transition. Releasing any bound key resets its
// control to 0; repeats are ignored.
func keyEvent(key glfw.Key, action glfw.Action, base int) (scene.Event, bool) {
	b, ok := keyBindings[key]
	if !ok || action == glfw.Repeat {
		return scene.Event{}, false
	}
	evt := scene.Event{Kind: b.kind, Device: base + b.device, ID: b.id}
	if action == glfw.Press {
		evt.Value = b.value
	}
	return evt, true
}

// joystickState remembers the last reported values of one controller so
// only changes become events.
type joystickState struct {
	joy     glfw.Joystick
	device  int
	axes    []float64
	buttons []float64
}

// Input feeds glfw keyboard and joystick state into a scene sink.
type Input struct {
	sink      func(scene.Event)
	joysticks []*joystickState
	keyBase   int
}

// NewInput claims device ids for the joysticks connected now; the keyboard
// devices follow them.
func NewInput(sink func(scene.Event)) *Input {
	in := &Input{sink: sink}
	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		if !j.Present() {
			continue
		}
		slog.Info("joystick", "device", len(in.joysticks), "name", j.GetName())
		in.joysticks = append(in.joysticks, &joystickState{joy: j, device: len(in.joysticks)})
	}
	in.keyBase = len(in.joysticks)
	return in
}

// KeyboardDevice is the device id of the arrow-key player.
func (in *Input) KeyboardDevice() int { return in.keyBase }

func (in *Input) Attach(win *glfw.Window) {
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if evt, ok := keyEvent(key, action, in.keyBase); ok {
			in.sink(evt)
		}
	})
}

// Poll reads every claimed joystick and reports changed controls.
func (in *Input) Poll() {
	for _, js := range in.joysticks {
		if !js.joy.Present() {
			continue
		}
		axes := js.joy.GetAxes()
		raw := make([]float64, len(axes))
		for i, v := range axes {
			raw[i] = float64(v)
		}
		btns := js.joy.GetButtons()
		pressed := make([]float64, len(btns))
		for i, a := range btns {
			if a == glfw.Press {
				pressed[i] = 1
			}
		}
		js.update(raw, pressed, in.sink)
	}
}

func (js *joystickState) update(axes, buttons []float64, sink func(scene.Event)) {
	js.axes = growTo(js.axes, len(axes))
	for i, v := range axes {
		v = deadzone(v)
		if v != js.axes[i] {
			js.axes[i] = v
			sink(scene.Event{Kind: scene.EventAxis, Device: js.device, ID: i, Value: v})
		}
	}
	js.buttons = growTo(js.buttons, len(buttons))
	for i, v := range buttons {
		if v != js.buttons[i] {
			js.buttons[i] = v
			sink(scene.Event{Kind: scene.EventButton, Device: js.device, ID: i, Value: v})
		}
	}
}

func deadzone(v float64) float64 {
	if math.Abs(v) < AxisDeadzone {
		return 0
	}
	return v
}

func growTo(v []float64, n int) []float64 {
	for len(v) < n {
		v = append(v, 0)
	}
	return v
}
