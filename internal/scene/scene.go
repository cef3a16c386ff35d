// Package scene implements the single-slot scene state machine that routes
// host callbacks to the active scene.
package scene

import (
	"math"
	"strconv"

	"ballattax/internal/gfx"
)

// Scene is a gameplay or menu mode. Embed Base to get no-op defaults for the
// callbacks a scene does not care about.
type Scene interface {
	Enter(args Args) error
	Exit()
	Input(evt Event)
	// Update advances the scene. Returning false asks the host to stop.
	Update(dt float64, in Inputs) (bool, error)
	Draw(s gfx.Surface)
}

// Base implements every Scene callback as a no-op. Its Update returns false,
// so a scene that never overrides Update ends the frame loop.
type Base struct{}

func (Base) Enter(Args) error                     { return nil }
func (Base) Exit()                                {}
func (Base) Input(Event)                          {}
func (Base) Update(float64, Inputs) (bool, error) { return false, nil }
func (Base) Draw(gfx.Surface)                     {}

// Args is the argument bag handed to Enter.
type Args map[string]any

// Int reads key as an integer. Integers, floats and numeric strings are
// accepted, fractional values truncated toward zero; anything else
// (including NaN and infinities) yields def.
func (a Args) Int(key string, def int) int {
	v, ok := a[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float32:
		return floatToInt(float64(n), def)
	case float64:
		return floatToInt(n, def)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return floatToInt(f, def)
		}
	}
	return def
}

// PositiveInt is Int with values below 1 replaced by def.
func (a Args) PositiveInt(key string, def int) int {
	if n := a.Int(key, def); n >= 1 {
		return n
	}
	return def
}

func floatToInt(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(f)
}
