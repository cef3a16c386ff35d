package scene

// Event kinds delivered by the host.
const (
	EventAxis   = "axis"
	EventButton = "button"
)

// Default slot counts for a freshly seen device.
const (
	DefaultAxes    = 2
	DefaultButtons = 8
)

// Event is a single host input event. Value2 is an auxiliary value that is
// zero for axis and button events.
type Event struct {
	Kind   string
	Device int
	ID     int
	Value  float64
	Value2 float64
}

// Device holds the last known axis and button values of one input device.
// Axes are nominally in [-1,1], buttons are 0 or 1.
type Device struct {
	Axes    []float64
	Buttons []float64
}

func newDevice() Device {
	return Device{
		Axes:    make([]float64, DefaultAxes),
		Buttons: make([]float64, DefaultButtons),
	}
}

// Axis returns axis i or 0 when the device has no such axis.
func (d Device) Axis(i int) float64 {
	if i < 0 || i >= len(d.Axes) {
		return 0
	}
	return d.Axes[i]
}

// Button returns button i or 0 when the device has no such button.
func (d Device) Button(i int) float64 {
	if i < 0 || i >= len(d.Buttons) {
		return 0
	}
	return d.Buttons[i]
}

// Pressed reports whether button i is held.
func (d Device) Pressed(i int) bool {
	return d.Button(i) == 1
}

// Inputs is the per-device input state, indexed by device id. It starts with
// one device and grows when an event names an unseen device.
type Inputs struct {
	Devices []Device
}

func NewInputs() *Inputs {
	return &Inputs{Devices: []Device{newDevice()}}
}

// Len returns the number of known devices.
func (in Inputs) Len() int { return len(in.Devices) }

// Device returns device i, or an empty device when i is unknown.
func (in Inputs) Device(i int) Device {
	if i < 0 || i >= len(in.Devices) {
		return Device{}
	}
	return in.Devices[i]
}

// Apply records evt. Unknown kinds and negative indices leave the state
// untouched.
func (in *Inputs) Apply(evt Event) {
	if evt.Device < 0 || evt.ID < 0 {
		return
	}
	for evt.Device >= len(in.Devices) {
		in.Devices = append(in.Devices, newDevice())
	}
	d := &in.Devices[evt.Device]
	switch evt.Kind {
	case EventAxis:
		d.Axes = growTo(d.Axes, evt.ID+1)
		d.Axes[evt.ID] = evt.Value
	case EventButton:
		d.Buttons = growTo(d.Buttons, evt.ID+1)
		d.Buttons[evt.ID] = evt.Value
	}
}

// Snapshot returns a deep copy that scenes may keep without observing later
// events.
func (in Inputs) Snapshot() Inputs {
	out := Inputs{Devices: make([]Device, len(in.Devices))}
	for i, d := range in.Devices {
		out.Devices[i] = Device{
			Axes:    append([]float64(nil), d.Axes...),
			Buttons: append([]float64(nil), d.Buttons...),
		}
	}
	return out
}

func growTo(v []float64, n int) []float64 {
	for len(v) < n {
		v = append(v, 0)
	}
	return v
}
