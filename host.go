package gradpick

// Host is the UI container a Picker lives in.
type Host interface {
	// RequestRepaint asks the host to call Picker.Paint soon. It may be
	// called many times per input event; hosts should coalesce.
	RequestRepaint()
}

// HostFunc adapts a function to the Host interface.
type HostFunc func()

// RequestRepaint calls f.
func (f HostFunc) RequestRepaint() { f() }

// LimitNotifier is implemented by hosts that surface the "too many stops"
// message to the user. It is called only when
// Config.NotifyOfExceedingLimit is set.
type LimitNotifier interface {
	NotifyLimitExceeded(maximum int)
}

// ColorDialog lets the user choose a color for the selected stop.
type ColorDialog interface {
	// PickColor shows the dialog seeded with the current color. ok is
	// false when the user cancelled.
	PickColor(seed Color) (c Color, ok bool, err error)
}

// ColorDialogFunc adapts a function to the ColorDialog interface.
type ColorDialogFunc func(seed Color) (Color, bool, error)

// PickColor calls f.
func (f ColorDialogFunc) PickColor(seed Color) (Color, bool, error) { return f(seed) }

// Cursor is the pointer shape a host should show over the picker.
type Cursor int

const (
	// CursorHand is shown over the stop strip.
	CursorHand Cursor = iota
	// CursorCross is shown over the gradient when colors can be sampled.
	CursorCross
)
