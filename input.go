package gradpick

import (
	"image"
)

// Key identifies a key the picker reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeySpace
	KeyEnter
	KeyA
	KeyE
	KeyR
	KeyI
	KeyX
	KeyC
	KeyV
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether every modifier in m2 is held.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// PointerEvent is a pointer action in host coordinates.
type PointerEvent struct {
	Pos    image.Point
	Button Button
	// Clicks is 1 for a single press; presses that are part of a double
	// click carry 2.
	Clicks int
	Mods   Modifiers
}

// Keyboard step sizes.
const (
	positionStep     = 0.01
	positionFineStep = 0.001
)

// dragOutDistance is the vertical pointer travel, in pixels, past which a
// dragged stop is removed.
const dragOutDistance = 50

// inRows reports whether y falls inside r vertically, edges included.
func inRows(y int, r image.Rectangle) bool {
	return y >= r.Min.Y && y <= r.Max.Y
}

// containsInclusive reports whether pt lies in r, edges included.
func containsInclusive(r image.Rectangle, pt image.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && inRows(pt.Y, r)
}

func (p *Picker) overGradient(pt image.Point) bool {
	return p.cfg.Layout.hasGradientStrip() && inRows(pt.Y, p.layout.Gradient)
}

// PointerDown handles a button press.
//
// A press on the gradient strip samples its color into LastColor. A press
// on the stop strip selects the topmost stop under the pointer, or adds a
// new stop centered on the pointer, and starts dragging it.
func (p *Picker) PointerDown(ev PointerEvent) {
	if !p.enabled {
		return
	}
	p.lastPointer = ev.Pos
	canMove := ev.Button == ButtonLeft && ev.Clicks <= 1

	if canMove && p.overGradient(ev.Pos) {
		if p.cfg.AllowPickGradientColor {
			p.sampleColor(ev.Pos)
		}
		canMove = false
	}

	if canMove {
		canMove = containsInclusive(p.layout.Stops, ev.Pos)
	}

	if canMove {
		s, _ := p.stops.StopAt(ev.Pos)
		p.selected = s
		if s == nil && p.cfg.AllowAddColorByClick {
			x := ev.Pos.X - p.layout.Stops.Min.X - p.cfg.StopWidth/2
			_, err := p.AddColorAtPixel(p.lastColor, x)
			canMove = err == nil
		}
	}

	if canMove && p.selected != nil {
		p.dragging = true
		p.dragStartY = ev.Pos.Y
		p.selected.Grab(ev.Pos.Sub(p.layout.Stops.Min))
		p.stops.emit(Event{Kind: EventSelected, Stop: p.selected})
		p.lastColor = p.selected.color
		p.requestRepaint()
	}
}

// PointerMove handles pointer motion and returns the cursor to show.
//
// While dragging, the stop follows the pointer. Once the pointer leaves
// the press row by more than 50 pixels the stop is removed, unless that
// would go below the minimum count; moving back adds it again with the
// same color.
func (p *Picker) PointerMove(ev PointerEvent) Cursor {
	p.lastPointer = ev.Pos

	cursor := CursorHand
	if p.cfg.AllowPickGradientColor && p.overGradient(ev.Pos) {
		cursor = CursorCross
	}
	if !p.enabled {
		return cursor
	}

	if !p.dragging {
		if p.cfg.ShowPosition && p.selected == nil {
			p.requestRepaint()
		}
		return cursor
	}

	if p.dragStartY != -1 && abs(ev.Pos.Y-p.dragStartY) > dragOutDistance {
		switch {
		case p.selected != nil && p.cfg.AllowDragOutColor && p.stops.Len() > p.stops.MinimumCount():
			p.lastColor = p.selected.color
			p.stops.Remove(p.selected)
			p.selected = nil
		case p.selected != nil:
			p.moveSelected(ev.Pos)
		}
	} else {
		p.moveSelected(ev.Pos)
	}
	p.requestRepaint()
	return cursor
}

// PointerUp ends a drag with a final move.
func (p *Picker) PointerUp(ev PointerEvent) {
	p.lastPointer = ev.Pos
	if !p.dragging {
		return
	}
	p.dragStartY = -1
	if p.selected != nil {
		p.moveSelected(ev.Pos)
	}
	p.dragging = false
	p.requestRepaint()
}

// Dragging reports whether a stop drag is in progress.
func (p *Picker) Dragging() bool {
	return p.dragging
}

// moveSelected moves the dragged stop to the pointer, or re-adds a stop
// that was dragged out.
func (p *Picker) moveSelected(pt image.Point) {
	x := pt.X - p.layout.Stops.Min.X
	if p.selected == nil {
		if !p.stops.CanAdd() || !p.cfg.AllowAddColorByClick {
			return
		}
		if _, err := p.AddColorAtPixel(p.lastColor, x); err != nil {
			return
		}
	} else {
		before := p.selected.Position()
		p.selected.MoveTo(x)
		if p.selected.Position() == before {
			return
		}
	}
	p.stops.emit(Event{Kind: EventMoved, Stop: p.selected})
}

// Wheel nudges the selected stop by one percent per notch, in the sign of
// delta.
func (p *Picker) Wheel(delta int) {
	if !p.enabled || !p.cfg.AllowToHandleMouseWheel || p.selected == nil || delta == 0 {
		return
	}
	step := positionStep
	if delta < 0 {
		step = -step
	}
	p.nudge(step)
}

// DoubleClick opens the color dialog for the selected stop. With a
// separate gradient strip only clicks below it count.
func (p *Picker) DoubleClick(ev PointerEvent) error {
	if !p.enabled || p.selected == nil || !p.cfg.AllowColorDialog {
		return nil
	}
	canShow := ev.Button == ButtonLeft
	if p.cfg.Layout.hasGradientStrip() {
		canShow = ev.Pos.Y >= p.layout.Gradient.Max.Y
	}
	if !canShow {
		return nil
	}
	return p.ShowColorDialog()
}

// KeyDown handles a key press when Config.AllowToHandleKeys is set.
//
//	Tab, Shift+Tab    select next / previous stop, wrapping
//	Left/Down         move selected stop by -1% (-0.1% with Alt)
//	Right/Up          move selected stop by +1% (+0.1% with Alt)
//	Home, End         move selected stop to 0 or 1
//	Delete            remove selected stop, select the next one
//	A                 add a stop with LastColor at a random pixel
//	E                 space stops evenly
//	R                 randomize; Alt keeps positions, Ctrl keeps colors
//	I                 invert colors
//	X, C, V           cut, copy, paste
//	Space, Enter      open the color dialog
//
// Errors come from the clipboard, the dialog and the stop limit.
func (p *Picker) KeyDown(k Key, mods Modifiers) error {
	if !p.enabled || !p.cfg.AllowToHandleKeys {
		return nil
	}

	step := positionStep
	if mods.Has(ModAlt) {
		step = positionFineStep
	}

	switch k {
	case KeyTab:
		p.SelectNext(mods.Has(ModShift) || mods.Has(ModCtrl))
	case KeyLeft, KeyDown:
		p.nudge(-step)
	case KeyRight, KeyUp:
		p.nudge(step)
	case KeyHome:
		p.moveSelectedTo(0)
	case KeyEnd:
		p.moveSelectedTo(1)
	case KeyDelete:
		if p.selected != nil {
			p.removeAndAdvance()
		}
	case KeyA:
		x := p.stops.rng.IntN(max(p.stops.geom.Width, 1))
		if _, err := p.AddColorAtPixel(p.lastColor, x); err != nil {
			return err
		}
	case KeyE:
		p.EvenlyAlign()
	case KeyR:
		p.Randomize(!mods.Has(ModAlt), !mods.Has(ModCtrl))
	case KeyI:
		p.InvertColors()
	case KeyX:
		if p.selected != nil {
			return p.Cut()
		}
	case KeyC:
		if p.selected != nil {
			return p.Copy()
		}
	case KeyV:
		if _, err := p.Paste(); err != nil {
			return err
		}
	case KeySpace, KeyEnter:
		if p.selected != nil {
			return p.ShowColorDialog()
		}
	}
	return nil
}

func (p *Picker) nudge(delta float64) {
	if s := p.selected; s != nil {
		p.moveSelectedTo(s.position + delta)
	}
}

func (p *Picker) moveSelectedTo(pos float64) {
	s := p.selected
	if s == nil {
		return
	}
	s.SetPosition(pos)
	p.stops.emit(Event{Kind: EventMoved, Stop: s})
}
