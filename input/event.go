package input

import (
	"fmt"

	"github.com/lixenwraith/clothsim/vmath"
)

// EventType discriminates decoded input events
type EventType uint8

const (
	EventNone EventType = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventKeyDown
	EventKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventPointerMove:
		return "PointerMove"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "None"
	}
}

// Button identifies a pointer button
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonOther
)

// Key identifies a key; printable keys use KeyRune with Event.Rune set
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyShift
	KeyControl
	KeyMeta
	KeyEscape
)

// Event is a decoded input event as delivered by a front end
// Pointer events use Button and Pos; key events use Key and Rune
type Event struct {
	Type   EventType
	Button Button
	Pos    vmath.Vec2
	Key    Key
	Rune   rune
}

func (e Event) String() string {
	switch e.Type {
	case EventPointerDown, EventPointerUp:
		return fmt.Sprintf("%s(btn=%d %.1f,%.1f)", e.Type, e.Button, e.Pos.X, e.Pos.Y)
	case EventPointerMove:
		return fmt.Sprintf("%s(%.1f,%.1f)", e.Type, e.Pos.X, e.Pos.Y)
	case EventKeyDown, EventKeyUp:
		if e.Key == KeyRune {
			return fmt.Sprintf("%s(%q)", e.Type, e.Rune)
		}
		return fmt.Sprintf("%s(key=%d)", e.Type, e.Key)
	}
	return e.Type.String()
}

func PointerDown(b Button, x, y float64) Event {
	return Event{Type: EventPointerDown, Button: b, Pos: vmath.V2(x, y)}
}

func PointerUp(b Button, x, y float64) Event {
	return Event{Type: EventPointerUp, Button: b, Pos: vmath.V2(x, y)}
}

func PointerMove(x, y float64) Event {
	return Event{Type: EventPointerMove, Pos: vmath.V2(x, y)}
}

func KeyDown(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

func KeyUp(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

func RuneDown(r rune) Event {
	return Event{Type: EventKeyDown, Key: KeyRune, Rune: r}
}

func RuneUp(r rune) Event {
	return Event{Type: EventKeyUp, Key: KeyRune, Rune: r}
}

// IsDeleteModifier reports whether the key toggles delete mode
func (k Key) IsDeleteModifier() bool {
	return k == KeyShift
}

// IsDragModifier reports whether the key toggles drag mode; Meta acts as Control
func (k Key) IsDragModifier() bool {
	return k == KeyControl || k == KeyMeta
}
