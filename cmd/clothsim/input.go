package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/clothsim/input"
)

// pointerButtons maps ebiten mouse buttons to controller buttons
var pointerButtons = []struct {
	eb  ebiten.MouseButton
	btn input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonRight, input.ButtonRight},
	{ebiten.MouseButtonMiddle, input.ButtonOther},
}

// inputPoller turns ebiten's polled state into edge events
type inputPoller struct {
	lastX, lastY int
	keys         []ebiten.Key
	events       []input.Event
}

// poll returns this tick's events: key edges, then motion, then button edges
func (p *inputPoller) poll() []input.Event {
	p.events = p.events[:0]

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if ev, ok := keyEvent(k, true); ok {
			p.events = append(p.events, ev)
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if ev, ok := keyEvent(k, false); ok {
			p.events = append(p.events, ev)
		}
	}

	x, y := ebiten.CursorPosition()
	if x != p.lastX || y != p.lastY {
		p.lastX, p.lastY = x, y
		p.events = append(p.events, input.PointerMove(float64(x), float64(y)))
	}

	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			p.events = append(p.events, input.PointerDown(b.btn, float64(x), float64(y)))
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			p.events = append(p.events, input.PointerUp(b.btn, float64(x), float64(y)))
		}
	}
	return p.events
}

// keyEvent translates one key edge; sided modifier keys are skipped in favor of the virtual ones
func keyEvent(k ebiten.Key, down bool) (input.Event, bool) {
	var key input.Key
	switch k {
	case ebiten.KeyShift:
		key = input.KeyShift
	case ebiten.KeyControl:
		key = input.KeyControl
	case ebiten.KeyMeta:
		key = input.KeyMeta
	case ebiten.KeyEscape:
		key = input.KeyEscape
	default:
		r, ok := keyRune(k.String())
		if !ok {
			return input.Event{}, false
		}
		if down {
			return input.RuneDown(r), true
		}
		return input.RuneUp(r), true
	}
	if down {
		return input.KeyDown(key), true
	}
	return input.KeyUp(key), true
}

// keyRune maps ebiten key names ("A", "Digit1", "Space") to the rune the key table binds
func keyRune(name string) (rune, bool) {
	switch {
	case name == "Space":
		return ' ', true
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		return rune(name[0] - 'A' + 'a'), true
	case strings.HasPrefix(name, "Digit") && len(name) == len("Digit")+1:
		return rune(name[len(name)-1]), true
	}
	return 0, false
}
