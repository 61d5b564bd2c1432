package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clothsim/input"
	"github.com/lixenwraith/clothsim/vmath"
)

// translator converts tcell events into controller events
// Terminals report no key releases and expose modifiers only on mouse events, so every key press
// becomes a down+up pair and Shift/Control transitions are synthesized from mouse modifier masks
type translator struct {
	toWorld func(x, y int) vmath.Vec2

	buttons tcell.ButtonMask
	shift   bool
	drag    bool
	lastX   int
	lastY   int
	moved   bool
}

func newTranslator(toWorld func(x, y int) vmath.Vec2) *translator {
	return &translator{toWorld: toWorld, lastX: -1, lastY: -1}
}

// mouseButtons pairs tcell button bits with controller buttons
var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  input.Button
}{
	{tcell.Button1, input.ButtonLeft},
	{tcell.Button2, input.ButtonRight},
	{tcell.Button3, input.ButtonOther},
}

// quitKey reports keys that leave the program regardless of the key table
func quitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// translate appends the controller events for ev to dst
func (t *translator) translate(dst []input.Event, ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(dst, ev)
	case *tcell.EventMouse:
		return t.mouse(dst, ev)
	}
	return dst
}

func (t *translator) key(dst []input.Event, ev *tcell.EventKey) []input.Event {
	switch ev.Key() {
	case tcell.KeyEscape:
		return append(dst, input.KeyDown(input.KeyEscape), input.KeyUp(input.KeyEscape))
	case tcell.KeyRune:
		r := ev.Rune()
		return append(dst, input.RuneDown(r), input.RuneUp(r))
	}
	return dst
}

func (t *translator) mouse(dst []input.Event, ev *tcell.EventMouse) []input.Event {
	mods := ev.Modifiers()
	dst = t.syncModifier(dst, &t.shift, mods&tcell.ModShift != 0, input.KeyShift)
	dst = t.syncModifier(dst, &t.drag, mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0, input.KeyControl)

	x, y := ev.Position()
	pos := t.toWorld(x, y)
	if !t.moved || x != t.lastX || y != t.lastY {
		t.lastX, t.lastY, t.moved = x, y, true
		dst = append(dst, input.PointerMove(pos.X, pos.Y))
	}

	now := ev.Buttons()
	for _, b := range mouseButtons {
		was := t.buttons&b.mask != 0
		is := now&b.mask != 0
		switch {
		case is && !was:
			dst = append(dst, input.PointerDown(b.btn, pos.X, pos.Y))
		case was && !is:
			dst = append(dst, input.PointerUp(b.btn, pos.X, pos.Y))
		}
	}
	t.buttons = now
	return dst
}

func (t *translator) syncModifier(dst []input.Event, held *bool, now bool, key input.Key) []input.Event {
	if *held == now {
		return dst
	}
	*held = now
	if now {
		return append(dst, input.KeyDown(key))
	}
	return append(dst, input.KeyUp(key))
}
