package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/clothsim/input"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		key  ebiten.Key
		down bool
		want input.Event
		ok   bool
	}{
		{"space down", ebiten.KeySpace, true, input.RuneDown(' '), true},
		{"space up", ebiten.KeySpace, false, input.RuneUp(' '), true},
		{"letter lowercased", ebiten.KeyR, false, input.RuneUp('r'), true},
		{"grid letter", ebiten.KeyG, true, input.RuneDown('g'), true},
		{"digit", ebiten.KeyDigit1, true, input.RuneDown('1'), true},
		{"virtual shift", ebiten.KeyShift, true, input.KeyDown(input.KeyShift), true},
		{"virtual control", ebiten.KeyControl, false, input.KeyUp(input.KeyControl), true},
		{"virtual meta", ebiten.KeyMeta, true, input.KeyDown(input.KeyMeta), true},
		{"escape", ebiten.KeyEscape, true, input.KeyDown(input.KeyEscape), true},
		{"sided shift skipped", ebiten.KeyShiftLeft, true, input.Event{}, false},
		{"sided control skipped", ebiten.KeyControlRight, false, input.Event{}, false},
		{"sided meta skipped", ebiten.KeyMetaLeft, true, input.Event{}, false},
		{"function key skipped", ebiten.KeyF1, true, input.Event{}, false},
		{"enter skipped", ebiten.KeyEnter, true, input.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyEvent(tt.key, tt.down)
			if ok != tt.ok {
				t.Fatalf("keyEvent(%v) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("keyEvent(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeyRune(t *testing.T) {
	tests := []struct {
		name string
		want rune
		ok   bool
	}{
		{"Space", ' ', true},
		{"A", 'a', true},
		{"Z", 'z', true},
		{"Digit0", '0', true},
		{"Digit9", '9', true},
		{"Digit", 0, false},
		{"Digit10", 0, false},
		{"F1", 0, false},
		{"a", 0, false},
		{"ShiftLeft", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		r, ok := keyRune(tt.name)
		if r != tt.want || ok != tt.ok {
			t.Errorf("keyRune(%q) = (%q, %v), want (%q, %v)", tt.name, r, ok, tt.want, tt.ok)
		}
	}
}
