package input

import (
	"strings"
	"testing"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		r    rune
		want Action
	}{
		{' ', ActionToggleRun},
		{'r', ActionClear},
		{'R', ActionClear},
		{'g', ActionGrid},
		{'G', ActionGrid},
		{'x', ActionNone},
	}
	for _, tt := range tests {
		if got := kt.RuneAction(tt.r); got != tt.want {
			t.Errorf("RuneAction(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}

	if got := kt.KeyAction(KeyEscape); got != ActionQuit {
		t.Errorf("Escape bound to %v, want quit", got)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"space": "grid",
		"C":     "clear",
		"esc":   "none",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}
	if kt.Runes[' '] != ActionGrid {
		t.Errorf("space alias not resolved: %v", kt.Runes)
	}
	if kt.Runes['c'] != ActionClear {
		t.Errorf("upper-case key not folded: %v", kt.Runes)
	}
	if a, ok := kt.SpecialKeys[KeyEscape]; !ok || a != ActionNone {
		t.Errorf("esc unbind not recorded: %v", kt.SpecialKeys)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data map[string]string
		want string
	}{
		{"unknown action", map[string]string{"g": "explode"}, "unknown action"},
		{"multi-char key", map[string]string{"gg": "grid"}, "invalid rune key"},
	}
	for _, tt := range tests {
		_, err := LoadKeyConfig(tt.data)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestMergeKeyTable(t *testing.T) {
	override, err := LoadKeyConfig(map[string]string{
		"g":     "none",
		"n":     "grid",
		"space": "toggle_run",
	})
	if err != nil {
		t.Fatal(err)
	}

	base := DefaultKeyTable()
	merged := MergeKeyTable(base, override)

	if merged.RuneAction('g') != ActionNone {
		t.Error("Expected g to be unbound")
	}
	if merged.RuneAction('n') != ActionGrid {
		t.Error("Expected n bound to grid")
	}
	if merged.RuneAction('r') != ActionClear {
		t.Error("Expected r to keep default binding")
	}

	// Base must be untouched
	if base.RuneAction('g') != ActionGrid {
		t.Error("MergeKeyTable mutated the base table")
	}
}

func TestEventConstructors(t *testing.T) {
	ev := PointerDown(ButtonLeft, 3, 4)
	if ev.Type != EventPointerDown || ev.Button != ButtonLeft || ev.Pos.X != 3 || ev.Pos.Y != 4 {
		t.Errorf("PointerDown built %+v", ev)
	}
	ev = RuneUp('g')
	if ev.Type != EventKeyUp || ev.Key != KeyRune || ev.Rune != 'g' {
		t.Errorf("RuneUp built %+v", ev)
	}
	if !KeyMeta.IsDragModifier() || !KeyControl.IsDragModifier() || KeyShift.IsDragModifier() {
		t.Error("Drag modifier classification wrong")
	}
	if !KeyShift.IsDeleteModifier() {
		t.Error("Shift must be the delete modifier")
	}
}
