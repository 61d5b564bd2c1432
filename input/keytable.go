package input

import "unicode"

// KeyTable maps keys to actions
// Rune actions fire on key release, special key actions fire on key press
type KeyTable struct {
	// Runes are matched case-insensitively, stored lower-case
	Runes map[rune]Action

	// Special keys (Escape)
	SpecialKeys map[Key]Action
}

// DefaultKeyTable returns the stock bindings: Space run/pause, R clear, G grid, Escape quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			' ': ActionToggleRun,
			'r': ActionClear,
			'g': ActionGrid,
		},
		SpecialKeys: map[Key]Action{
			KeyEscape: ActionQuit,
		},
	}
}

// RuneAction returns the action bound to r
func (kt *KeyTable) RuneAction(r rune) Action {
	if kt == nil {
		return ActionNone
	}
	return kt.Runes[unicode.ToLower(r)]
}

// KeyAction returns the action bound to a special key
func (kt *KeyTable) KeyAction(k Key) Action {
	if kt == nil {
		return ActionNone
	}
	return kt.SpecialKeys[k]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes:       make(map[rune]Action, len(kt.Runes)),
		SpecialKeys: make(map[Key]Action, len(kt.SpecialKeys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	return c
}
