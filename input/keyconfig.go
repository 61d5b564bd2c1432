package input

import (
	"fmt"
	"strings"
	"unicode"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in the keymap
var specialKeyNames = map[string]Key{
	"escape": KeyEscape,
	"esc":    KeyEscape,
}

// LoadKeyConfig parses a [keys] table of key name → action name into a sparse override table
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(data map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes:       make(map[rune]Action),
		SpecialKeys: make(map[Key]Action),
	}

	for keyStr, actionName := range data {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			kt.SpecialKeys[k] = action
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		kt.Runes[unicode.ToLower(r)] = action
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	action, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return action, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v == ActionNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}

	return result
}
