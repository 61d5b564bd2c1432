package input

// Action is a scene or simulation command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionClear
	ActionGrid
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"toggle_run": ActionToggleRun,
	"clear":      ActionClear,
	"grid":       ActionGrid,
	"quit":       ActionQuit,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
