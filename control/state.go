package control

// Mode is the pointer interaction state
type Mode uint8

const (
	ModeIdle      Mode = iota // No drag origin
	ModeDragArmed             // Left press landed on a point, origin recorded
	ModeDragging              // Origin follows the pointer (drag modifier held while moving)
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeDragArmed:
		return "DragArmed"
	case ModeDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// ChangeKind classifies scene and simulation mutations reported to a Listener
type ChangeKind uint8

const (
	ChangePointAdded   ChangeKind = iota
	ChangePointRemoved            // Count = ropes purged with the point
	ChangeRopeAdded               // Count = ropes created by one release
	ChangeLockToggled             // Count = points toggled
	ChangeCleared
	ChangeGrid // Count = points generated
	ChangeRunToggled
	ChangeQuit
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePointAdded:
		return "PointAdded"
	case ChangePointRemoved:
		return "PointRemoved"
	case ChangeRopeAdded:
		return "RopeAdded"
	case ChangeLockToggled:
		return "LockToggled"
	case ChangeCleared:
		return "Cleared"
	case ChangeGrid:
		return "Grid"
	case ChangeRunToggled:
		return "RunToggled"
	case ChangeQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Change describes one applied mutation
type Change struct {
	Kind    ChangeKind
	Count   int
	Running bool // Set for ChangeRunToggled and ChangeGrid
}

// Listener receives changes synchronously, on the caller's goroutine
type Listener func(Change)
