package audio

import (
	"time"

	"github.com/lixenwraith/clothsim/control"
)

// Cue is a short feedback sound for one kind of edit
type Cue uint8

const (
	CueNone Cue = iota
	CuePoint
	CueRemove
	CueRope
	CueLock
	CueClear
	CueGrid
	CueRun
	CuePause
)

// note is one tone of a cue
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes holds the notes played in sequence for each cue
var cueNotes = map[Cue][]note{
	CuePoint:  {{880, 40 * time.Millisecond}},
	CueRemove: {{330, 60 * time.Millisecond}, {220, 80 * time.Millisecond}},
	CueRope:   {{660, 50 * time.Millisecond}},
	CueLock:   {{520, 30 * time.Millisecond}, {520, 30 * time.Millisecond}},
	CueClear:  {{440, 60 * time.Millisecond}, {330, 60 * time.Millisecond}, {220, 90 * time.Millisecond}},
	CueGrid:   {{392, 50 * time.Millisecond}, {523, 50 * time.Millisecond}, {659, 80 * time.Millisecond}},
	CueRun:    {{587, 70 * time.Millisecond}},
	CuePause:  {{294, 70 * time.Millisecond}},
}

// CueFor maps a controller change to its cue; quit has none
func CueFor(ch control.Change) Cue {
	switch ch.Kind {
	case control.ChangePointAdded:
		return CuePoint
	case control.ChangePointRemoved:
		return CueRemove
	case control.ChangeRopeAdded:
		return CueRope
	case control.ChangeLockToggled:
		return CueLock
	case control.ChangeCleared:
		return CueClear
	case control.ChangeGrid:
		return CueGrid
	case control.ChangeRunToggled:
		if ch.Running {
			return CueRun
		}
		return CuePause
	}
	return CueNone
}

// Duration is the total playback length of c
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}
