package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Envelope edges, in seconds
const (
	attackSec  = 0.005
	releaseSec = 0.02
)

// envelope fades a finite streamer in and out to avoid clicks
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, total int) *envelope {
	e := &envelope{
		s:       s,
		total:   total,
		attack:  int(attackSec * float64(sr)),
		release: int(releaseSec * float64(sr)),
	}
	if e.attack+e.release > total {
		e.attack, e.release = total/2, total/2
	}
	return e
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.attack > 0 && e.pos < e.attack:
			vol = float64(e.pos) / float64(e.attack)
		case e.release > 0 && e.pos >= e.total-e.release:
			vol = float64(e.total-e.pos) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}

// gain wraps s at linear volume vol; vol <= 0 is silent
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CueStreamer renders c as a finite streamer at sample rate sr
func CueStreamer(sr beep.SampleRate, c Cue, vol float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: no notes for cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.freq, err)
		}
		total := sr.N(n.dur)
		parts = append(parts, newEnvelope(beep.Take(total, sine), sr, total))
	}
	return gain(beep.Seq(parts...), vol), nil
}
