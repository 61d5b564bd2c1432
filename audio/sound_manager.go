package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/control"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays cues through the system speaker
// Every method is a no-op until Initialize succeeds, so a missing device only means silence
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: constant.AudioVolume,
	}
}

// Initialize opens the speaker; repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// SetVolume sets linear cue gain, clamped to [0,1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	sm.volume = max(0, min(1, vol))
	sm.mu.Unlock()
}

// Play queues c on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || c == CueNone {
		return
	}
	s, err := CueStreamer(sampleRate, c, sm.volume)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// OnChange plays the cue for a controller change; usable as a control.Listener
func (sm *SoundManager) OnChange(ch control.Change) {
	sm.Play(CueFor(ch))
}
