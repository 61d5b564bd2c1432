package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/clothsim/control"
)

// AudioService wraps SoundManager as a service.Service
// A missing audio backend disables the service instead of failing startup
type AudioService struct {
	sm       *SoundManager
	disabled atomic.Bool
}

func NewService() *AudioService {
	return &AudioService{sm: NewSoundManager()}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - muted, args[1]: float64 - volume
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			s.sm.SetMuted(muted)
		}
	}
	if len(args) > 1 {
		if vol, ok := args[1].(float64); ok {
			s.sm.SetVolume(vol)
		}
	}
	return nil
}

// Start implements Service; opens the speaker or disables the service
func (s *AudioService) Start() error {
	if s.disabled.Load() {
		return nil
	}
	if err := s.sm.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	s.sm.Cleanup()
	return nil
}

func (s *AudioService) Disabled() bool { return s.disabled.Load() }

// OnChange forwards to the sound manager; usable as a control.Listener
func (s *AudioService) OnChange(ch control.Change) {
	if s.disabled.Load() {
		return
	}
	s.sm.OnChange(ch)
}
