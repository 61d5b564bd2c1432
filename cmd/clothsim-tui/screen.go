package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clothsim/core"
)

// screenService manages the tcell screen lifecycle and input polling
type screenService struct {
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	eventCh   chan tcell.Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	mu        sync.Mutex
	running   bool
}

func newScreenService(newScreen func() (tcell.Screen, error)) *screenService {
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	return &screenService{
		newScreen: newScreen,
		eventCh:   make(chan tcell.Event, 256),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (s *screenService) Name() string           { return "screen" }
func (s *screenService) Dependencies() []string { return nil }

// Init creates the screen and enables mouse reporting
func (s *screenService) Init(args ...any) error {
	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("screen create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	s.screen = screen
	core.SetCrashScreen(screen)
	return nil
}

// Start launches the polling goroutine
func (s *screenService) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
	return nil
}

// pollLoop is the only sender on eventCh and closes it on exit
func (s *screenService) pollLoop() {
	defer close(s.doneCh)
	defer close(s.eventCh)
	for {
		ev := s.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop restores the terminal; safe to call repeatedly
func (s *screenService) Stop() error {
	s.mu.Lock()
	if s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	wasRunning := s.running
	s.running = false
	screen := s.screen
	s.screen = nil
	s.mu.Unlock()

	core.SetCrashScreen(nil)
	if wasRunning {
		close(s.stopCh)
	}
	screen.Fini()
	if wasRunning {
		<-s.doneCh
	}
	return nil
}

func (s *screenService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Events delivers screen events; closed once polling ends
func (s *screenService) Events() <-chan tcell.Event { return s.eventCh }
