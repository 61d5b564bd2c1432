package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clothsim/config"
)

func newSimScreenService(t *testing.T) (*screenService, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	ss := newScreenService(func() (tcell.Screen, error) { return sim, nil })
	if err := ss.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(40, 20)
	if err := ss.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return ss, sim
}

func TestScreenServiceForwardsEvents(t *testing.T) {
	ss, sim := newSimScreenService(t)
	defer ss.Stop()

	sim.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
	select {
	case ev := <-ss.Events():
		k, ok := ev.(*tcell.EventKey)
		if !ok || k.Rune() != 'g' {
			t.Errorf("Expected 'g' key event, got %#v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("No event forwarded")
	}
}

func TestScreenServiceStopIdempotent(t *testing.T) {
	ss, _ := newSimScreenService(t)
	if err := ss.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := ss.Stop(); err != nil {
		t.Fatalf("Second Stop: %v", err)
	}
	if ss.Screen() != nil {
		t.Error("Screen still set after Stop")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	ss, sim := newSimScreenService(t)
	defer ss.Stop()

	cfg := config.Default()
	done := make(chan error, 1)
	go func() { done <- run(ss, nil, cfg, false) }()

	sim.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after quit key")
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	ss, sim := newSimScreenService(t)
	defer ss.Stop()

	done := make(chan error, 1)
	go func() { done <- run(ss, nil, config.Default(), true) }()

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after Escape")
	}
}
