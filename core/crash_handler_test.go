package core

import "testing"

type finiCounter struct{ n int }

func (f *finiCounter) Fini() { f.n++ }

func TestHandleCrashIgnoresNil(t *testing.T) {
	f := &finiCounter{}
	SetCrashScreen(f)
	defer SetCrashScreen(nil)

	HandleCrash(nil)
	if f.n != 0 {
		t.Errorf("Expected no Fini without a panic value, got %d", f.n)
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}
