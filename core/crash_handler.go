package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores a display surface, tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher
)

// SetCrashScreen registers the surface restored before a crash report; nil clears it
func SetCrashScreen(f Finisher) {
	crashMu.Lock()
	crashScreen = f
	crashMu.Unlock()
}

// HandleCrash restores the registered screen, prints the stack trace and exits
// Call as defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f := crashScreen
	crashScreen = nil
	crashMu.Unlock()
	if f != nil {
		f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
