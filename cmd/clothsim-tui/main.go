// clothsim-tui runs the cloth simulation in a terminal with mouse input
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clothsim/audio"
	"github.com/lixenwraith/clothsim/config"
	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/core"
	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/input"
	"github.com/lixenwraith/clothsim/logging"
	"github.com/lixenwraith/clothsim/render"
	"github.com/lixenwraith/clothsim/render/term"
	"github.com/lixenwraith/clothsim/service"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/clothsim.log")
	gridFlag   = flag.Bool("grid", false, "Start with the generated grid")
	muteFlag   = flag.Bool("mute", false, "Start with audio cues muted")
	hudFlag    = flag.Bool("hud", true, "Draw the mode and FPS labels")
)

func main() {
	flag.Parse()
	os.Exit(start())
}

// start wires services around run and returns the process exit code
// Deferred cleanup runs before main exits
func start() int {
	logFile := logging.Setup(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clothsim-tui: %v\n", err)
		return 1
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}

	hub := service.NewHub()
	screen := newScreenService(nil)
	if err := hub.Register(screen); err != nil {
		fmt.Fprintf(os.Stderr, "clothsim-tui: %v\n", err)
		return 1
	}
	var sound *audio.AudioService
	if cfg.Audio.Enabled {
		sound = audio.NewService()
		if err := hub.Register(sound); err != nil {
			fmt.Fprintf(os.Stderr, "clothsim-tui: %v\n", err)
			return 1
		}
	}

	if err := hub.InitAll(map[string][]any{"audio": cfg.AudioArgs()}); err != nil {
		fmt.Fprintf(os.Stderr, "clothsim-tui: %v\n", err)
		return 1
	}
	defer func() { core.HandleCrash(recover()) }()

	if err := hub.StartAll(); err != nil {
		screen.Stop()
		fmt.Fprintf(os.Stderr, "clothsim-tui: %v\n", err)
		return 1
	}
	log.Printf("services started: %v", hub.Order())
	if sound != nil && sound.Disabled() {
		log.Printf("audio disabled: no output device")
	}

	err = run(screen, sound, cfg, *gridFlag)
	hub.StopAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "clothsim-tui: %v\n", err)
		return 1
	}
	return 0
}

// run drives the simulation from screen events until a quit key, the quit action or a closed screen
func run(ss *screenService, sound *audio.AudioService, cfg *config.Config, grid bool) error {
	scr := ss.Screen()
	worldW, worldH := float64(cfg.Window.Width), float64(cfg.Window.Height)
	cols, rows := scr.Size()

	opts, err := cfg.SimulationOptions(nil)
	if err != nil {
		return err
	}
	// A cell covers many world units; widen the hit box so one click can land on a point
	cellW, cellH := worldW/float64(max(cols, 1)), worldH/float64(max(rows, 1))
	opts.Settings.PointSize = max(opts.Settings.PointSize, cellW, cellH/2)

	sim := engine.NewSimulation(opts)
	if sound != nil {
		sim.Subscribe(sound.OnChange)
	}
	if grid {
		sim.GenerateGrid()
	}

	renderer := term.New(worldW, worldH, render.DefaultPalette())
	renderer.Resize(cols, rows)
	renderer.SetHUD(*hudFlag)
	tr := newTranslator(renderer.CellToWorld)
	clock := engine.NewFrameClock(opts.Time, cfg.FixedStep(), cfg.MaxDelta())

	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	var (
		events []input.Event
		frame  engine.Frame
	)
	log.Printf("terminal %dx%d, point tolerance %.1f", cols, rows, opts.Settings.PointSize)

	for {
		select {
		case ev, ok := <-ss.Events():
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				cols, rows = ev.Size()
				renderer.Resize(cols, rows)
				scr.Sync()
				continue
			case *tcell.EventKey:
				if quitKey(ev) {
					log.Printf("quit key after %d frames", sim.FrameNumber())
					return nil
				}
			}
			events = tr.translate(events[:0], ev)
			for _, e := range events {
				sim.Handle(e)
			}
			if sim.QuitRequested() {
				return nil
			}

		case <-ticker.C:
			sim.Update(clock.Tick())
			sim.SnapshotInto(&frame)
			renderer.Compose(frame)
			renderer.Flush(scr)
		}
	}
}
