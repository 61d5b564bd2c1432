package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/clothsim/audio"
	"github.com/lixenwraith/clothsim/config"
	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/logging"
	"github.com/lixenwraith/clothsim/render"
	"github.com/lixenwraith/clothsim/service"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/clothsim.log")
	statsFlag  = flag.Bool("stats", false, "Show metrics overlay")
	muteFlag   = flag.Bool("mute", false, "Start with audio cues muted")
)

// Game adapts the simulation to ebiten's update/draw loop
type Game struct {
	sim     *engine.Simulation
	cfg     *config.Config
	poller  inputPoller
	frame   engine.Frame
	palette render.Palette
	dt      float64
	stats   bool
}

func (g *Game) Update() error {
	for _, ev := range g.poller.poll() {
		g.sim.Handle(ev)
	}
	if g.sim.QuitRequested() {
		return ebiten.Termination
	}
	g.sim.Update(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.SnapshotInto(&g.frame)
	p := g.palette
	screen.Fill(p.Background.Color())

	pointSize := float32(g.cfg.Interaction.PointSize)
	ropeColor := p.Rope.Color()
	for _, r := range g.frame.Ropes {
		vector.StrokeLine(screen, float32(r.A.X), float32(r.A.Y), float32(r.B.X), float32(r.B.Y),
			pointSize*constant.RopeWidthFactor, ropeColor, true)
	}
	for _, pt := range g.frame.Points {
		vector.DrawFilledCircle(screen, float32(pt.Pos.X), float32(pt.Pos.Y), pointSize,
			p.PointColor(pt.Locked).Color(), true)
	}

	face := basicfont.Face7x13
	for _, l := range render.HUD(g.frame, float64(g.cfg.Window.Width), p) {
		// text.Draw anchors at the baseline
		text.Draw(screen, l.Text, face, int(l.X), int(l.Y)+face.Ascent, l.Color.Color())
	}

	if g.stats {
		y := 40
		for _, line := range g.sim.Status.Lines() {
			ebitenutil.DebugPrintAt(screen, line, 10, y)
			y += 16
		}
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	flag.Parse()
	os.Exit(start())
}

// start returns the process exit code so deferred cleanup runs before exit
func start() int {
	logFile := logging.Setup(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "clothsim: %v\n", err)
		return 1
	}
	return 0
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	opts, err := cfg.SimulationOptions(nil)
	if err != nil {
		return err
	}
	sim := engine.NewSimulation(opts)

	if *muteFlag {
		cfg.Audio.Muted = true
	}
	hub := service.NewHub()
	var sound *audio.AudioService
	if cfg.Audio.Enabled {
		sound = audio.NewService()
		if err := hub.Register(sound); err != nil {
			return err
		}
		sim.Subscribe(sound.OnChange)
	}
	if err := hub.InitAll(map[string][]any{"audio": cfg.AudioArgs()}); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	log.Printf("services started: %v", hub.Order())
	if sound != nil && sound.Disabled() {
		log.Printf("audio disabled: no output device")
	}

	game := &Game{
		sim:     sim,
		cfg:     cfg,
		palette: render.DefaultPalette(),
		dt:      1 / float64(cfg.Window.TPS),
		stats:   *statsFlag,
	}
	if fixed := cfg.FixedStep(); fixed > 0 {
		game.dt = fixed.Seconds()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Cloth Sim")
	ebiten.SetTPS(cfg.Window.TPS)

	log.Printf("window %dx%d at %d tps", cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Printf("exit after %d frames", sim.FrameNumber())
	return nil
}
