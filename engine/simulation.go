package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/control"
	"github.com/lixenwraith/clothsim/core"
	"github.com/lixenwraith/clothsim/input"
	"github.com/lixenwraith/clothsim/physics"
	"github.com/lixenwraith/clothsim/scene"
	"github.com/lixenwraith/clothsim/status"
)

// Options configures a Simulation; zero fields fall back to defaults
type Options struct {
	Solver   *physics.Solver
	Keys     *input.KeyTable
	Settings control.Settings
	Purge    scene.PurgePolicy
	Time     TimeProvider
}

// DefaultOptions returns stock tuning with the legacy purge policy
func DefaultOptions() Options {
	return Options{
		Solver:   physics.NewSolver(),
		Keys:     input.DefaultKeyTable(),
		Settings: control.DefaultSettings(),
		Purge:    scene.PurgeByPosition,
		Time:     NewMonotonicTimeProvider(),
	}
}

// Simulation is the per-frame context shared by all front ends
// Handle, Update and SnapshotInto run on the front end's loop goroutine; Status may be read anywhere
type Simulation struct {
	Scene      *scene.Scene
	Solver     *physics.Solver
	Controller *control.Controller
	Status     *status.Registry

	fps         *FPSMeter
	frameNumber atomic.Int64
	subscribers []control.Listener

	// Cached metric cells
	mFPS        *status.AtomicFloat
	mFrames     *atomic.Int64
	mSteps      *atomic.Int64
	mPoints     *atomic.Int64
	mRopes      *atomic.Int64
	mRunning    *atomic.Bool
	mDeleteMode *atomic.Bool
	mDragMode   *atomic.Bool
	mMode       *status.AtomicLabel
	mLastChange *status.AtomicLabel
}

// NewSimulation wires scene, solver and controller with an empty scene, paused
func NewSimulation(opts Options) *Simulation {
	def := DefaultOptions()
	if opts.Solver == nil {
		opts.Solver = def.Solver
	}
	if opts.Keys == nil {
		opts.Keys = def.Keys
	}
	if opts.Settings.PointSize <= 0 {
		opts.Settings = def.Settings
	}
	if opts.Time == nil {
		opts.Time = def.Time
	}

	sc := scene.New()
	sc.SetPurgePolicy(opts.Purge)

	reg := status.NewRegistry()
	sim := &Simulation{
		Scene:      sc,
		Solver:     opts.Solver,
		Controller: control.New(sc, opts.Keys, opts.Settings),
		Status:     reg,
		fps:        NewFPSMeter(opts.Time, constant.FPSWindow),

		mFPS:        reg.Floats.Get(status.EngineFPS),
		mFrames:     reg.Ints.Get(status.EngineFrames),
		mSteps:      reg.Ints.Get(status.EngineSteps),
		mPoints:     reg.Ints.Get(status.ScenePoints),
		mRopes:      reg.Ints.Get(status.SceneRopes),
		mRunning:    reg.Bools.Get(status.SimRunning),
		mDeleteMode: reg.Bools.Get(status.SimDeleteMode),
		mDragMode:   reg.Bools.Get(status.SimDragMode),
		mMode:       reg.Labels.Get(status.ControlMode),
		mLastChange: reg.Labels.Get(status.LastChangeKind),
	}
	sim.Controller.SetListener(sim.onChange)
	sim.publish()
	return sim
}

// Subscribe registers an observer of controller changes, called after the engine's own handling
func (s *Simulation) Subscribe(l control.Listener) {
	if l != nil {
		s.subscribers = append(s.subscribers, l)
	}
}

// Handle forwards one decoded event to the controller
func (s *Simulation) Handle(ev input.Event) {
	s.Controller.Handle(ev)
	s.publish()
}

// Update advances one frame; the solver only steps while running
func (s *Simulation) Update(dt float64) {
	s.fps.Frame()
	if s.Controller.Running() {
		s.Solver.Step(s.Scene, dt)
		s.mSteps.Add(1)
	}
	s.frameNumber.Add(1)
	s.publish()
}

// GenerateGrid replaces the scene with the configured grid, as the grid key does
func (s *Simulation) GenerateGrid() {
	s.Controller.GenerateGrid()
	s.publish()
}

func (s *Simulation) Running() bool       { return s.Controller.Running() }
func (s *Simulation) QuitRequested() bool { return s.Controller.QuitRequested() }
func (s *Simulation) FrameNumber() int64  { return s.frameNumber.Load() }
func (s *Simulation) FPS() float64        { return s.fps.FPS() }

// SetRunning forces the run state, e.g. for headless batch runs
func (s *Simulation) SetRunning(running bool) {
	s.Controller.SetRunning(running)
	s.publish()
}

// SnapshotInto fills dst, reusing its slices
func (s *Simulation) SnapshotInto(dst *Frame) {
	dst.Number = s.frameNumber.Load()
	dst.FPS = s.fps.FPS()
	dst.DeleteMode = s.Controller.DeleteMode()
	dst.Running = s.Controller.Running()
	dst.Mode = s.Controller.Mode()

	dst.Points = dst.Points[:0]
	s.Scene.EachPoint(func(_ int, _ core.PointID, p *core.Point) {
		dst.Points = append(dst.Points, PointView{Pos: p.Current, Locked: p.Locked})
	})

	dst.Ropes = dst.Ropes[:0]
	s.Scene.EachRope(func(_ int, r core.Rope) {
		a, b, ok := s.Scene.Endpoints(r)
		if !ok {
			return
		}
		dst.Ropes = append(dst.Ropes, RopeView{A: a.Current, B: b.Current})
	})
}

func (s *Simulation) onChange(ch control.Change) {
	switch ch.Kind {
	case control.ChangeGrid:
		log.Printf("grid generated: %d points, %d ropes", ch.Count, s.Scene.RopeCount())
	case control.ChangeCleared:
		log.Printf("scene cleared")
	case control.ChangeQuit:
		log.Printf("quit requested at frame %d", s.frameNumber.Load())
	}
	s.mLastChange.Store(ch.Kind.String())

	for _, l := range s.subscribers {
		l(ch)
	}
}

func (s *Simulation) publish() {
	s.mFPS.Set(s.fps.FPS())
	s.mFrames.Store(s.frameNumber.Load())
	s.mPoints.Store(int64(s.Scene.Len()))
	s.mRopes.Store(int64(s.Scene.RopeCount()))
	s.mRunning.Store(s.Controller.Running())
	s.mDeleteMode.Store(s.Controller.DeleteMode())
	s.mDragMode.Store(s.Controller.DragMode())
	s.mMode.Store(s.Controller.Mode().String())
}
