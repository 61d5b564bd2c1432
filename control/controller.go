package control

import (
	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/core"
	"github.com/lixenwraith/clothsim/input"
	"github.com/lixenwraith/clothsim/scene"
	"github.com/lixenwraith/clothsim/vmath"
)

// Settings holds interaction geometry
type Settings struct {
	// PointSize is the release/lock hit tolerance; presses use twice this
	PointSize float64
	// Grid is the mesh built by the grid action
	Grid scene.GridSpec
}

// DefaultSettings returns stock geometry
func DefaultSettings() Settings {
	return Settings{
		PointSize: constant.PointSize,
		Grid:      scene.DefaultGridSpec(),
	}
}

// Controller translates decoded input events into scene mutations and simulation toggles
// All toggles live here; nothing is global. Single goroutine only
type Controller struct {
	scene    *scene.Scene
	keys     *input.KeyTable
	settings Settings
	listener Listener

	mode        Mode
	origin      core.PointID
	originIndex int

	deleteMode bool // Shift held
	dragMode   bool // Control/Meta held
	running    bool
	quit       bool
}

// New creates a controller over s; nil keys selects the default table
func New(s *scene.Scene, keys *input.KeyTable, settings Settings) *Controller {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Controller{
		scene:       s,
		keys:        keys,
		settings:    settings,
		originIndex: -1,
	}
}

// SetListener installs the change observer, nil disables reporting
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

func (c *Controller) Mode() Mode            { return c.mode }
func (c *Controller) Running() bool         { return c.running }
func (c *Controller) DeleteMode() bool      { return c.deleteMode }
func (c *Controller) DragMode() bool        { return c.dragMode }
func (c *Controller) QuitRequested() bool   { return c.quit }
func (c *Controller) Settings() Settings    { return c.settings }
func (c *Controller) Scene() *scene.Scene   { return c.scene }
func (c *Controller) Keys() *input.KeyTable { return c.keys }

// SetRunning forces the run state without emitting a change
func (c *Controller) SetRunning(running bool) {
	c.running = running
}

// Handle applies one event
func (c *Controller) Handle(ev input.Event) {
	switch ev.Type {
	case input.EventPointerDown:
		c.pointerDown(ev.Button, ev.Pos)
	case input.EventPointerUp:
		c.pointerUp(ev.Button, ev.Pos)
	case input.EventPointerMove:
		c.pointerMove(ev.Pos)
	case input.EventKeyDown:
		c.keyDown(ev)
	case input.EventKeyUp:
		c.keyUp(ev)
	}
}

func (c *Controller) pointerDown(b input.Button, pos vmath.Vec2) {
	// Only the left button arms a drag; right is reserved for lock toggling on release
	if b == input.ButtonLeft {
		if i, id, ok := c.scene.FindPointNear(pos, c.settings.PointSize*constant.GrabFactor); ok {
			c.origin = id
			c.originIndex = i
			c.mode = ModeDragArmed
			return
		}
	}
	c.dropOrigin()
}

func (c *Controller) pointerUp(b input.Button, pos vmath.Vec2) {
	if c.mode != ModeIdle {
		c.releaseOrigin(pos)
		c.dropOrigin()
		return
	}

	if b == input.ButtonLeft && !c.deleteMode && !c.dragMode {
		c.scene.AddPoint(pos, false)
		c.emit(Change{Kind: ChangePointAdded, Count: 1})
	}
	if b == input.ButtonRight {
		n := 0
		for _, id := range c.scene.PointsNear(pos, c.settings.PointSize) {
			if c.scene.ToggleLock(id) {
				n++
			}
		}
		if n > 0 {
			c.emit(Change{Kind: ChangeLockToggled, Count: n})
		}
	}
}

// releaseOrigin acts on the press origin by handle; indices may have shifted since the press
// A stale origin is ignored: removal reports it and rope creation rejects it
func (c *Controller) releaseOrigin(pos vmath.Vec2) {
	switch {
	case c.deleteMode:
		if purged, ok := c.scene.RemovePointByID(c.origin); ok {
			c.emit(Change{Kind: ChangePointRemoved, Count: purged})
		}

	case !c.dragMode:
		n := 0
		for _, id := range c.scene.PointsNear(pos, c.settings.PointSize) {
			if _, ok := c.scene.AddRope(c.origin, id); ok {
				n++
			}
		}
		if n > 0 {
			c.emit(Change{Kind: ChangeRopeAdded, Count: n})
		}
	}
}

func (c *Controller) pointerMove(pos vmath.Vec2) {
	if c.mode == ModeIdle || !c.dragMode {
		return
	}
	if !c.scene.SetPosition(c.origin, pos) {
		c.dropOrigin()
		return
	}
	c.mode = ModeDragging
}

func (c *Controller) keyDown(ev input.Event) {
	switch {
	case ev.Key.IsDeleteModifier():
		c.deleteMode = true
	case ev.Key.IsDragModifier():
		c.dragMode = true
	case ev.Key != input.KeyRune:
		c.apply(c.keys.KeyAction(ev.Key))
	}
}

func (c *Controller) keyUp(ev input.Event) {
	switch {
	case ev.Key.IsDeleteModifier():
		c.deleteMode = false
	case ev.Key.IsDragModifier():
		c.dragMode = false
	case ev.Key == input.KeyRune:
		c.apply(c.keys.RuneAction(ev.Rune))
	}
}

func (c *Controller) apply(a input.Action) {
	switch a {
	case input.ActionToggleRun:
		c.running = !c.running
		c.emit(Change{Kind: ChangeRunToggled, Running: c.running})

	case input.ActionClear:
		c.scene.Clear()
		c.dropOrigin()
		c.emit(Change{Kind: ChangeCleared})

	case input.ActionGrid:
		c.GenerateGrid()

	case input.ActionQuit:
		c.quit = true
		c.emit(Change{Kind: ChangeQuit})
	}
}

// GenerateGrid stops the simulation and replaces the scene with the configured mesh
func (c *Controller) GenerateGrid() {
	c.running = false
	c.scene.GenerateGrid(c.settings.Grid)
	c.dropOrigin()
	c.emit(Change{Kind: ChangeGrid, Count: c.scene.Len(), Running: false})
}

func (c *Controller) dropOrigin() {
	c.mode = ModeIdle
	c.origin = core.PointID{}
	c.originIndex = -1
}

func (c *Controller) emit(ch Change) {
	if c.listener != nil {
		c.listener(ch)
	}
}
