package constant

import (
	"time"

	"github.com/lixenwraith/clothsim/vmath"
)

// Interaction geometry
const (
	// PointSize is the drawn point radius and the release/lock hit tolerance
	PointSize = 10.0

	// GrabFactor scales the point size into the pointer-down tolerance for arming a drag
	GrabFactor = 2.0

	// RopeWidthFactor scales the point size into the drawn rope stroke width
	RopeWidthFactor = 0.25
)

// Solver tuning, empirical values
const (
	// Gravity is the downward acceleration term, applied linearly in dt
	Gravity = 80.0

	// RelaxIterations is the number of constraint passes per step
	RelaxIterations = 4
)

// FallbackAxis is the relaxation direction used when both rope endpoints coincide
var FallbackAxis = vmath.Vec2{X: 1, Y: 0}

// Grid generation
const (
	GridWidth  = 26
	GridHeight = 26

	// GridSpacingFactor multiplies PointSize for the distance between grid neighbors
	GridSpacingFactor = 5
)

// AudioVolume is the default linear gain of feedback cues
const AudioVolume = 0.3

// Window & frame timing
const (
	ScreenWidth  = 1920
	ScreenHeight = 1440

	// TicksPerSecond is the fixed update rate of the window front end
	TicksPerSecond = 60

	// FrameUpdateInterval is the terminal front end frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps dt after stalls (window drag, breakpoint) to keep the solver stable
	MaxFrameDelta = 100 * time.Millisecond

	// FPSWindow is the averaging window of the FPS meter
	FPSWindow = time.Second
)
