package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/clothsim/constant"
	"github.com/lixenwraith/clothsim/control"
	"github.com/lixenwraith/clothsim/engine"
	"github.com/lixenwraith/clothsim/input"
	"github.com/lixenwraith/clothsim/physics"
	"github.com/lixenwraith/clothsim/scene"
)

// Config is the on-disk configuration; every field has a default
type Config struct {
	Physics     Physics           `toml:"physics"`
	Interaction Interaction       `toml:"interaction"`
	Keys        map[string]string `toml:"keys"`
	Window      Window            `toml:"window"`
	Audio       Audio             `toml:"audio"`
	Render      Render            `toml:"render"`
}

type Physics struct {
	Gravity    float64 `toml:"gravity"`
	Iterations int     `toml:"iterations"`
	// FixedTimestep in seconds; 0 measures wall time between frames
	FixedTimestep float64 `toml:"fixed_timestep"`
	// MaxDT clamps measured dt, in seconds
	MaxDT float64 `toml:"max_dt"`
}

type Interaction struct {
	PointSize   float64 `toml:"point_size"`
	GridWidth   int     `toml:"grid_width"`
	GridHeight  int     `toml:"grid_height"`
	GridSpacing float64 `toml:"grid_spacing"` // 0 derives from point_size
	Purge       string  `toml:"purge"`        // "position" or "identity"
}

type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Muted   bool    `toml:"muted"`
	Volume  float64 `toml:"volume"` // linear gain in [0,1]
}

type Render struct {
	Frames int    `toml:"frames"`
	Every  int    `toml:"every"`
	OutDir string `toml:"out_dir"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Physics: Physics{
			Gravity:       constant.Gravity,
			Iterations:    constant.RelaxIterations,
			FixedTimestep: 0,
			MaxDT:         constant.MaxFrameDelta.Seconds(),
		},
		Interaction: Interaction{
			PointSize:  constant.PointSize,
			GridWidth:  constant.GridWidth,
			GridHeight: constant.GridHeight,
			Purge:      scene.PurgeByPosition.String(),
		},
		Keys: map[string]string{},
		Window: Window{
			Width:  constant.ScreenWidth,
			Height: constant.ScreenHeight,
			TPS:    constant.TicksPerSecond,
		},
		Audio: Audio{Enabled: false, Volume: constant.AudioVolume},
		Render: Render{
			Frames: 300,
			Every:  30,
			OutDir: "frames",
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// Validate rejects values the solver or front ends cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Physics.Iterations < 0:
		return fmt.Errorf("[physics] iterations must be >= 0, got %d", c.Physics.Iterations)
	case c.Physics.FixedTimestep < 0:
		return fmt.Errorf("[physics] fixed_timestep must be >= 0, got %g", c.Physics.FixedTimestep)
	case c.Physics.MaxDT < 0:
		return fmt.Errorf("[physics] max_dt must be >= 0, got %g", c.Physics.MaxDT)
	case c.Interaction.PointSize <= 0:
		return fmt.Errorf("[interaction] point_size must be > 0, got %g", c.Interaction.PointSize)
	case c.Interaction.GridWidth < 0 || c.Interaction.GridHeight < 0:
		return fmt.Errorf("[interaction] grid dimensions must be >= 0, got %dx%d",
			c.Interaction.GridWidth, c.Interaction.GridHeight)
	case c.Interaction.GridSpacing < 0:
		return fmt.Errorf("[interaction] grid_spacing must be >= 0, got %g", c.Interaction.GridSpacing)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("[window] size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("[window] tps must be > 0, got %d", c.Window.TPS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("[audio] volume must be in [0,1], got %g", c.Audio.Volume)
	case c.Render.Frames < 0:
		return fmt.Errorf("[render] frames must be >= 0, got %d", c.Render.Frames)
	case c.Render.Every <= 0:
		return fmt.Errorf("[render] every must be > 0, got %d", c.Render.Every)
	}
	if _, err := scene.ParsePurgePolicy(c.Interaction.Purge); err != nil {
		return fmt.Errorf("[interaction] %w", err)
	}
	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		return err
	}
	return nil
}

// Solver builds a solver from [physics]
func (c *Config) Solver() *physics.Solver {
	sv := physics.NewSolver()
	sv.Gravity = c.Physics.Gravity
	sv.Iterations = c.Physics.Iterations
	return sv
}

// Settings builds controller geometry from [interaction]
func (c *Config) Settings() control.Settings {
	spacing := c.Interaction.GridSpacing
	if spacing == 0 {
		spacing = c.Interaction.PointSize * constant.GridSpacingFactor
	}
	return control.Settings{
		PointSize: c.Interaction.PointSize,
		Grid: scene.GridSpec{
			Width:   c.Interaction.GridWidth,
			Height:  c.Interaction.GridHeight,
			Spacing: spacing,
		},
	}
}

// KeyTable merges [keys] over the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// AudioArgs returns the audio service Init args: muted, volume
func (c *Config) AudioArgs() []any {
	return []any{c.Audio.Muted, c.Audio.Volume}
}

func (c *Config) FixedStep() time.Duration {
	return time.Duration(c.Physics.FixedTimestep * float64(time.Second))
}

func (c *Config) MaxDelta() time.Duration {
	return time.Duration(c.Physics.MaxDT * float64(time.Second))
}

// SimulationOptions assembles engine options; tp nil selects the system clock
func (c *Config) SimulationOptions(tp engine.TimeProvider) (engine.Options, error) {
	keys, err := c.KeyTable()
	if err != nil {
		return engine.Options{}, err
	}
	purge, err := scene.ParsePurgePolicy(c.Interaction.Purge)
	if err != nil {
		return engine.Options{}, fmt.Errorf("[interaction] %w", err)
	}
	if tp == nil {
		tp = engine.NewMonotonicTimeProvider()
	}
	return engine.Options{
		Solver:   c.Solver(),
		Keys:     keys,
		Settings: c.Settings(),
		Purge:    purge,
		Time:     tp,
	}, nil
}
