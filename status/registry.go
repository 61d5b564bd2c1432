package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Metric keys published by the engine
const (
	EngineFPS      = "engine.fps"
	EngineFrames   = "engine.frames"
	EngineSteps    = "engine.steps"
	ScenePoints    = "scene.points"
	SceneRopes     = "scene.ropes"
	SimRunning     = "sim.running"
	SimDeleteMode  = "sim.delete_mode"
	SimDragMode    = "sim.drag_mode"
	ControlMode    = "control.mode"
	LastChangeKind = "control.last_change"
)

// Registry groups metric maps by value type
// Publishers cache cells once and store into them each frame; readers may run on any goroutine
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[AtomicLabel]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[AtomicLabel](),
	}
}

// TotalCount returns the number of cells across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Lines renders every metric as "key=value", sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, c *atomic.Bool) {
		lines = append(lines, k+"="+strconv.FormatBool(c.Load()))
	})
	r.Ints.Range(func(k string, c *atomic.Int64) {
		lines = append(lines, k+"="+strconv.FormatInt(c.Load(), 10))
	})
	r.Floats.Range(func(k string, c *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.1f", k, c.Get()))
	})
	r.Labels.Range(func(k string, c *AtomicLabel) {
		lines = append(lines, k+"="+c.Load())
	})
	sort.Strings(lines)
	return lines
}
