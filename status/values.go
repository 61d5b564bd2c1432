package status

import (
	"math"
	"sync/atomic"
)

// MaxLabelLen caps stored label length
const MaxLabelLen = 24

// AtomicFloat stores a float64 as its bit pattern
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add applies delta with a CAS loop and returns the result
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicLabel holds a short string, truncated to MaxLabelLen bytes on store
type AtomicLabel struct {
	ptr atomic.Pointer[string]
}

func (l *AtomicLabel) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.ptr.Store(&val)
}

func (l *AtomicLabel) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
