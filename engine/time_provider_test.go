package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()
	t1 := p.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := p.Now()
	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms between readings, got %v", d)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, mock.Now())
	}

	got := mock.Advance(90 * time.Minute)
	if want := start.Add(90 * time.Minute); !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, got)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := start.Add(400 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, mock.Now())
	}
}
