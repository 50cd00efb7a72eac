package internal

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var fires atomic.Int32
	var firedAt atomic.Value
	d := NewDebouncer(50*time.Millisecond, func() {
		firedAt.Store(time.Now())
		fires.Add(1)
	})
	defer d.Close()

	// A burst of notifications inside the quiescence window must produce
	// exactly one callback, after the window elapses from the last one.
	for i := 0; i < 10; i++ {
		d.Notify()
		time.Sleep(5 * time.Millisecond)
	}
	lastNotify := time.Now()

	require.Eventually(t, func() bool { return fires.Load() == 1 },
		time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, firedAt.Load().(time.Time).Sub(lastNotify), 40*time.Millisecond,
		"callback must wait out the quiescence window after the last notification")

	// No extra callback arrives later.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fires.Load())
}

func TestDebouncerSeparateBursts(t *testing.T) {
	var fires atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { fires.Add(1) })
	defer d.Close()

	d.Notify()
	require.Eventually(t, func() bool { return fires.Load() == 1 }, time.Second, time.Millisecond)

	d.Notify()
	require.Eventually(t, func() bool { return fires.Load() == 2 }, time.Second, time.Millisecond)
}

func TestDebouncerFlush(t *testing.T) {
	var mu sync.Mutex
	var fired int
	d := NewDebouncer(time.Hour, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer d.Close()

	// Flush with nothing pending is a no-op.
	d.Flush()
	mu.Lock()
	assert.Equal(t, 0, fired)
	mu.Unlock()

	d.Notify()
	d.Flush()
	mu.Lock()
	assert.Equal(t, 1, fired)
	mu.Unlock()

	// The pending schedule was consumed by Flush.
	d.Flush()
	mu.Lock()
	assert.Equal(t, 1, fired)
	mu.Unlock()
}

func TestDebouncerCloseFlushesPending(t *testing.T) {
	var fires atomic.Int32
	d := NewDebouncer(time.Hour, func() { fires.Add(1) })

	d.Notify()
	d.Close()
	assert.Equal(t, int32(1), fires.Load())

	// After Close, notifications are ignored.
	d.Notify()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), fires.Load())
}
