package discovery

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScheduler_InitialRun verifies the delayed startup run fires
func TestScheduler_InitialRun(t *testing.T) {
	var fired atomic.Int32
	s := NewScheduler(func() { fired.Add(1) })
	s.delay = 10 * time.Millisecond
	defer s.Stop()

	s.Configure(24)

	require.Eventually(t, func() bool { return fired.Load() >= 1 },
		time.Second, 5*time.Millisecond, "initial run should fire after the startup delay")
	assert.True(t, s.Armed())
}

// TestScheduler_ZeroDisarms verifies Configure(0) after Configure(24)
// tears the schedule down completely
func TestScheduler_ZeroDisarms(t *testing.T) {
	var fired atomic.Int32
	s := NewScheduler(func() { fired.Add(1) })
	s.delay = 20 * time.Millisecond

	s.Configure(24)
	require.True(t, s.Armed())

	s.Configure(0)
	assert.False(t, s.Armed())

	// The pending initial run was cancelled along with the recurrence.
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load(), "no automatic cycle fires after disarming")
}

// TestScheduler_ReconfigureReplaces verifies no two schedules are ever
// armed concurrently
func TestScheduler_ReconfigureReplaces(t *testing.T) {
	var fired atomic.Int32
	s := NewScheduler(func() { fired.Add(1) })
	s.delay = 10 * time.Millisecond
	defer s.Stop()

	s.Configure(24)
	first := s.cron
	s.Configure(12)

	assert.True(t, s.Armed())
	assert.NotSame(t, first, s.cron, "reconfiguration replaces the recurrence")

	// Only the replacement's initial run fires, the replaced one was
	// cancelled before its delay elapsed.
	require.Eventually(t, func() bool { return fired.Load() >= 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

// TestScheduler_StopIdempotent verifies stopping twice is harmless
func TestScheduler_StopIdempotent(t *testing.T) {
	s := NewScheduler(func() {})
	s.Configure(1)
	s.Stop()
	s.Stop()
	assert.False(t, s.Armed())
}
