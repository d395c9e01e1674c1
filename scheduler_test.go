package slides

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAfterFuncFiresOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	timer := s.AfterFunc(100*time.Millisecond, func() { calls++ })

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 0, calls)
	assert.True(t, timer.Active())

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.False(t, timer.Active())

	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Len())
}

func TestEveryRepeats(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(100*time.Millisecond, func() { calls++ })

	for i := 0; i < 10; i++ {
		s.Advance(50 * time.Millisecond)
	}
	assert.Equal(t, 5, calls)
	assert.Equal(t, 500*time.Millisecond, s.Now())
}

func TestEveryLongFrameFiresOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(100*time.Millisecond, func() { calls++ })

	s.Advance(time.Second)
	assert.Equal(t, 1, calls, "a long frame does not burst")

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, calls)
	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestEveryPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { NewScheduler().Every(0, func() {}) })
}

func TestTimerStop(t *testing.T) {
	s := NewScheduler()
	calls := 0
	timer := s.Every(10*time.Millisecond, func() { calls++ })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop is a no-op")

	s.Advance(time.Second)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, s.Len())

	var nilTimer *Timer
	assert.False(t, nilTimer.Stop())
	assert.False(t, nilTimer.Active())
}

func TestTimerAddedInCallbackWaits(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.AfterFunc(10*time.Millisecond, func() {
		order = append(order, "first")
		s.AfterFunc(0, func() { order = append(order, "second") })
	})

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"first"}, order)

	s.Advance(time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestTimersFireInScheduleOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, 1) })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, 2) })

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, order)
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	calls := 0
	a := s.AfterFunc(10*time.Millisecond, func() { calls++ })
	s.Every(10*time.Millisecond, func() { calls++ })

	s.Clear()
	s.Advance(time.Second)

	assert.Equal(t, 0, calls)
	assert.False(t, a.Active())
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerClearFromCallback(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.AfterFunc(10*time.Millisecond, func() { s.Clear() })
	s.AfterFunc(10*time.Millisecond, func() { calls++ })

	assert.NotPanics(t, func() { s.Advance(10 * time.Millisecond) })
	assert.Equal(t, 0, calls)
}
