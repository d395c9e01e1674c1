package slides

import "time"

// Timer is a callback registered with a Scheduler. It fires from
// Scheduler.Advance on the goroutine driving the widget, never concurrently.
type Timer struct {
	remaining time.Duration
	interval  time.Duration // 0 for one-shot timers
	fn        func()
	stopped   bool
}

// Stop cancels the timer. It reports whether the timer was still pending;
// stopping an already fired or stopped timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Scheduler runs one-shot and repeating timers against frame time. It is
// advanced by the widget's Update, so timer callbacks interleave with input
// and tween completion in a single, deterministic order.
type Scheduler struct {
	timers []*Timer
	now    time.Duration
}

// NewScheduler returns an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc calls fn once, after d of frame time has elapsed.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{remaining: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Every calls fn each time interval of frame time elapses, until stopped.
// Panics if interval is not positive.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic("slides: Every interval must be positive")
	}
	t := &Timer{remaining: interval, interval: interval, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves frame time forward by dt and fires due timers in the order
// they were scheduled. A repeating timer fires at most once per Advance; when
// a frame runs long it resumes a full interval later instead of bursting.
// Timers scheduled from a callback are first considered on the next Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt

	n := len(s.timers)
	for i := 0; i < n && i < len(s.timers); i++ {
		t := s.timers[i]
		if t.stopped {
			continue
		}
		t.remaining -= dt
		if t.remaining > 0 {
			continue
		}
		if t.interval > 0 {
			t.remaining += t.interval
			if t.remaining <= 0 {
				t.remaining = t.interval
			}
		} else {
			t.stopped = true
		}
		t.fn()
	}

	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Now returns the total frame time advanced so far.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	count := 0
	for _, t := range s.timers {
		if !t.stopped {
			count++
		}
	}
	return count
}

// Clear stops and drops every timer.
func (s *Scheduler) Clear() {
	for i, t := range s.timers {
		t.stopped = true
		s.timers[i] = nil
	}
	s.timers = s.timers[:0]
}
