package slides

import "time"

// Playback advances a widget automatically. It is Stopped until Start and
// Playing while a recurring timer is scheduled.
type Playback struct {
	interval  time.Duration
	scheduler *Scheduler
	advance   func()
	events    EventSink
	widgetID  uint32
	timer     *Timer
}

// NewPlayback returns a stopped Playback. advance is called for the
// immediate transition on Start and on every tick; interval 0 disables the
// recurring schedule.
func NewPlayback(interval time.Duration, scheduler *Scheduler, advance func(), events EventSink, widgetID uint32) *Playback {
	return &Playback{
		interval:  interval,
		scheduler: scheduler,
		advance:   advance,
		events:    events,
		widgetID:  widgetID,
	}
}

// Start performs one transition right away and, with a positive interval,
// schedules one every interval. An existing schedule is stopped first, so
// there is never more than one.
func (p *Playback) Start() {
	p.advance()

	if p.interval > 0 {
		if p.timer != nil {
			p.Stop()
		}
		p.timer = p.scheduler.Every(p.interval, p.advance)
	}

	p.emit(EventStarted)
}

// Stop cancels the recurring schedule. An in-flight transition is not
// affected. Stopping a stopped Playback only emits EventStopped again.
func (p *Playback) Stop() {
	p.cancel()
	p.emit(EventStopped)
}

// cancel drops the schedule without emitting anything; used on teardown.
func (p *Playback) cancel() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Playing reports whether a recurring schedule is active.
func (p *Playback) Playing() bool {
	return p.timer.Active()
}

// Interval returns the autoplay interval; 0 means manual only.
func (p *Playback) Interval() time.Duration {
	return p.interval
}

func (p *Playback) emit(t EventType) {
	if p.events != nil {
		p.events.Emit(Event{Type: t, WidgetID: p.widgetID})
	}
}
