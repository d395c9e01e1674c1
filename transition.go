package slides

// Multiplier is how many viewport widths the control track spans for n
// slides: one for a single panel, three (left, current, right) otherwise so
// that either neighbor can be slid in from off-screen.
func Multiplier(n int) int {
	if n <= 1 {
		return 1
	}
	return 3
}

// Orientation describes one transition. It is built once per request and
// passed by value to the animation strategy.
type Orientation struct {
	Direction Direction
	Outgoing  int // -1 on the very first transition
	Upcoming  int

	// UpcomingPosition is the X, in control-track coordinates, the upcoming
	// panel starts from; Offset is the X the control track moves to.
	UpcomingPosition float64
	Offset           float64

	// Backward is set for moves toward earlier slides.
	Backward bool
}

// newOrientation lays out a forward move (upcoming panel right of the
// current one, track slides left) unless the direction is Prev or an index
// earlier than the outgoing slide, which lay out the mirror image.
func newOrientation(dir Direction, outgoing, upcoming int, width float64) Orientation {
	o := Orientation{
		Direction:        dir,
		Outgoing:         outgoing,
		Upcoming:         upcoming,
		UpcomingPosition: width * 2,
		Offset:           -width * 2,
	}
	if i, ok := dir.IndexValue(); dir.IsPrev() || (ok && i < outgoing) {
		o.UpcomingPosition = 0
		o.Offset = 0
		o.Backward = true
	}
	return o
}

// TransitionEngineOptions are the collaborators a TransitionEngine is built
// from.
type TransitionEngineOptions struct {
	// Size returns the current slide count. Required.
	Size func() int
	// Viewport returns the current viewport. Required.
	Viewport func() Viewport
	// Run performs the animation for o and calls done once when it ends.
	// Required.
	Run func(o Orientation, done func())
	// Reveal is called after the first transition completes.
	Reveal func()
	// Events receives EventAnimated. May be nil.
	Events EventSink
	// WidgetID is stamped on emitted events.
	WidgetID uint32
	// Logf receives diagnostics for rejected and dropped requests. May be nil.
	Logf func(format string, args ...any)
}

// TransitionEngine sequences transitions between slides. At most one
// transition is in flight: requests made while one runs are dropped, not
// queued.
type TransitionEngine struct {
	opts          TransitionEngineOptions
	position      Position
	transitioning bool
	initialized   bool
}

// NewTransitionEngine returns an idle engine positioned before the first
// slide.
func NewTransitionEngine(opts TransitionEngineOptions) *TransitionEngine {
	e := &TransitionEngine{opts: opts}
	e.position = InitialPosition(opts.Size())
	return e
}

// Animate starts a transition in direction dir. callback, if non-nil, runs
// after the position has advanced. It returns false, without side effects,
// when a transition is already running or dir does not resolve to a slide
// in [0, Size()).
func (e *TransitionEngine) Animate(dir Direction, callback func()) bool {
	if e.transitioning {
		e.logf("dropped %v: transition in flight", dir)
		return false
	}

	n := e.opts.Size()
	upcoming, ok := ResolveTarget(dir, e.position, n)
	if !ok || upcoming < 0 || upcoming >= n {
		e.logf("rejected %v with %d slides", dir, n)
		return false
	}

	o := newOrientation(dir, e.position.Current, upcoming, e.opts.Viewport().Width)
	e.transitioning = true
	e.opts.Run(o, func() { e.complete(o, callback) })
	return true
}

func (e *TransitionEngine) complete(o Orientation, callback func()) {
	e.position = e.position.Advance(o.Upcoming, e.opts.Size())

	if callback != nil {
		callback()
	}

	e.transitioning = false

	if e.initialized {
		if e.opts.Events != nil {
			e.opts.Events.Emit(Event{Type: EventAnimated, WidgetID: e.opts.WidgetID})
		}
		return
	}
	e.initialized = true
	if e.opts.Reveal != nil {
		e.opts.Reveal()
	}
}

// Refresh recomputes Next and Prev around the current slide, e.g. after the
// slide count changed between sessions.
func (e *TransitionEngine) Refresh() {
	e.position = e.position.Advance(e.position.Current, e.opts.Size())
}

// Position returns the current position.
func (e *TransitionEngine) Position() Position {
	return e.position
}

// Transitioning reports whether a transition is in flight.
func (e *TransitionEngine) Transitioning() bool {
	return e.transitioning
}

// Initialized reports whether the first transition has completed.
func (e *TransitionEngine) Initialized() bool {
	return e.initialized
}

func (e *TransitionEngine) logf(format string, args ...any) {
	if e.opts.Logf != nil {
		e.opts.Logf(format, args...)
	}
}
