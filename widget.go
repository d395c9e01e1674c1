package slides

import (
	"time"
)

// Names given to the nodes a widget creates or looks for.
const (
	ControlName = "slides-control" // the track wrapped around the container
	PanelName   = "slide"          // the panel wrapped around an image slide
	NavNextName = "next"           // nav child that moves forward; any other nav child moves back
)

// widgetIDCounter is a plain counter (no atomic; slides is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Widget is a slideshow attached to a node tree. The tree under the root
// holds a container whose children are the slides and, optionally, a nav
// node with "next" and "prev" buttons.
//
// A Widget implements ebiten.Game: Update drives input, timers and tweens;
// Draw renders the root; Layout tracks the window size for resize handling.
// All methods must be called from the goroutine running the game loop.
type Widget struct {
	id  uint32
	cfg Config

	root      *Node
	control   *Node
	container *Node
	nav       *Node

	viewport   Viewport
	multiplier int
	window     windowSize

	tweener   *Tweener
	scheduler *Scheduler
	engine    *TransitionEngine
	playback  *Playback
	events    Dispatcher

	pointer      PointerSource
	pointerState pointerState
	injectQueue  []syntheticPointerEvent
	bindings     []*Node
	resizeTimer  *Timer

	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	debug     bool
	destroyed bool
}

// windowSize is the default SizingSource, fed by Layout.
type windowSize struct {
	w, h float64
}

func (s *windowSize) Width() float64  { return s.w }
func (s *windowSize) Height() float64 { return s.h }

// New attaches a slideshow to root. The slides are the children of the node
// named cfg.Elements.Container (created empty if missing); image slides are
// wrapped in panels. The container is wrapped in a control track, every node
// is laid out for the current viewport and nav buttons are bound. Playback
// then starts, beginning the transition to the first slide, and EventInit is
// emitted last. The container stays hidden until that transition completes.
func New(root *Node, cfg Config) *Widget {
	cfg = cfg.withDefaults()
	w := &Widget{
		id:            nextWidgetID(),
		cfg:           cfg,
		root:          root,
		tweener:       NewTweener(),
		scheduler:     NewScheduler(),
		pointer:       ebitenPointer{},
		ScreenshotDir: "screenshots",
	}
	w.tweener.logf = w.logf
	w.events.Forward(cfg.Events)

	w.container = root.Find(cfg.Elements.Container)
	if w.container == nil {
		w.container = NewContainer(cfg.Elements.Container)
		root.AddChild(w.container)
	}
	w.nav = root.Find(cfg.Elements.Nav)

	w.wrapImageSlides()
	w.multiplier = Multiplier(w.Size())
	w.wrapContainer()

	w.viewport = w.computeViewport()
	w.setupNodes()
	w.setupChildren()
	w.setupContainers()
	w.setupImages()

	st := &stage{
		control:   w.control,
		container: w.container,
		animator:  w.tweener,
		viewport:  w.Viewport,
		speed:     cfg.AnimationSpeed,
		easing:    cfg.AnimationEasing,
	}
	run := cfg.Animation.strategy()
	w.engine = NewTransitionEngine(TransitionEngineOptions{
		Size:     w.Size,
		Viewport: w.Viewport,
		Run:      func(o Orientation, done func()) { run(st, o, done) },
		Reveal:   func() { w.container.Visible = true },
		Events:   &w.events,
		WidgetID: w.id,
		Logf:     w.logf,
	})
	w.playback = NewPlayback(cfg.Play, w.scheduler, func() { w.engine.Animate(Next, nil) }, &w.events, w.id)

	w.bindNavigation()
	w.Start()
	w.emit(EventInit)
	return w
}

// wrapImageSlides puts every image child of the container into its own
// panel, so that all slides are panels regardless of content.
func (w *Widget) wrapImageSlides() {
	for i := 0; i < w.container.NumChildren(); i++ {
		child := w.container.ChildAt(i)
		if child.Type != NodeTypeImage {
			continue
		}
		panel := NewContainer(PanelName)
		w.container.RemoveChild(child)
		w.container.AddChildAt(panel, i)
		panel.AddChild(child)
	}
}

// wrapContainer inserts the control track between the container and its
// parent, at the container's position.
func (w *Widget) wrapContainer() {
	w.control = NewContainer(ControlName)
	parent := w.container.Parent
	index := parent.indexOf(w.container)
	parent.RemoveChild(w.container)
	parent.AddChildAt(w.control, index)
	w.control.AddChild(w.container)
}

func (w *Widget) computeViewport() Viewport {
	var width, height SizingSource = &w.window, &w.window
	if w.cfg.InheritWidthFrom != nil {
		width = w.cfg.InheritWidthFrom
	}
	if w.cfg.InheritHeightFrom != nil {
		height = w.cfg.InheritHeightFrom
	}
	return ComputeViewport(width, height)
}

// setupNodes applies the fixed presentation: the root clips, the container
// is hidden until the first transition, scaled images sit behind panel
// content.
func (w *Widget) setupNodes() {
	w.root.Clip = true
	w.control.Y = 0
	w.container.X, w.container.Y = 0, 0
	w.container.Visible = false

	w.eachScaledImage(func(img *Node) {
		img.SetZIndex(-1)
	})
}

// setupChildren parks every panel, hidden, to the right of the visible slot.
func (w *Widget) setupChildren() {
	for _, panel := range w.container.Children() {
		panel.Clip = true
		panel.Visible = false
		panel.SetSize(w.viewport.Width, w.viewport.Height)
		panel.SetPosition(w.viewport.Width*2, 0)
		panel.SetZIndex(0)
	}
}

// setupContainers sizes the root and the track; the track rests one viewport
// width to the left so that its middle slot is the visible one.
func (w *Widget) setupContainers() {
	vp := w.viewport
	w.root.SetSize(vp.Width, vp.Height)

	w.control.SetSize(vp.Width*float64(w.multiplier), vp.Height)
	w.control.X = -vp.Width

	w.container.SetSize(w.control.Width, vp.Height)
}

func (w *Widget) setupImages() {
	w.eachScaledImage(func(img *Node) {
		Place(img, w.viewport)
	})
}

// eachScaledImage calls fn for every image in the container that is not
// preserved.
func (w *Widget) eachScaledImage(fn func(*Node)) {
	preserve := w.cfg.Elements.Preserve
	w.container.Walk(func(n *Node) bool {
		if n.Type == NodeTypeImage && (preserve == "" || n.Name != preserve) {
			fn(n)
		}
		return true
	})
}

// bindNavigation makes every child of the nav node a button: "next" moves
// forward, anything else moves back. Each click stops playback first.
func (w *Widget) bindNavigation() {
	if w.nav == nil {
		return
	}
	for _, button := range w.nav.Children() {
		dir := Prev
		if button.Name == NavNextName {
			dir = Next
		}
		button.Interactable = true
		button.OnClick = func(ClickContext) {
			w.Navigate(dir)
		}
		w.bindings = append(w.bindings, button)
	}
}

// relayout recomputes the viewport and resizes panels, containers and images.
// A transition in flight keeps running with the new geometry.
func (w *Widget) relayout() {
	w.viewport = w.computeViewport()
	w.logf("relayout %.0fx%.0f", w.viewport.Width, w.viewport.Height)

	for _, panel := range w.container.Children() {
		panel.SetSize(w.viewport.Width, w.viewport.Height)
		panel.X = w.viewport.Width
	}
	w.setupContainers()
	w.setupImages()
}

// --- Navigation ---

// Animate requests a transition without touching playback. It reports
// whether the transition started; see TransitionEngine.Animate.
func (w *Widget) Animate(dir Direction, callback func()) bool {
	if w.destroyed {
		return false
	}
	return w.engine.Animate(dir, callback)
}

// Navigate is manual navigation: it stops playback, then requests one
// transition.
func (w *Widget) Navigate(dir Direction) bool {
	if w.destroyed {
		return false
	}
	w.Stop()
	return w.engine.Animate(dir, nil)
}

// Next navigates to the next slide.
func (w *Widget) Next() bool { return w.Navigate(Next) }

// Prev navigates to the previous slide.
func (w *Widget) Prev() bool { return w.Navigate(Prev) }

// GoTo navigates to slide i.
func (w *Widget) GoTo(i int) bool { return w.Navigate(Index(i)) }

// Start begins playback: one transition now and, if Config.Play is set, one
// every interval.
func (w *Widget) Start() {
	if w.destroyed {
		return
	}
	w.playback.Start()
}

// Stop ends automatic playback.
func (w *Widget) Stop() {
	if w.destroyed {
		return
	}
	w.playback.Stop()
}

// Refresh recomputes the neighbors of the current slide and emits
// EventUpdated.
func (w *Widget) Refresh() {
	if w.destroyed {
		return
	}
	w.engine.Refresh()
	w.emit(EventUpdated)
}

// On registers fn for lifecycle events of type t.
func (w *Widget) On(t EventType, fn func(Event)) Subscription {
	return w.events.On(t, fn)
}

// SetEventSink forwards every later event to sink, after handlers registered
// with On. Nil stops forwarding.
func (w *Widget) SetEventSink(sink EventSink) {
	w.events.Forward(sink)
}

// Destroy detaches the widget: timers and tweens are dropped, nav buttons
// and event handlers are unbound, and the container is put back where the
// control track was. A transition in flight never completes.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true

	w.playback.cancel()
	w.scheduler.Clear()
	w.tweener.Clear()
	w.resizeTimer = nil

	for _, button := range w.bindings {
		button.OnClick = nil
		button.Interactable = false
	}
	w.bindings = nil
	w.events.Clear()
	w.injectQueue = nil

	if parent := w.control.Parent; parent != nil {
		index := parent.indexOf(w.control)
		parent.RemoveChild(w.control)
		parent.AddChildAt(w.container, index)
	}
}

// --- Accessors ---

// ID returns the widget's identity, as carried by its events.
func (w *Widget) ID() uint32 { return w.id }

// Root returns the node the widget is attached to.
func (w *Widget) Root() *Node { return w.root }

// Container returns the node whose children are the slides.
func (w *Widget) Container() *Node { return w.container }

// Control returns the track wrapped around the container.
func (w *Widget) Control() *Node { return w.control }

// Size returns the number of slides.
func (w *Widget) Size() int { return w.container.NumChildren() }

// Position returns the current, next and previous slide indices.
func (w *Widget) Position() Position { return w.engine.Position() }

// Current returns the index of the slide shown, or -1 before the first
// transition completes.
func (w *Widget) Current() int { return w.engine.Position().Current }

// Viewport returns the viewport computed at the last layout.
func (w *Widget) Viewport() Viewport { return w.viewport }

// Multiplier returns the control track width in viewports.
func (w *Widget) Multiplier() int { return w.multiplier }

// Playing reports whether autoplay is scheduled.
func (w *Widget) Playing() bool { return w.playback.Playing() }

// Transitioning reports whether a transition is in flight.
func (w *Widget) Transitioning() bool { return w.engine.Transitioning() }

// Destroyed reports whether Destroy has been called.
func (w *Widget) Destroyed() bool { return w.destroyed }

// Config returns the options the widget was built with.
func (w *Widget) Config() Config { return w.cfg }

// --- Frame loop ---

// Update advances the widget by one tick of ebiten.TPS.
func (w *Widget) Update() error {
	w.Advance(time.Second / time.Duration(ebitenTPS()))
	return nil
}

// Advance runs one frame of dt: automation script, pointer input, timers,
// then tweens.
func (w *Widget) Advance(dt time.Duration) {
	if w.destroyed {
		return
	}
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInput()
	w.scheduler.Advance(dt)
	w.tweener.Update(float32(dt.Seconds()))
}

// Layout records the window size and returns it as the logical screen size.
// The first call lays the widget out immediately; later size changes are
// debounced by Config.ResizeDebounce.
func (w *Widget) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := float64(outsideWidth), float64(outsideHeight)
	if w.destroyed || (width == w.window.w && height == w.window.h) {
		return outsideWidth, outsideHeight
	}
	first := w.window.w == 0 && w.window.h == 0
	w.window.w, w.window.h = width, height

	if first {
		w.relayout()
		return outsideWidth, outsideHeight
	}
	w.scheduleRelayout()
	return outsideWidth, outsideHeight
}

// Resize schedules a debounced relayout, for sizing sources that change
// without going through Layout.
func (w *Widget) Resize() {
	if w.destroyed {
		return
	}
	w.scheduleRelayout()
}

func (w *Widget) scheduleRelayout() {
	w.resizeTimer.Stop()
	w.resizeTimer = w.scheduler.AfterFunc(w.cfg.ResizeDebounce, func() {
		w.resizeTimer = nil
		w.relayout()
	})
}

func (w *Widget) emit(t EventType) {
	w.events.Emit(Event{Type: t, WidgetID: w.id})
}
