package slides

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxTweenFields is the number of float64 fields one TweenGroup can drive.
const maxTweenFields = 4

// Prop names one numeric property of a node and the value to animate it to.
type Prop struct {
	Field *float64
	To    float64
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one with NewTweenGroup and call Update(dt) each frame; Tweener does
// this for the widget. If the target node is disposed, the group stops
// immediately without completing.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	count  int
	fields [maxTweenFields]*float64
	target *Node
	Done   bool

	// OnComplete is called once, on the Update that finishes every tween.
	OnComplete func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		g.OnComplete = nil
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && g.OnComplete != nil {
		fn := g.OnComplete
		g.OnComplete = nil
		fn()
	}
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if g.count == maxTweenFields {
		panic("slides: a tween group drives at most 4 fields")
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// NewTweenGroup creates a TweenGroup that animates each prop from its
// current value to its target over duration seconds. It panics on more than
// 4 props.
func NewTweenGroup(node *Node, props []Prop, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	for _, p := range props {
		g.add(p.Field, p.To, duration, fn)
	}
	return g
}

// Animator interpolates numeric node properties over time. Animate must call
// done exactly once, after every property has reached its target.
type Animator interface {
	Animate(node *Node, props []Prop, duration time.Duration, easing string, done func())
}

// Tweener is the Animator a Widget drives every frame. It owns the active
// tween groups and drops each one once it has finished.
type Tweener struct {
	groups []*TweenGroup
	logf   func(format string, args ...any)
}

// NewTweener returns an empty Tweener.
func NewTweener() *Tweener {
	return &Tweener{}
}

// Animate starts tweening props on node. A non-positive duration applies the
// targets and calls done immediately. Unknown easing names fall back to swing.
func (t *Tweener) Animate(node *Node, props []Prop, duration time.Duration, easing string, done func()) {
	if duration <= 0 {
		for _, p := range props {
			*p.Field = p.To
		}
		if done != nil {
			done()
		}
		return
	}

	fn, ok := EasingByName(easing)
	if !ok && t.logf != nil {
		t.logf("unknown easing %q, using swing", easing)
	}

	g := NewTweenGroup(node, props, float32(duration.Seconds()), fn)
	g.OnComplete = done
	t.groups = append(t.groups, g)
}

// Update advances every active group by dt seconds. Groups started from a
// completion callback begin on the next Update.
func (t *Tweener) Update(dt float32) {
	n := len(t.groups)
	for i := 0; i < n && i < len(t.groups); i++ {
		t.groups[i].Update(dt)
	}

	live := t.groups[:0]
	for _, g := range t.groups {
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(t.groups); i++ {
		t.groups[i] = nil
	}
	t.groups = live
}

// Len returns the number of unfinished groups.
func (t *Tweener) Len() int {
	return len(t.groups)
}

// Clear drops every group without calling completion callbacks.
func (t *Tweener) Clear() {
	for i := range t.groups {
		t.groups[i] = nil
	}
	t.groups = t.groups[:0]
}
