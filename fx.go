package slides

import (
	"fmt"
	"strings"
	"time"
)

// Animation selects the transition strategy.
type Animation uint8

const (
	AnimationSlide Animation = iota // the control track slides the upcoming panel in
	AnimationFade                   // the outgoing panel fades out over the upcoming one
)

func (a Animation) String() string {
	if a == AnimationFade {
		return "fade"
	}
	return "slide"
}

// ParseAnimation maps "slide" and "fade" (any case) to an Animation.
func ParseAnimation(name string) (Animation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "slide", "":
		return AnimationSlide, nil
	case "fade":
		return AnimationFade, nil
	default:
		return AnimationSlide, fmt.Errorf("unknown animation %q (want slide or fade)", name)
	}
}

// stage is what a strategy moves: the control track and the panels inside
// the slide container, animated through the widget's Animator.
type stage struct {
	control   *Node
	container *Node
	animator  Animator
	viewport  func() Viewport
	speed     time.Duration
	easing    string
}

func (s *stage) size() int {
	return s.container.NumChildren()
}

func (s *stage) panel(i int) *Node {
	return s.container.ChildAt(i)
}

// strategy runs one transition and calls done exactly once when it ends.
type strategy func(s *stage, o Orientation, done func())

func (a Animation) strategy() strategy {
	if a == AnimationFade {
		return fadeTransition
	}
	return slideTransition
}

// slideTransition parks the upcoming panel beside the current one and moves
// the control track by one viewport width. On completion the track snaps back
// to its resting offset with the upcoming panel in the visible slot.
func slideTransition(s *stage, o Orientation, done func()) {
	upcoming := s.panel(o.Upcoming)
	upcoming.X = o.UpcomingPosition
	upcoming.Visible = true

	props := []Prop{{Field: &s.control.X, To: o.Offset}}
	s.animator.Animate(s.control, props, s.speed, s.easing, func() {
		if s.size() > 1 {
			width := s.viewport().Width
			s.control.X = -width

			upcoming.X = width
			upcoming.SetZIndex(2)

			if o.Outgoing >= 0 && o.Outgoing != o.Upcoming {
				outgoing := s.panel(o.Outgoing)
				outgoing.X = width
				outgoing.Visible = false
				outgoing.SetZIndex(0)
			}
		}
		done()
	})
}

// fadeTransition shows the upcoming panel in the visible slot underneath the
// outgoing one and fades the outgoing panel out. With nothing to fade out it
// completes immediately.
func fadeTransition(s *stage, o Orientation, done func()) {
	width := s.viewport().Width
	upcoming := s.panel(o.Upcoming)
	upcoming.X = width
	upcoming.Alpha = 1
	upcoming.Visible = true

	if o.Outgoing < 0 || o.Outgoing == o.Upcoming {
		upcoming.SetZIndex(2)
		done()
		return
	}

	outgoing := s.panel(o.Outgoing)
	props := []Prop{{Field: &outgoing.Alpha, To: 0}}
	s.animator.Animate(outgoing, props, s.speed, s.easing, func() {
		if s.size() > 1 {
			upcoming.SetZIndex(2)
			outgoing.Alpha = 1
			outgoing.Visible = false
			outgoing.SetZIndex(0)
		}
		done()
	})
}
