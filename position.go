package slides

import (
	"strconv"
	"strings"
)

type directionKind uint8

const (
	dirNone directionKind = iota
	dirNext
	dirPrev
	dirIndex
)

// Direction is a navigation intent: the next slide, the previous slide, a
// literal index, or nothing. The zero value is the rejected direction.
type Direction struct {
	kind  directionKind
	index int
}

var (
	// Next moves forward one slide, wrapping past the last.
	Next = Direction{kind: dirNext}
	// Prev moves back one slide, wrapping past the first.
	Prev = Direction{kind: dirPrev}
	// NoDirection is never resolvable.
	NoDirection = Direction{}
)

// Index returns a Direction targeting slide i. The index is used verbatim;
// out-of-range values are rejected when the transition is requested.
func Index(i int) Direction {
	return Direction{kind: dirIndex, index: i}
}

// ParseDirection maps "next", "prev" (any case) and decimal integers to a
// Direction. Anything else yields NoDirection.
func ParseDirection(s string) Direction {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "next":
		return Next
	case "prev":
		return Prev
	}
	if i, err := strconv.Atoi(s); err == nil {
		return Index(i)
	}
	return NoDirection
}

// IsNext reports whether d is Next.
func (d Direction) IsNext() bool { return d.kind == dirNext }

// IsPrev reports whether d is Prev.
func (d Direction) IsPrev() bool { return d.kind == dirPrev }

// IndexValue returns the literal index of an Index direction.
func (d Direction) IndexValue() (int, bool) {
	return d.index, d.kind == dirIndex
}

func (d Direction) String() string {
	switch d.kind {
	case dirNext:
		return "next"
	case dirPrev:
		return "prev"
	case dirIndex:
		return strconv.Itoa(d.index)
	default:
		return "none"
	}
}

// Position is the slide shown now and its neighbors over a circular sequence.
// Current is -1 before the first transition completes.
type Position struct {
	Current int
	Next    int
	Prev    int
}

// InitialPosition is the position of an n-slide widget before anything has
// been shown. With no slides every field is -1.
func InitialPosition(n int) Position {
	return Position{Current: -1}.Advance(-1, n)
}

// Advance returns the position with current set to target and the
// neighbors recomputed for n slides.
func (p Position) Advance(target, n int) Position {
	if n <= 0 {
		return Position{Current: target, Next: -1, Prev: -1}
	}
	return Position{Current: target, Next: nextIndex(target, n), Prev: prevIndex(target, n)}
}

// ResolveTarget turns a direction into a slide index. Next and Prev wrap
// around n; an Index is returned as given and must be range checked by the
// caller. NoDirection, and anything when n is 0, does not resolve.
func ResolveTarget(d Direction, p Position, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	switch d.kind {
	case dirNext:
		return nextIndex(p.Current, n), true
	case dirPrev:
		return prevIndex(p.Current, n), true
	case dirIndex:
		return d.index, true
	default:
		return 0, false
	}
}

// nextIndex and prevIndex accept current == -1, the pre-initialization
// sentinel: its next is 0 and its prev is the last slide.
func nextIndex(current, n int) int {
	i := current + 1
	if i >= n {
		i = 0
	}
	return i
}

func prevIndex(current, n int) int {
	i := current - 1
	if i < 0 {
		i = n - 1
	}
	return i
}
