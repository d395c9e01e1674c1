package slides

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestPlayback(interval time.Duration) (*Playback, *Scheduler, *recorder, *int) {
	s := NewScheduler()
	rec := &recorder{}
	advances := new(int)
	p := NewPlayback(interval, s, func() { *advances++ }, rec, 1)
	return p, s, rec, advances
}

func TestPlaybackStartAdvancesImmediately(t *testing.T) {
	p, s, rec, advances := newTestPlayback(time.Second)

	p.Start()
	assert.Equal(t, 1, *advances)
	assert.True(t, p.Playing())
	assert.Equal(t, []EventType{EventStarted}, rec.types())

	s.Advance(time.Second)
	assert.Equal(t, 2, *advances)
	s.Advance(time.Second)
	assert.Equal(t, 3, *advances)
}

func TestPlaybackManualOnly(t *testing.T) {
	p, s, rec, advances := newTestPlayback(0)

	p.Start()
	assert.Equal(t, 1, *advances)
	assert.False(t, p.Playing())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []EventType{EventStarted}, rec.types())

	s.Advance(time.Hour)
	assert.Equal(t, 1, *advances)
}

func TestPlaybackStartTwiceKeepsOneTimer(t *testing.T) {
	p, s, rec, advances := newTestPlayback(time.Second)

	p.Start()
	p.Start()

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []EventType{EventStarted, EventStopped, EventStarted}, rec.types())

	s.Advance(time.Second)
	assert.Equal(t, 3, *advances, "two immediate advances plus one tick")
}

func TestPlaybackStop(t *testing.T) {
	p, s, rec, advances := newTestPlayback(time.Second)
	p.Start()

	p.Stop()
	assert.False(t, p.Playing())
	s.Advance(10 * time.Second)
	assert.Equal(t, 1, *advances)

	p.Stop()
	assert.Equal(t, 2, rec.count(EventStopped), "every Stop emits")
}

func TestPlaybackCancelIsSilent(t *testing.T) {
	p, s, rec, _ := newTestPlayback(time.Second)
	p.Start()

	p.cancel()
	assert.False(t, p.Playing())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, rec.count(EventStopped))
	assert.Equal(t, time.Second, p.Interval())
}
