package gesture

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed event sequence, then fails like a
// disconnected device.
type scriptedSource struct {
	events []TouchEvent
	pos    int
}

var errDeviceGone = errors.New("device gone")

func (s *scriptedSource) Next() (TouchEvent, error) {
	if s.pos >= len(s.events) {
		return TouchEvent{}, errDeviceGone
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// runScript classifies a sequence of events whose times are offsets from
// a fixed origin, returning every command emitted.
func runScript(t *testing.T, script ...struct {
	edge Edge
	at   time.Duration
}) []Command {
	t.Helper()

	origin := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	oldNow := nowFunc
	nowFunc = func() time.Time { return origin }
	defer func() { nowFunc = oldNow }()

	var events []TouchEvent
	for _, s := range script {
		events = append(events, TouchEvent{Edge: s.edge, Time: origin.Add(s.at)})
	}

	q := NewQueue()
	c := NewClassifier(&scriptedSource{events: events}, q)

	err := c.Run()
	require.ErrorIs(t, err, errDeviceGone)

	var got []Command
	for {
		select {
		case cmd := <-q.Commands():
			got = append(got, cmd)
		case <-time.After(100 * time.Millisecond):
			return got
		}
	}
}

type step = struct {
	edge Edge
	at   time.Duration
}

func TestDoubleTapEmitsSkip(t *testing.T) {
	// Two quick taps: the second release lands 100ms after the first.
	got := runScript(t,
		step{Press, 10 * time.Second},
		step{Release, 10*time.Second + 50*time.Millisecond},
		step{Press, 10*time.Second + 100*time.Millisecond},
		step{Release, 10*time.Second + 150*time.Millisecond},
	)
	assert.Equal(t, []Command{Skip}, got)
}

func TestLongPressEmitsChangeShow(t *testing.T) {
	// press@10.0s, release@12.5s: held 2.5s > 2.0s.
	got := runScript(t,
		step{Press, 10 * time.Second},
		step{Release, 12500 * time.Millisecond},
	)
	assert.Equal(t, []Command{ChangeShow}, got)
}

func TestShortSingleTapEmitsNothing(t *testing.T) {
	got := runScript(t,
		step{Press, 10 * time.Second},
		step{Release, 10*time.Second + 300*time.Millisecond},
	)
	assert.Empty(t, got)
}

func TestTripleTapEmitsTwoSkips(t *testing.T) {
	// Every qualifying release fires exactly once: releases at 50ms
	// spacing produce one Skip per release after the first.
	got := runScript(t,
		step{Press, 10 * time.Second},
		step{Release, 10*time.Second + 10*time.Millisecond},
		step{Press, 10*time.Second + 60*time.Millisecond},
		step{Release, 10*time.Second + 70*time.Millisecond},
		step{Press, 10*time.Second + 120*time.Millisecond},
		step{Release, 10*time.Second + 130*time.Millisecond},
	)
	assert.Equal(t, []Command{Skip, Skip}, got)
}

func TestStartupGuardSuppressesFirstRelease(t *testing.T) {
	// A lone release 1s after startup: the release-to-release gap is
	// measured against the startup timestamp, so nothing fires.
	got := runScript(t,
		step{Release, 1 * time.Second},
	)
	assert.Empty(t, got)
}

func TestReleaseRightAfterStartupFires(t *testing.T) {
	// Thresholds are measured from startup, so a release inside the
	// double-tap window of service start does fire.
	got := runScript(t,
		step{Release, 100 * time.Millisecond},
	)
	assert.Equal(t, []Command{Skip}, got)
}

func TestDoubleTapCheckedBeforeLongPress(t *testing.T) {
	// The second release satisfies both conditions: 150ms after the
	// previous release and 2.65s after the last press. The double-tap
	// branch is checked first, so it classifies as Skip.
	got := runScript(t,
		step{Press, 10 * time.Second},
		step{Release, 12500 * time.Millisecond},
		step{Release, 12650 * time.Millisecond},
	)
	assert.Equal(t, []Command{ChangeShow, Skip}, got)
}
