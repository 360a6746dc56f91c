// Package gesture classifies raw touchscreen press/release events into
// the discrete playback commands the player loop consumes. A fast
// double-tap skips the current video; a long press changes the show.
package gesture

import "time"

// Command is a classified touch gesture.
type Command int

const (
	// Skip abandons the current video and continues the same show.
	Skip Command = iota + 1
	// ChangeShow abandons the current video and the current show.
	ChangeShow
)

func (c Command) String() string {
	switch c {
	case Skip:
		return "skip"
	case ChangeShow:
		return "change-show"
	default:
		return "unknown"
	}
}

// Edge is the direction of a touch event.
type Edge int

const (
	Press Edge = iota
	Release
)

// TouchEvent is a single press or release with its kernel timestamp.
type TouchEvent struct {
	Edge Edge
	Time time.Time
}

// Source is a blocking stream of touch events. Next returns the next
// event in order, or an error when the device fails. The stream is not
// restartable: a source error terminates the classifier, and by design
// the whole service, leaving recovery to the process supervisor.
type Source interface {
	Next() (TouchEvent, error)
}

const (
	// DoubleClickThreshold is the longest release-to-release gap that
	// still counts as a double-tap.
	DoubleClickThreshold = 200 * time.Millisecond
	// LongPressThreshold is the shortest press-to-release gap that
	// counts as a long press.
	LongPressThreshold = 2 * time.Second
)
