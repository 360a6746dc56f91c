package gesture

import (
	"log"
	"time"
)

// Classifier turns the raw event stream into commands on a queue.
// It is the queue's only producer and owns its timing state outright,
// so no locking is involved.
type Classifier struct {
	src   Source
	queue *Queue

	lastPress   TouchEvent
	lastRelease TouchEvent
}

// NewClassifier creates a classifier reading from src and publishing to
// queue. Both last-event timestamps start at the source's current time so
// no gesture can fire before the first real press.
func NewClassifier(src Source, queue *Queue) *Classifier {
	now := TouchEvent{Time: nowFunc()}
	return &Classifier{
		src:         src,
		queue:       queue,
		lastPress:   now,
		lastRelease: now,
	}
}

// nowFunc is indirected for the classifier tests.
var nowFunc = func() time.Time { return time.Now() }

// Run consumes the event stream until it fails, classifying every event.
// The returned error is the source's failure and is always non-nil.
func (c *Classifier) Run() error {
	for {
		ev, err := c.src.Next()
		if err != nil {
			return err
		}
		c.handle(ev)
	}
}

// handle classifies one event and records it.
//
// On a release, the double-click check runs before the long-press check;
// the thresholds make the two mutually exclusive in practice, but the
// order is load-bearing and must not be swapped.
func (c *Classifier) handle(ev TouchEvent) {
	if ev.Edge == Release {
		releaseGap := ev.Time.Sub(c.lastRelease.Time)
		pressGap := ev.Time.Sub(c.lastPress.Time)

		if releaseGap < DoubleClickThreshold {
			log.Printf("[gesture] double-tap (%.0fms) -> %s", releaseGap.Seconds()*1000, Skip)
			c.queue.Push(Skip)
		} else if pressGap > LongPressThreshold {
			log.Printf("[gesture] long press (%.1fs) -> %s", pressGap.Seconds(), ChangeShow)
			c.queue.Push(ChangeShow)
		}
	}

	// Always recorded, whether or not a command fired.
	switch ev.Edge {
	case Press:
		c.lastPress = ev
	case Release:
		c.lastRelease = ev
	}
}
