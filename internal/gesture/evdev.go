package gesture

import (
	"fmt"
	"log"
	"time"

	"github.com/holoplot/go-evdev"
)

// TouchSource reads press/release events from a Linux evdev touchscreen
// device. Only EV_KEY BTN_TOUCH events are surfaced; everything else the
// panel emits (absolute coordinates, sync frames) is ignored.
type TouchSource struct {
	dev *evdev.InputDevice
}

// OpenTouchSource opens the touchscreen device, e.g. /dev/input/event0.
func OpenTouchSource(path string) (*TouchSource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touch device %s: %w", path, err)
	}

	if name, err := dev.Name(); err == nil {
		log.Printf("[gesture] touch device: %s (%s)", path, name)
	}

	return &TouchSource{dev: dev}, nil
}

// Next blocks until the next touch edge arrives. A device read error is
// returned as-is; the device is not reopened.
func (s *TouchSource) Next() (TouchEvent, error) {
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			return TouchEvent{}, fmt.Errorf("touch device read: %w", err)
		}

		if ev.Type != evdev.EV_KEY || ev.Code != evdev.BTN_TOUCH {
			continue
		}

		edge := Release
		if ev.Value != 0 {
			edge = Press
		}

		return TouchEvent{
			Edge: edge,
			Time: time.Unix(ev.Time.Sec, ev.Time.Usec*1000),
		}, nil
	}
}
