package screen

import (
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// Button watches the physical power switch with debouncing. A raw edge
// only counts once the line has settled: after a level change the
// watcher waits out the settle window, reads the final level, and fires
// the callback only when the settled level actually changed. That
// mirrors what the bouncy hardware needs — the first edge of a press
// rarely reflects where the switch ends up.
type Button struct {
	read     func() bool
	settle   time.Duration
	poll     time.Duration
	onChange func(high bool)
}

// NewButton configures pin as a pulled-up input and returns a watcher
// for it. onChange receives the settled level: high = switch on.
func NewButton(pin int, settle time.Duration, onChange func(high bool)) *Button {
	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	return newButton(func() bool { return p.Read() == rpio.High }, settle, 10*time.Millisecond, onChange)
}

func newButton(read func() bool, settle, poll time.Duration, onChange func(high bool)) *Button {
	return &Button{
		read:     read,
		settle:   settle,
		poll:     poll,
		onChange: onChange,
	}
}

// Watch polls the switch until stopCh closes. The callback fires once
// immediately with the current level so the screen starts in the state
// the switch demands.
func (b *Button) Watch(stopCh <-chan struct{}) {
	last := b.read()
	b.onChange(last)

	ticker := time.NewTicker(b.poll)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}

		if b.read() == last {
			continue
		}

		// Raw edge seen: let the contacts settle, then trust only the
		// final level.
		select {
		case <-stopCh:
			return
		case <-time.After(b.settle):
		}

		final := b.read()
		if final != last {
			b.onChange(final)
		}
		last = final
	}
}
