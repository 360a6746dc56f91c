package gesture

// Queue is an unbounded FIFO command queue between the classifier
// goroutine and the playback loop. The producer never blocks and no
// command is ever dropped or merged: an internal pump goroutine buffers
// everything the consumer has not yet taken. The consumer side is a
// plain receive channel so the playback loop can select it against
// player-process completion.
type Queue struct {
	in  chan Command
	out chan Command
}

// NewQueue creates the queue and starts its pump goroutine. The queue
// lives for the whole process; there is no close.
func NewQueue() *Queue {
	q := &Queue{
		in:  make(chan Command),
		out: make(chan Command),
	}
	go q.pump()
	return q
}

// Push publishes a command. It returns as soon as the pump has taken
// the value, regardless of consumer state.
func (q *Queue) Push(c Command) {
	q.in <- c
}

// Commands returns the consumer side of the queue. Commands arrive in
// emission order.
func (q *Queue) Commands() <-chan Command {
	return q.out
}

func (q *Queue) pump() {
	var buf []Command
	for {
		// Only offer the head when there is one; a nil channel makes
		// that select arm inert.
		var out chan Command
		var head Command
		if len(buf) > 0 {
			out = q.out
			head = buf[0]
		}

		select {
		case c := <-q.in:
			buf = append(buf, c)
		case out <- head:
			buf = buf[1:]
		}
	}
}
