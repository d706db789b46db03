package player

import "math/rand/v2"

// Shuffle randomizes names in place.
func Shuffle(names []string) {
	rand.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}

// Queue hands out each track once in shuffled order.
type Queue struct {
	pending []string
	history []string
}

// NewQueue copies names and orders the copy with shuffle. A nil shuffle
// keeps the given order.
func NewQueue(names []string, shuffle func([]string)) *Queue {
	pending := append([]string(nil), names...)
	if shuffle != nil {
		shuffle(pending)
	}
	return &Queue{pending: pending}
}

// Next dequeues the next track. ok is false once the queue is exhausted.
func (q *Queue) Next() (name string, ok bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	name = q.pending[0]
	q.pending = q.pending[1:]
	q.history = append(q.history, name)
	return name, true
}

// Len is the number of tracks still waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// History lists the tracks already dequeued, oldest first.
func (q *Queue) History() []string {
	return q.history
}
