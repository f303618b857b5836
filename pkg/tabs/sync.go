package tabs

import "sync"

// Queue names used in logs and metrics.
const (
	queueBarToContainer = "bar->container"
	queueContainerToBar = "container->bar"
)

// keyQueue is an unbounded FIFO of tab keys. Sends never block and receives
// never wait.
type keyQueue struct {
	mu    sync.Mutex
	items []string
}

// Sender is the write end of a key channel. Any number of callers may share
// one Sender.
type Sender struct {
	q *keyQueue
}

// Receiver is the read end of a key channel. It has a single reader.
type Receiver struct {
	q *keyQueue
}

// NewChannel returns the two ends of an unbounded key channel.
func NewChannel() (*Sender, *Receiver) {
	q := &keyQueue{}
	return &Sender{q: q}, &Receiver{q: q}
}

// Send enqueues key. A nil Sender drops it.
func (s *Sender) Send(key string) {
	if s == nil {
		return
	}
	s.q.mu.Lock()
	s.q.items = append(s.q.items, key)
	s.q.mu.Unlock()
}

// TryRecv dequeues the oldest pending key, if any.
func (r *Receiver) TryRecv() (string, bool) {
	if r == nil {
		return "", false
	}
	r.q.mu.Lock()
	defer r.q.mu.Unlock()
	if len(r.q.items) == 0 {
		return "", false
	}
	key := r.q.items[0]
	r.q.items[0] = ""
	r.q.items = r.q.items[1:]
	if len(r.q.items) == 0 {
		r.q.items = nil
	}
	return key, true
}

// Len reports the number of pending keys.
func (r *Receiver) Len() int {
	if r == nil {
		return 0
	}
	r.q.mu.Lock()
	defer r.q.mu.Unlock()
	return len(r.q.items)
}

// Latest empties the queue and returns the newest key along with how many
// older keys were discarded.
func (r *Receiver) Latest() (key string, dropped int, ok bool) {
	if r == nil {
		return "", 0, false
	}
	r.q.mu.Lock()
	defer r.q.mu.Unlock()
	n := len(r.q.items)
	if n == 0 {
		return "", 0, false
	}
	key = r.q.items[n-1]
	r.q.items = nil
	return key, n - 1, true
}
