package server

import (
	"sync"
)

func newReloadNotifier() *reloadNotifier {
	return &reloadNotifier{
		subscribers: map[int]chan struct{}{},
	}
}

// reloadNotifier fans a reload signal out to all subscribed SSE connections.
type reloadNotifier struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan struct{}
	closed      bool
}

// Subscribe registers a new subscriber. The returned channel receives one
// value per reload. Callers must Unsubscribe with the returned id when done.
func (n *reloadNotifier) Subscribe() (int, <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	if n.closed {
		close(ch)
		return -1, ch
	}

	id := n.nextID
	n.nextID++
	n.subscribers[id] = ch

	return id, ch
}

func (n *reloadNotifier) Unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.subscribers[id]; ok {
		delete(n.subscribers, id)
		close(ch)
	}
}

// Notify signals all current subscribers without blocking on slow ones.
func (n *reloadNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *reloadNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true

	for id, ch := range n.subscribers {
		delete(n.subscribers, id)
		close(ch)
	}
}
