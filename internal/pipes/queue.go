package pipes

import "errors"

// QueueItem is one upcoming placeable pipe: a kind and a rotation.
type QueueItem struct {
	Kind     KindID
	Rotation Rotation
}

// Queue is the fixed-size lookahead buffer of upcoming pipes. The front item
// is the next one the player places; advancing pops the front and appends a
// freshly drawn item so the size stays constant. Determinism is entirely a
// function of the injected RNG.
type Queue struct {
	items []QueueItem
	kinds []KindID
	rng   *Rand
}

// NewQueue creates a queue of the given size, pre-filled from the allowed
// kinds. Size < 1 or an empty kind set is a configuration defect and fails
// fast.
func NewQueue(size int, kinds []KindID, rng *Rand) (*Queue, error) {
	if size < 1 {
		return nil, errors.New("pipes: queue size must be at least 1")
	}
	if len(kinds) == 0 {
		return nil, errors.New("pipes: queue needs a non-empty allowed-kinds list")
	}
	q := &Queue{
		items: make([]QueueItem, 0, size),
		kinds: kinds,
		rng:   rng,
	}
	for i := 0; i < size; i++ {
		q.items = append(q.items, q.draw())
	}
	return q, nil
}

// draw samples kind and rotation independently and uniformly.
func (q *Queue) draw() QueueItem {
	return QueueItem{
		Kind:     q.kinds[q.rng.Intn(len(q.kinds))],
		Rotation: Rotation(q.rng.Intn(4)),
	}
}

// Len returns the queue size.
func (q *Queue) Len() int {
	return len(q.items)
}

// Peek returns the front item without mutating the queue.
func (q *Queue) Peek() QueueItem {
	return q.items[0]
}

// Advance removes and returns the front item, appending a fresh draw to keep
// the size constant.
func (q *Queue) Advance() QueueItem {
	front := q.items[0]
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = q.draw()
	return front
}

// Items returns the queued items front-first, for display.
func (q *Queue) Items() []QueueItem {
	out := make([]QueueItem, len(q.items))
	copy(out, q.items)
	return out
}
