package event

import (
	"sync/atomic"
)

// Queue sizing; QueueSize must be a power of two
const (
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// Queue is a lock-free MPSC ring buffer between the host and the core
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (command loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [QueueSize]Event
	published [QueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event using lock-free CAS with published flags pattern
func (q *Queue) Push(ev Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > QueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
func (q *Queue) Consume() []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > QueueSize {
			available = QueueSize
			currentHead = currentTail - QueueSize
		}

		result := make([]Event, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & bufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > QueueSize {
		return QueueSize
	}
	return diff
}
