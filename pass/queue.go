package pass

import (
	"container/list"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dexopt/dex"
)

var errQueueFull = errors.New("class queue is full")

// classQueue buffers classes between the producer and the worker loops.
// The buffered channel carries one token per pending class to block idle
// workers without spinning.
type classQueue struct {
	pending    *list.List
	lock       sync.Mutex
	maxPending int
	bufChan    chan struct{}
}

func newClassQueue(capacity int) *classQueue {
	return &classQueue{
		pending:    list.New(),
		maxPending: capacity,
		bufChan:    make(chan struct{}, capacity),
	}
}

func (q *classQueue) chanRef() <-chan struct{} {
	return q.bufChan
}

func (q *classQueue) enqueue(cls dex.Class) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	if q.pending.Len() >= q.maxPending {
		return errQueueFull
	}
	q.pending.PushBack(cls)
	q.bufChan <- struct{}{}
	return nil
}

func (q *classQueue) pop() dex.Class {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.pending.Len() == 0 {
		return nil
	}
	front := q.pending.Front()
	q.pending.Remove(front)
	return front.Value.(dex.Class)
}
