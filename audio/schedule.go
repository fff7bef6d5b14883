package audio

import (
	"sync"
	"sync/atomic"
)

// graphQueue hands freshly built trigger graphs over to the render callback.
// Any goroutine may push; only the render callback drains. Producers
// serialize among themselves with a mutex and publish through an atomic write
// index, so the consumer never contends for the lock.
type graphQueue struct {
	mu          sync.Mutex
	graphs      []*graph
	read, write *uint32
}

func newGraphQueue(size int) *graphQueue {
	if size <= 0 || size&(size-1) != 0 {
		panic("graph queue size must be a power of 2")
	}
	return &graphQueue{
		graphs: make([]*graph, size),
		read:   new(uint32),
		write:  new(uint32),
	}
}

// push reports whether the graph was accepted. It returns false when the ring
// is full instead of waiting for the render side to catch up.
func (q *graphQueue) push(g *graph) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	write := atomic.LoadUint32(q.write)
	if write-atomic.LoadUint32(q.read) == uint32(len(q.graphs)) {
		return false
	}
	q.graphs[write%uint32(len(q.graphs))] = g
	atomic.StoreUint32(q.write, write+1)
	return true
}

func (q *graphQueue) drain(f func(*graph)) {
	read := atomic.LoadUint32(q.read)
	write := atomic.LoadUint32(q.write)
	for read != write {
		f(q.graphs[read%uint32(len(q.graphs))])
		read++
	}
	atomic.StoreUint32(q.read, read)
}
