package queue

import (
	"context"
	"sync"

	"github.com/orbitl2/operator/ethsender/core"
)

type ConsumerQueue[T any] struct {
	lock    *sync.Cond
	data    []T
	stopped bool
}

func NewConsumerQueue[T any]() *ConsumerQueue[T] {
	return &ConsumerQueue[T]{
		lock: sync.NewCond(&sync.Mutex{}),
		data: []T{},
	}
}

func (cq *ConsumerQueue[T]) Add(item T) {
	cq.lock.L.Lock()
	cq.data = append(cq.data, item)
	cq.lock.Signal()
	cq.lock.L.Unlock()
}

// TryDequeue removes and returns the oldest item, or false if the queue is
// empty or stopped.
func (cq *ConsumerQueue[T]) TryDequeue() (item T, ok bool) {
	cq.lock.L.Lock()
	defer cq.lock.L.Unlock()

	if cq.stopped || len(cq.data) == 0 {
		return item, false
	}

	item = cq.data[0]
	cq.data = cq.data[1:]

	return item, true
}

func (cq *ConsumerQueue[T]) WaitForItems() (result []T) {
	cq.lock.L.Lock()

	for len(cq.data) == 0 && !cq.stopped {
		cq.lock.Wait()
	}

	defer cq.lock.L.Unlock()

	if cq.stopped {
		return nil
	}

	result = append([]T{}, cq.data...)
	cq.data = cq.data[:0]

	return result
}

func (cq *ConsumerQueue[T]) Len() int {
	cq.lock.L.Lock()
	defer cq.lock.L.Unlock()

	return len(cq.data)
}

func (cq *ConsumerQueue[T]) Stop() {
	cq.lock.L.Lock()
	cq.stopped = true
	cq.lock.Broadcast()
	cq.lock.L.Unlock()
}

// PayloadQueue is an in-process transaction payload source for the eth
// sender. Upstream components enqueue built payloads, the sender polls.
type PayloadQueue struct {
	queue *ConsumerQueue[*core.TxPayload]
}

var _ core.TxSource = (*PayloadQueue)(nil)

func NewPayloadQueue() *PayloadQueue {
	return &PayloadQueue{
		queue: NewConsumerQueue[*core.TxPayload](),
	}
}

func (pq *PayloadQueue) Add(payload *core.TxPayload) {
	pq.queue.Add(payload)
}

func (pq *PayloadQueue) NextPayload(ctx context.Context) (*core.TxPayload, error) {
	payload, ok := pq.queue.TryDequeue()
	if !ok {
		return nil, nil
	}

	return payload, nil
}

func (pq *PayloadQueue) Stop() {
	pq.queue.Stop()
}
