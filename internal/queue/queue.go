package queue

import (
	"errors"
	"sync"

	"vitrine/server/internal/models"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// PropertyQueue buffers batches of property rows between the import
// endpoint and the batch processor.
type PropertyQueue struct {
	items    chan []*models.PropertyRow
	done     chan struct{}
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func([]*models.PropertyRow) error
}

// NewPropertyQueue creates a queue holding up to bufferSize batches.
func NewPropertyQueue(bufferSize int, logger *logrus.Logger) *PropertyQueue {
	return &PropertyQueue{
		items:  make(chan []*models.PropertyRow, bufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Push adds a batch to the queue without blocking. It fails with
// ErrQueueFull when the buffer is exhausted so the caller can signal
// back-pressure instead of stalling a request.
func (q *PropertyQueue) Push(batch []*models.PropertyRow) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.items <- batch:
		q.logger.WithField("batch_size", len(batch)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe registers a handler invoked for every batch taken off the
// queue.
func (q *PropertyQueue) Subscribe(handler func([]*models.PropertyRow) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins draining the queue in a background goroutine.
func (q *PropertyQueue) Start() {
	go func() {
		for {
			select {
			case <-q.done:
				return
			case batch := <-q.items:
				q.dispatch(batch)
			}
		}
	}()
}

func (q *PropertyQueue) dispatch(batch []*models.PropertyRow) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops the queue and rejects further pushes.
func (q *PropertyQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	return nil
}

// Len returns the number of buffered batches.
func (q *PropertyQueue) Len() int {
	return len(q.items)
}

// IsClosed reports whether Close has been called.
func (q *PropertyQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
