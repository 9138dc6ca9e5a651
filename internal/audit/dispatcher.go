package audit

import (
	"sync"

	"github.com/BruksfildServices01/client-registry/internal/logging"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher hands events to a single worker through a bounded queue so
// auditing never blocks an operation.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(logger *Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logging.Errorf("audit error: %v", err)
		}
	}
}

// Dispatch queues ev, dropping it when the queue is full. A nil or closed
// Dispatcher drops everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		logging.Warnf("audit dispatcher closed, dropping event %s", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		logging.Warnf("audit queue full, dropping event %s", ev.Action)
	}
}

// Close stops accepting events and waits for the queued ones to be written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
