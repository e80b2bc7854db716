package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
)

// Handler consumes one event. Errors are logged by the caller and dropped.
type Handler func(ctx context.Context, event domain.Event) error

// Dispatcher is an in-process EventPublisher backed by a buffered channel and
// a fixed set of workers.
type Dispatcher struct {
	queue   chan domain.Event
	handler Handler
	workers int
	logger  zerolog.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(buffer, workers int, handler Handler, logger zerolog.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = 256
	}
	if workers <= 0 {
		workers = 2
	}
	return &Dispatcher{
		queue:   make(chan domain.Event, buffer),
		handler: handler,
		workers: workers,
		logger:  logger.With().Str("component", "event_dispatcher").Logger(),
	}
}

// Publish enqueues the event, blocking while the buffer is full.
func (d *Dispatcher) Publish(ctx context.Context, event domain.Event) error {
	select {
	case d.queue <- event:
		return nil
	case <-ctx.Done():
		d.logger.Warn().
			Str("event_type", string(event.Type)).
			Str("event_id", event.ID).
			Msg("Dropping event, context done before enqueue")
		return ctx.Err()
	}
}

// Run starts the workers and blocks until ctx is cancelled and the queue is drained.
func (d *Dispatcher) Run(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(ctx)
	}
	d.wg.Wait()
}

func (d *Dispatcher) work(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case event := <-d.queue:
			d.handle(event)
		case <-ctx.Done():
			for {
				select {
				case event := <-d.queue:
					d.handle(event)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) handle(event domain.Event) {
	// Handlers run detached from request contexts.
	if err := d.handler(context.Background(), event); err != nil {
		d.logger.Error().
			Err(err).
			Str("event_type", string(event.Type)).
			Str("event_id", event.ID).
			Msg("Event handler failed")
	}
}
