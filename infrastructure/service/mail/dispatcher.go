package mail

import (
	"context"
	"sync"

	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
)

const defaultQueueSize = 64

// Dispatcher decouples notification delivery from the request path.
// Enqueue hands the message to a background worker and returns
// immediately; delivery failures are logged and dropped, never surfaced
// to the triggering operation.
type Dispatcher struct {
	sender Sender
	logger logger.Logger
	queue  chan Message

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sender Sender, log logger.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		sender: sender,
		logger: log,
		queue:  make(chan Message, queueSize),
		done:   make(chan struct{}),
	}
}

// Start runs the delivery worker until ctx is cancelled or Close is
// called.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case msg := <-d.queue:
				if err := d.sender.Send(ctx, msg); err != nil {
					d.logger.Error(ctx, "mail delivery failed", err, map[string]interface{}{
						"to":      msg.To,
						"subject": msg.Subject,
					})
					continue
				}
				d.logger.Info(ctx, "mail sent", map[string]interface{}{
					"to":      msg.To,
					"subject": msg.Subject,
				})
			case <-ctx.Done():
				return
			case <-d.done:
				return
			}
		}
	}()
}

// Enqueue never blocks: when the queue is full the message is dropped
// with a warning.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn(context.Background(), "mail queue full, dropping message", map[string]interface{}{
			"to":      msg.To,
			"subject": msg.Subject,
		})
	}
}

func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.done) })
}
