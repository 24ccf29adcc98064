// Package notifier decouples mutation results from outbound message
// delivery. Sends are best-effort: failures are logged and never surfaced
// to the operation that triggered them.
package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iac-center/praktika-backend/internal/pkg/telegram"
)

// Notifier sends a text message to the recipient identified by an opaque
// external ID. Callers must not depend on delivery.
type Notifier interface {
	// Notify dispatches immediately (still fire-and-forget at the
	// delivery layer).
	Notify(ctx context.Context, recipientID string, text string)

	// NotifyAfter schedules a detached send after the given delay. The
	// caller's context is not used; once scheduled the send cannot be
	// retracted.
	NotifyAfter(delay time.Duration, recipientID string, text string)
}

// Sender is the transport the dispatcher delivers through.
type Sender interface {
	SendText(ctx context.Context, chatID string, text string) error
}

var _ Sender = (*telegram.Client)(nil)

type message struct {
	id          string
	recipientID string
	text        string
	notBefore   time.Time
}

// Dispatcher is a queue-backed Notifier. A single worker goroutine drains
// the queue so HTTP handlers return without waiting on the Bot API.
type Dispatcher struct {
	sender      Sender
	logger      zerolog.Logger
	queue       chan message
	sendTimeout time.Duration

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// DispatcherConfig configures the dispatcher.
type DispatcherConfig struct {
	// QueueSize bounds the number of pending messages. When the queue is
	// full new messages are dropped (and logged), never blocked on.
	QueueSize int

	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration

	Logger zerolog.Logger
}

// NewDispatcher creates and starts a dispatcher.
func NewDispatcher(sender Sender, cfg DispatcherConfig) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 15 * time.Second
	}

	d := &Dispatcher{
		sender:      sender,
		logger:      cfg.Logger,
		queue:       make(chan message, cfg.QueueSize),
		sendTimeout: cfg.SendTimeout,
		done:        make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Notify implements Notifier.
func (d *Dispatcher) Notify(ctx context.Context, recipientID string, text string) {
	d.enqueue(message{
		id:          uuid.New().String(),
		recipientID: recipientID,
		text:        text,
	})
}

// NotifyAfter implements Notifier.
func (d *Dispatcher) NotifyAfter(delay time.Duration, recipientID string, text string) {
	d.enqueue(message{
		id:          uuid.New().String(),
		recipientID: recipientID,
		text:        text,
		notBefore:   time.Now().Add(delay),
	})
}

func (d *Dispatcher) enqueue(msg message) {
	select {
	case d.queue <- msg:
	default:
		// A full queue must never block a mutation path.
		d.logger.Warn().
			Str("messageID", msg.id).
			Str("recipientID", msg.recipientID).
			Msg("Notification queue full, dropping message")
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case <-d.done:
			// Drain whatever is already queued before stopping.
			for {
				select {
				case msg := <-d.queue:
					d.deliver(msg)
				default:
					return
				}
			}
		case msg := <-d.queue:
			d.deliver(msg)
		}
	}
}

func (d *Dispatcher) deliver(msg message) {
	if wait := time.Until(msg.notBefore); wait > 0 {
		select {
		case <-d.done:
			// Shutdown skips the delay but still attempts the send.
		case <-time.After(wait):
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	if err := d.sender.SendText(ctx, msg.recipientID, msg.text); err != nil {
		d.logger.Error().
			Err(err).
			Str("messageID", msg.id).
			Str("recipientID", msg.recipientID).
			Msg("Failed to deliver notification")
		return
	}

	d.logger.Debug().
		Str("messageID", msg.id).
		Str("recipientID", msg.recipientID).
		Msg("Notification delivered")
}

// Close stops the worker after draining queued messages.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
	d.wg.Wait()
}
