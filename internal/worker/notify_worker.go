package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// NotifyTask asks for a booking decision notice to be delivered to the
// booker.
type NotifyTask struct {
	Booking  *models.Booking
	Approved bool
}

// Notifier delivers a decision notice. Implementations must be safe for
// concurrent use.
type Notifier interface {
	NotifyBookingDecided(ctx context.Context, booking *models.Booking, approved bool) error
}

// NotifyWorker drains a buffered queue of decision notices, retrying
// delivery with exponential backoff. Tasks that exhaust their retries are
// dropped with an error log.
type NotifyWorker struct {
	notifier    Notifier
	retryPolicy RetryPolicy
	queue       chan NotifyTask
	logger      *zerolog.Logger
}

func NewNotifyWorker(notifier Notifier, retry RetryPolicy, queueSize int, logger *zerolog.Logger) *NotifyWorker {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 3
	}
	if retry.InitialDelay == 0 {
		retry.InitialDelay = time.Second
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = 30 * time.Second
	}
	if queueSize <= 0 {
		queueSize = 1000
	}

	return &NotifyWorker{
		notifier:    notifier,
		retryPolicy: retry,
		queue:       make(chan NotifyTask, queueSize),
		logger:      logger,
	}
}

// Enqueue schedules a notice without blocking; a full queue drops the task.
func (w *NotifyWorker) Enqueue(task NotifyTask) error {
	if task.Booking == nil {
		return errors.New("booking is required")
	}
	select {
	case w.queue <- task:
		return nil
	default:
		return errors.New("notification queue is full")
	}
}

// SubscribeTo wires the worker to booking decision events on the bus.
func (w *NotifyWorker) SubscribeTo(bus *events.EventBus) {
	handler := func(approved bool) events.EventHandler {
		return func(event *events.Event) error {
			var payload events.BookingEventPayload
			if err := json.Unmarshal(event.Payload, &payload); err != nil {
				return err
			}
			booking := &models.Booking{
				ID:       payload.BookingID,
				ItemID:   payload.ItemID,
				BookerID: payload.BookerID,
				Status:   models.BookingStatus(payload.Status),
				Start:    payload.Start,
				End:      payload.End,
			}
			return w.Enqueue(NotifyTask{Booking: booking, Approved: approved})
		}
	}
	bus.Subscribe(events.EventBookingApproved, handler(true))
	bus.Subscribe(events.EventBookingRejected, handler(false))
}

// Run processes the queue until the context is canceled.
func (w *NotifyWorker) Run(ctx context.Context) {
	w.logger.Info().Msg("notification worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("notification worker stopped")
			return
		case task := <-w.queue:
			w.deliver(ctx, task)
		}
	}
}

func (w *NotifyWorker) deliver(ctx context.Context, task NotifyTask) {
	var lastErr error
	for attempt := 1; attempt <= w.retryPolicy.MaxRetries; attempt++ {
		lastErr = w.notifier.NotifyBookingDecided(ctx, task.Booking, task.Approved)
		if lastErr == nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.retryPolicy.NextDelay(attempt)):
		}
	}

	w.logger.Error().Err(lastErr).Int64("booking_id", task.Booking.ID).
		Msg("notification delivery failed after retries")
}
