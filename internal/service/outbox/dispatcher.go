// Package outbox drains queued confirmation emails on a schedule, keeping
// mail-relay latency and failures out of the donor-facing request path.
package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

const sweepBatchSize = 50

// Sender delivers a single message. Failures are reported, never retried by
// the sender itself.
type Sender interface {
	Send(msg domain.OutboxMessage) error
}

// Dispatcher sweeps pending outbox messages on a fixed interval.
type Dispatcher struct {
	cron        *cron.Cron
	queue       domain.OutboxRepository
	sender      Sender
	logger      zerolog.Logger
	every       time.Duration
	maxAttempts int
}

// NewDispatcher creates a dispatcher; call Start to begin sweeping.
func NewDispatcher(queue domain.OutboxRepository, sender Sender, logger zerolog.Logger, every time.Duration, maxAttempts int) *Dispatcher {
	return &Dispatcher{
		cron:        cron.New(),
		queue:       queue,
		sender:      sender,
		logger:      logger,
		every:       every,
		maxAttempts: maxAttempts,
	}
}

// Start schedules the periodic sweep and launches the cron runner.
func (d *Dispatcher) Start() error {
	_, err := d.cron.AddFunc(fmt.Sprintf("@every %s", d.every), func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.every)
		defer cancel()
		d.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule outbox sweep: %w", err)
	}
	d.cron.Start()
	d.logger.Info().Dur("every", d.every).Msg("outbox dispatcher started")
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (d *Dispatcher) Stop() {
	<-d.cron.Stop().Done()
	d.logger.Info().Msg("outbox dispatcher stopped")
}

// Sweep sends every pending message once. A delivery failure is logged and
// counted; the donation behind it is already committed and stays untouched.
func (d *Dispatcher) Sweep(ctx context.Context) {
	msgs, err := d.queue.ListPending(ctx, sweepBatchSize)
	if err != nil {
		d.logger.Error().Err(err).Msg("outbox: list pending failed")
		return
	}
	for _, msg := range msgs {
		if err := d.sender.Send(msg); err != nil {
			d.logger.Error().Err(err).Str("message_id", msg.ID).Int("attempts", msg.Attempts+1).
				Msg("outbox: delivery failed")
			if err := d.queue.MarkFailed(ctx, msg.ID, d.maxAttempts); err != nil {
				d.logger.Error().Err(err).Str("message_id", msg.ID).Msg("outbox: mark failed")
			}
			continue
		}
		if err := d.queue.MarkSent(ctx, msg.ID); err != nil {
			d.logger.Error().Err(err).Str("message_id", msg.ID).Msg("outbox: mark sent")
			continue
		}
		d.logger.Info().Str("message_id", msg.ID).Str("recipient", msg.Recipient).
			Msg("outbox: confirmation delivered")
	}
}
