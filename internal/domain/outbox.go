package domain

import "time"

// OutboxStatus enumerates delivery states of an outbox message.
type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// OutboxMessage is one queued confirmation email. Intake enqueues it; the
// dispatcher delivers it asynchronously, so donor-facing latency never
// includes the mail relay.
type OutboxMessage struct {
	ID        string
	Recipient string
	Subject   string
	Body      string
	Status    OutboxStatus
	Attempts  int
	CreatedAt time.Time
	SentAt    *time.Time
}
