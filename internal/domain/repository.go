package domain

import "context"

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	ListAll(ctx context.Context) ([]Donation, error)
}

// OutboxRepository persists queued confirmation emails.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg *OutboxMessage) error
	ListPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, maxAttempts int) error
}
