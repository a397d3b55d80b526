package repo

import (
	"context"
	"database/sql"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

// OutboxRepositorySQLite implements domain.OutboxRepository over SQLite.
type OutboxRepositorySQLite struct {
	db *sql.DB
}

// NewOutboxRepository creates a new outbox repo.
func NewOutboxRepository(db *sql.DB) *OutboxRepositorySQLite {
	return &OutboxRepositorySQLite{db: db}
}

// Enqueue inserts a pending message.
func (r *OutboxRepositorySQLite) Enqueue(ctx context.Context, msg *domain.OutboxMessage) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO outbox (id, recipient, subject, body, status, attempts, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`, msg.ID, msg.Recipient, msg.Subject, msg.Body, domain.OutboxPending, 0, msg.CreatedAt)
	return err
}

// ListPending returns pending messages in enqueue order, oldest first.
func (r *OutboxRepositorySQLite) ListPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, recipient, subject, body, status, attempts, created_at
FROM outbox
WHERE status = ?
ORDER BY created_at
LIMIT ?;
`, domain.OutboxPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OutboxMessage
	for rows.Next() {
		var msg domain.OutboxMessage
		if err := rows.Scan(&msg.ID, &msg.Recipient, &msg.Subject, &msg.Body,
			&msg.Status, &msg.Attempts, &msg.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkSent records a successful delivery.
func (r *OutboxRepositorySQLite) MarkSent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE outbox
SET status = ?, sent_at = CURRENT_TIMESTAMP
WHERE id = ?;
`, domain.OutboxSent, id)
	return err
}

// MarkFailed counts a delivery attempt; the message stays pending until it
// has failed maxAttempts times, then it is parked as failed.
func (r *OutboxRepositorySQLite) MarkFailed(ctx context.Context, id string, maxAttempts int) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE outbox
SET attempts = attempts + 1,
    status = CASE WHEN attempts + 1 >= ? THEN ? ELSE ? END
WHERE id = ?;
`, maxAttempts, domain.OutboxFailed, domain.OutboxPending, id)
	return err
}
