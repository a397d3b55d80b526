package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

type fakeQueue struct {
	pending []domain.OutboxMessage
	sent    []string
	failed  []string
	listErr error
}

func (q *fakeQueue) Enqueue(ctx context.Context, msg *domain.OutboxMessage) error { return nil }

func (q *fakeQueue) ListPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	if q.listErr != nil {
		return nil, q.listErr
	}
	return q.pending, nil
}

func (q *fakeQueue) MarkSent(ctx context.Context, id string) error {
	q.sent = append(q.sent, id)
	return nil
}

func (q *fakeQueue) MarkFailed(ctx context.Context, id string, maxAttempts int) error {
	q.failed = append(q.failed, id)
	return nil
}

type fakeSender struct {
	sent    []domain.OutboxMessage
	failFor map[string]error
}

func (s *fakeSender) Send(msg domain.OutboxMessage) error {
	if err, ok := s.failFor[msg.ID]; ok {
		return err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func newTestDispatcher(queue domain.OutboxRepository, sender Sender) *Dispatcher {
	return NewDispatcher(queue, sender, zerolog.Nop(), time.Minute, 3)
}

type signalQueue struct {
	fakeQueue
	swept chan struct{}
}

func (q *signalQueue) ListPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	select {
	case q.swept <- struct{}{}:
	default:
	}
	return nil, nil
}

func TestStartStop_SweepsOnSchedule(t *testing.T) {
	queue := &signalQueue{swept: make(chan struct{}, 1)}
	d := NewDispatcher(queue, &fakeSender{}, zerolog.Nop(), time.Second, 3)

	require.NoError(t, d.Start())

	select {
	case <-queue.swept:
	case <-time.After(3 * time.Second):
		t.Fatal("no sweep ran within the scheduled interval")
	}

	d.Stop()
}

func TestSweep_DeliversPendingMessages(t *testing.T) {
	queue := &fakeQueue{pending: []domain.OutboxMessage{
		{ID: "msg-1", Recipient: "a@example.com"},
		{ID: "msg-2", Recipient: "b@example.com"},
	}}
	sender := &fakeSender{}

	newTestDispatcher(queue, sender).Sweep(context.Background())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, []string{"msg-1", "msg-2"}, queue.sent)
	assert.Empty(t, queue.failed)
}

func TestSweep_FailureIsCountedAndOthersStillDeliver(t *testing.T) {
	queue := &fakeQueue{pending: []domain.OutboxMessage{
		{ID: "msg-1"},
		{ID: "msg-2"},
	}}
	sender := &fakeSender{failFor: map[string]error{"msg-1": errors.New("relay rejected")}}

	newTestDispatcher(queue, sender).Sweep(context.Background())

	assert.Equal(t, []string{"msg-1"}, queue.failed)
	assert.Equal(t, []string{"msg-2"}, queue.sent)
}

func TestSweep_ListErrorSendsNothing(t *testing.T) {
	queue := &fakeQueue{listErr: errors.New("db gone")}
	sender := &fakeSender{}

	newTestDispatcher(queue, sender).Sweep(context.Background())

	assert.Empty(t, sender.sent)
	assert.Empty(t, queue.sent)
	assert.Empty(t, queue.failed)
}
