package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
	"github.com/rubayatk-tech/meat-donation-service/internal/infra"
)

type fakeDonations struct {
	created []domain.Donation
	all     []domain.Donation
	fail    bool
}

func (f *fakeDonations) Create(ctx context.Context, d *domain.Donation) error {
	if f.fail {
		return errors.New("disk full")
	}
	d.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *d)
	return nil
}

func (f *fakeDonations) ListAll(ctx context.Context) ([]domain.Donation, error) {
	if f.fail {
		return nil, errors.New("disk full")
	}
	return f.all, nil
}

type fakeOutbox struct {
	enqueued []domain.OutboxMessage
}

func (f *fakeOutbox) Enqueue(ctx context.Context, msg *domain.OutboxMessage) error {
	f.enqueued = append(f.enqueued, *msg)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, maxAttempts int) error { return nil }

type fakeGeo struct {
	addrs []string
}

func (f *fakeGeo) CountryCode(addr string) (string, error) {
	f.addrs = append(f.addrs, addr)
	return "US", nil
}

func testConfig() *infra.Config {
	return &infra.Config{
		AdminUsername: "admin",
		AdminPassword: "hunter2",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
}

func newTestApp(t *testing.T, donations *fakeDonations, outbox *fakeOutbox) *App {
	t.Helper()
	return NewApp(testConfig(), zerolog.Nop(), donations, outbox, nil)
}

func postForm(t *testing.T, path string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func flashFrom(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashCookie {
			v, err := url.QueryUnescape(c.Value)
			if err != nil {
				t.Fatalf("unescape flash cookie: %v", err)
			}
			return v
		}
	}
	return ""
}
