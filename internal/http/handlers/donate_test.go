package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
	"github.com/rubayatk-tech/meat-donation-service/internal/service/mailer"
)

func TestDonateSubmit_EmptyPhoneRejected(t *testing.T) {
	donations := &fakeDonations{}
	outbox := &fakeOutbox{}
	app := newTestApp(t, donations, outbox)

	rr := httptest.NewRecorder()
	app.DonateSubmit(rr, postForm(t, "/", url.Values{"name": {"Ayesha"}, "phone": {""}}))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Empty(t, donations.created, "no record may be created without a phone")
	assert.Empty(t, outbox.enqueued)
	assert.True(t, strings.HasPrefix(flashFrom(t, rr), "danger|"))
}

func TestDonateSubmit_MalformedWeightRejected(t *testing.T) {
	donations := &fakeDonations{}
	app := newTestApp(t, donations, &fakeOutbox{})

	rr := httptest.NewRecorder()
	app.DonateSubmit(rr, postForm(t, "/", url.Values{
		"phone":    {"555-0101"},
		"meat_lbs": {"plenty"},
	}))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Empty(t, donations.created)
	assert.True(t, strings.HasPrefix(flashFrom(t, rr), "danger|"))
}

func TestDonateSubmit_NoEmailSkipsNotification(t *testing.T) {
	donations := &fakeDonations{}
	outbox := &fakeOutbox{}
	app := newTestApp(t, donations, outbox)

	rr := httptest.NewRecorder()
	app.DonateSubmit(rr, postForm(t, "/", url.Values{
		"name":        {"Ayesha"},
		"phone":       {"555-0101"},
		"animal_type": {"goat"},
		"meat_lbs":    {"7.5 lbs"},
		"city":        {"Dallas"},
	}))

	assert.Equal(t, http.StatusFound, rr.Code)
	require.Len(t, donations.created, 1)
	assert.Empty(t, outbox.enqueued, "no email supplied, nothing to notify")

	d := donations.created[0]
	assert.Equal(t, "555-0101", d.Phone)
	assert.Equal(t, domain.DeliveryType, d.DeliveryType)
	require.NotNil(t, d.WeightLbs)
	assert.Equal(t, 7.5, *d.WeightLbs)
	assert.False(t, d.SubmittedAt.IsZero())
	assert.True(t, strings.HasPrefix(flashFrom(t, rr), "success|"))
}

func TestDonateSubmit_EmailQueuesOneConfirmation(t *testing.T) {
	donations := &fakeDonations{}
	outbox := &fakeOutbox{}
	app := newTestApp(t, donations, outbox)

	rr := httptest.NewRecorder()
	app.DonateSubmit(rr, postForm(t, "/", url.Values{
		"name":        {"Ayesha"},
		"phone":       {"555-0101"},
		"email":       {"ayesha@example.com"},
		"animal_type": {"Goat"},
		"meat_lbs":    {"10lbs"},
	}))

	require.Len(t, donations.created, 1)
	require.Len(t, outbox.enqueued, 1)

	msg := outbox.enqueued[0]
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "ayesha@example.com", msg.Recipient)
	assert.Equal(t, mailer.ConfirmationSubject, msg.Subject)
	assert.Contains(t, msg.Body, "10 lbs of goat meat")
	assert.Equal(t, domain.OutboxPending, msg.Status)
}

func TestDonateSubmit_ResolverSeesRemoteAddr(t *testing.T) {
	donations := &fakeDonations{}
	geo := &fakeGeo{}
	app := NewApp(testConfig(), zerolog.Nop(), donations, &fakeOutbox{}, geo)

	rr := httptest.NewRecorder()
	req := postForm(t, "/", url.Values{"phone": {"555-0101"}, "meat_lbs": {"12"}})
	app.DonateSubmit(rr, req)

	require.Len(t, donations.created, 1)
	require.Len(t, geo.addrs, 1)
	assert.Equal(t, req.RemoteAddr, geo.addrs[0], "resolver receives the raw remote address")
}

func TestDonateSubmit_PersistenceFailure(t *testing.T) {
	donations := &fakeDonations{fail: true}
	outbox := &fakeOutbox{}
	app := newTestApp(t, donations, outbox)

	rr := httptest.NewRecorder()
	app.DonateSubmit(rr, postForm(t, "/", url.Values{"phone": {"555-0101"}, "email": {"a@example.com"}}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, outbox.enqueued, "nothing queued when the record was not persisted")
}

func TestDonateForm_Renders(t *testing.T) {
	app := newTestApp(t, &fakeDonations{}, &fakeOutbox{})

	rr := httptest.NewRecorder()
	app.DonateForm(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `name="phone"`)
}
