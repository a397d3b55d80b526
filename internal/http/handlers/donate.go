package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
	"github.com/rubayatk-tech/meat-donation-service/internal/service/mailer"
)

type donatePage struct {
	Flash *Flash
}

// DonateForm renders the public intake form.
func (a *App) DonateForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, "donate.html", donatePage{Flash: a.popFlash(w, r)})
}

// DonateSubmit validates and persists one donation, then queues the
// confirmation email when an address was supplied.
func (a *App) DonateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	phone := strings.TrimSpace(r.PostFormValue("phone"))
	if phone == "" {
		a.setFlash(w, "danger", "Phone number is required!")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	weight, err := domain.ParseWeight(r.PostFormValue("meat_lbs"))
	if err != nil {
		a.setFlash(w, "danger", "Weight must be a number, like 7.5 or 10 lbs.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	donation := &domain.Donation{
		Name:         strings.TrimSpace(r.PostFormValue("name")),
		Phone:        phone,
		Email:        strings.TrimSpace(r.PostFormValue("email")),
		AnimalType:   strings.TrimSpace(r.PostFormValue("animal_type")),
		WeightLbs:    weight,
		City:         strings.TrimSpace(r.PostFormValue("city")),
		DeliveryType: domain.DeliveryType,
		SubmittedAt:  time.Now().UTC(),
	}

	if err := a.Donations.Create(r.Context(), donation); err != nil {
		a.serverError(w, err, "persist donation failed")
		return
	}
	a.logIntake(r, donation)

	if donation.Email != "" {
		subject, body := mailer.Confirmation(donation.Name, donation.AnimalType, donation.WeightLbs)
		msg := &domain.OutboxMessage{
			ID:        uuid.NewString(),
			Recipient: donation.Email,
			Subject:   subject,
			Body:      body,
			Status:    domain.OutboxPending,
			CreatedAt: time.Now().UTC(),
		}
		// The donation is already committed; a queue failure is only logged.
		if err := a.Outbox.Enqueue(r.Context(), msg); err != nil {
			a.Logger.Error().Err(err).Int64("donation_id", donation.ID).Msg("enqueue confirmation failed")
		}
	}

	a.setFlash(w, "success", "Thank you for your donation!")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (a *App) logIntake(r *http.Request, donation *domain.Donation) {
	evt := a.Logger.Info().Int64("donation_id", donation.ID).Str("city", donation.City)
	if a.Geo != nil {
		if cc, err := a.Geo.CountryCode(r.RemoteAddr); err == nil && cc != "" {
			evt = evt.Str("origin_country", cc)
		}
	}
	evt.Msg("donation recorded")
}
