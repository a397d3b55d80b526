package handlers

import (
	"net/http"

	"github.com/rubayatk-tech/meat-donation-service/internal/service/stats"
)

type dashboardPage struct {
	Flash   *Flash
	Summary stats.Summary
}

// Dashboard renders the aggregate view over every donation.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.ListAll(r.Context())
	if err != nil {
		a.serverError(w, err, "load donations failed")
		return
	}
	a.render(w, "dashboard.html", dashboardPage{
		Flash:   a.popFlash(w, r),
		Summary: stats.Summarize(donations),
	})
}
