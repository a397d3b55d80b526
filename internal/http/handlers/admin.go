package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
	"github.com/rubayatk-tech/meat-donation-service/internal/middleware"
)

type loginPage struct {
	Flash *Flash
}

type adminRow struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Animal    string
	Weight    string
	City      string
	Submitted string
}

type adminPage struct {
	Flash     *Flash
	Donations []adminRow
}

// LoginForm renders the admin login form.
func (a *App) LoginForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, "admin_login.html", loginPage{Flash: a.popFlash(w, r)})
}

// Login checks the single shared credential pair and, on match, issues a
// signed expiring session token in an HttpOnly cookie.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		a.setFlash(w, "danger", "Invalid credentials")
		http.Redirect(w, r, "/admin_login", http.StatusFound)
		return
	}

	token, err := middleware.SignSession(a.Cfg.SessionSecret, a.Cfg.SessionTTL)
	if err != nil {
		a.serverError(w, err, "sign session failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.Cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Logout clears the session cookie.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/admin_login", http.StatusFound)
}

// AdminList renders every donation record.
func (a *App) AdminList(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.ListAll(r.Context())
	if err != nil {
		a.serverError(w, err, "load donations failed")
		return
	}

	rows := make([]adminRow, 0, len(donations))
	for _, d := range donations {
		rows = append(rows, adminRow{
			ID:        d.ID,
			Name:      d.Name,
			Phone:     d.Phone,
			Email:     d.Email,
			Animal:    d.AnimalType,
			Weight:    domain.FormatWeight(d.WeightLbs),
			City:      d.City,
			Submitted: d.SubmittedAt.UTC().Format("2006-01-02 15:04"),
		})
	}
	a.render(w, "admin.html", adminPage{Flash: a.popFlash(w, r), Donations: rows})
}
