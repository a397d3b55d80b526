package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rubayatk-tech/meat-donation-service/internal/http/handlers"
	"github.com/rubayatk-tech/meat-donation-service/internal/middleware"
)

// NewRouter builds the full HTTP surface around the handler container.
func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(app.Logger))

	r.Get("/healthz", app.Health)

	r.Get("/", app.DonateForm)
	r.Post("/", app.DonateSubmit)
	r.Get("/dashboard", app.Dashboard)

	r.Get("/admin_login", app.LoginForm)
	r.Post("/admin_login", app.Login)
	r.Get("/logout", app.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminGate(app.Cfg.SessionSecret, "/admin_login"))
		r.Get("/admin", app.AdminList)
		r.Get("/export_pdf", app.ExportPDF)
		r.Get("/export_xlsx", app.ExportXLSX)
	})

	return r
}
