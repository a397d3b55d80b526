package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
	"github.com/rubayatk-tech/meat-donation-service/internal/infra"
	"github.com/rubayatk-tech/meat-donation-service/internal/infra/geoip"
)

//go:embed templates/*.html
var templateFS embed.FS

// App bundles everything request handlers need. It is built once in main and
// holds no mutable state of its own.
type App struct {
	Cfg       *infra.Config
	Logger    zerolog.Logger
	Donations domain.DonationRepository
	Outbox    domain.OutboxRepository
	Geo       geoip.CountryResolver

	tmpl *template.Template
}

// NewApp wires the handler container.
func NewApp(cfg *infra.Config, logger zerolog.Logger, donations domain.DonationRepository, outbox domain.OutboxRepository, geo geoip.CountryResolver) *App {
	return &App{
		Cfg:       cfg,
		Logger:    logger,
		Donations: donations,
		Outbox:    outbox,
		Geo:       geo,
		tmpl:      template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (a *App) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tmpl.ExecuteTemplate(w, name, data); err != nil {
		a.Logger.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) serverError(w http.ResponseWriter, err error, msg string) {
	a.Logger.Error().Err(err).Msg(msg)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
