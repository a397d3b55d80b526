package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rubayatk-tech/meat-donation-service/internal/report"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportPDF streams the full donation table as a PDF attachment.
func (a *App) ExportPDF(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.ListAll(r.Context())
	if err != nil {
		a.serverError(w, err, "load donations failed")
		return
	}
	out, err := report.RenderPDF(donations)
	if err != nil {
		a.serverError(w, err, "render pdf failed")
		return
	}
	a.attachment(w, out, report.PDFFilename, "application/pdf")
}

// ExportXLSX streams the same table as an XLSX attachment.
func (a *App) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.ListAll(r.Context())
	if err != nil {
		a.serverError(w, err, "load donations failed")
		return
	}
	out, err := report.RenderXLSX(donations)
	if err != nil {
		a.serverError(w, err, "render xlsx failed")
		return
	}
	a.attachment(w, out, report.XLSXFilename, xlsxMIME)
}

func (a *App) attachment(w http.ResponseWriter, body []byte, filename, mime string) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write(body)
}
