package handlers

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "flash"

// Flash is a one-shot message surfaced on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func (a *App) setFlash(w http.ResponseWriter, category, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and clears the pending flash message, if any.
func (a *App) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(value, "|")
	if !ok {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
