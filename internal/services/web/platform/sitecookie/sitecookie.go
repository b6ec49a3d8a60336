// Package sitecookie centralizes the site's first-party cookies.
package sitecookie

import (
	"net/http"
	"strings"
	"time"
)

// Cookie names.
const (
	// Visitor scopes the local blog store to one browser.
	Visitor = "jrc_visitor"
	// Board remembers the visitor's map board between page views.
	Board = "jrc_board"
	// Lang remembers an explicit ?lang= choice.
	Lang = "jrc_lang"
)

// Lifetimes.
const (
	VisitorMaxAge = 365 * 24 * time.Hour
	LangMaxAge    = 365 * 24 * time.Hour
)

// Read returns the trimmed cookie value when present.
func Read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets a site-wide cookie. A zero maxAge makes it a session cookie.
func Write(w http.ResponseWriter, r *http.Request, name, value string, maxAge time.Duration) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge / time.Second),
	})
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
