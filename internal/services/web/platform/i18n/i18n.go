// Package i18n negotiates the page language and prints localized chrome copy.
package i18n

import (
	"net/http"
	"strings"

	"github.com/jamesrunscanada/forthem/internal/services/web/platform/sitecookie"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// LangQueryKey overrides Accept-Language when present on a request.
const LangQueryKey = "lang"

var (
	// Default is the site language.
	Default = language.MustParse("en-CA")
	french  = language.MustParse("fr-CA")

	supported = []language.Tag{Default, french}
	matcher   = language.NewMatcher(supported)
	messages  = buildCatalog()
)

// Supported returns the languages the site renders.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Negotiate picks the request language from ?lang=, then the remembered
// language cookie, then Accept-Language.
func Negotiate(r *http.Request) language.Tag {
	if r == nil {
		return Default
	}
	var candidates []string
	if tag, ok := queryLanguage(r); ok {
		candidates = append(candidates, tag.String())
	}
	if lang, ok := sitecookie.Read(r, sitecookie.Lang); ok {
		candidates = append(candidates, lang)
	}
	candidates = append(candidates, r.Header.Get("Accept-Language"))
	_, index := language.MatchStrings(matcher, candidates...)
	if index < 0 || index >= len(supported) {
		return Default
	}
	return supported[index]
}

// RememberLanguage stores a supported ?lang= choice in a cookie so later
// page views without the query keep it.
func RememberLanguage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tag, ok := queryLanguage(r); ok {
				sitecookie.Write(w, r, sitecookie.Lang, tag.String(), sitecookie.LangMaxAge)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// queryLanguage returns the supported language named by ?lang=.
func queryLanguage(r *http.Request) (language.Tag, bool) {
	if r == nil || r.URL == nil {
		return language.Und, false
	}
	lang := strings.TrimSpace(r.URL.Query().Get(LangQueryKey))
	if lang == "" {
		return language.Und, false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return language.Und, false
	}
	return supported[index], true
}

// Printer returns a localizer for tag backed by the site catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// ResolveLocalizer negotiates the request language and returns its printer
// together with the BCP 47 string for the html lang attribute.
func ResolveLocalizer(r *http.Request) (*message.Printer, string) {
	tag := Negotiate(r)
	return Printer(tag), tag.String()
}

func buildCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(Default))
	for key, text := range chromeCopy {
		_ = builder.SetString(Default, key, text[0])
		_ = builder.SetString(french, key, text[1])
	}
	return builder
}

// chromeCopy maps catalog keys to English and French copy.
var chromeCopy = map[string][2]string{
	"nav.home":        {"Home", "Accueil"},
	"nav.blog":        {"Blog", "Blogue"},
	"nav.story":       {"My Why", "Mon pourquoi"},
	"nav.contact":     {"Contact", "Contact"},
	"nav.tagline":     {"Turning kilometers into scholarships", "Des kilomètres pour des bourses"},
	"stats.days":      {"%d days", "%d jours"},
	"stats.daily":     {"%d km/day", "%d km/jour"},
	"stats.total":     {"%d km total", "%d km au total"},
	"footer.rights":   {"© %s James Runs Canada", "© %s James Runs Canada"},
	"error.not_found": {"Page not found", "Page introuvable"},
	"error.internal":  {"Something went wrong", "Une erreur est survenue"},
	"error.map_click": {"A map click needs a positive width and height", "Un clic sur la carte exige une largeur et une hauteur positives"},
}
