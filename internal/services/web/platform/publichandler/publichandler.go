// Package publichandler provides a shared base for the site's page modules.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"fmt"
	"net/http"

	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	webi18n "github.com/jamesrunscanada/forthem/internal/services/web/platform/i18n"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/pagerender"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/weberror"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
)

// Base carries the shared dependencies of page handlers. Embed it in handler
// structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base over deps.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Deps returns the module dependencies.
func (b Base) Deps() module.Dependencies {
	return b.deps
}

// PageLocalizer resolves a localizer and language tag from the request.
func (Base) PageLocalizer(r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(r)
}

// WritePage renders a full page, falling back to the app error page when
// the body fails to render.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, b.deps, page); err != nil {
		b.WriteError(w, r, fmt.Errorf("render %s page: %w", page.View, err))
	}
}

// WriteNotFound renders a localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// WriteError renders a user-safe error response: app error pages for
// not-found and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}
