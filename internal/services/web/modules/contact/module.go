// Package contact serves the contact view and relays its form.
package contact

import (
	"net/http"

	contactform "github.com/jamesrunscanada/forthem/internal/contact"
	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

// Module provides contact routes.
type Module struct{}

// New returns a contact module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires contact route handlers. Without a relay the form is UI-only.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	relay := deps.Contact
	if relay == nil {
		relay = contactform.UIOnlyRelay{}
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(deps), relay))
	return module.Mount{Prefix: routepath.ContactPrefix, Handler: mux}, nil
}
