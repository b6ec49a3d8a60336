// Package mapboard serves the JSON API behind the home page map. Browsers
// without scripts reach the same actions through plain form posts.
package mapboard

import (
	"net/http"

	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

// Module provides map board routes.
type Module struct{}

// New returns a map board module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "mapboard" }

// Mount wires map board handlers. Without a board registry every route
// answers 503.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.MapAPIPrefix, Handler: mux}, nil
}
