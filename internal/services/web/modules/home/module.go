// Package home serves the landing page and the health check.
package home

import (
	"net/http"

	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

// Module provides the root routes. It also owns unmatched paths.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
