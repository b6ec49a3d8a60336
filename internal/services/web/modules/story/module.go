// Package story serves the "My Why" view.
package story

import (
	"net/http"

	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

// Module provides the story route.
type Module struct{}

// New returns a story module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "story" }

// Mount wires story route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.StoryPrefix, Handler: mux}, nil
}
