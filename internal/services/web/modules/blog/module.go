// Package blog serves the posts view and, for the local store, the routes
// that publish, delete and reset posts.
package blog

import (
	"net/http"

	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

// Module provides blog routes.
type Module struct{}

// New returns a blog module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "blog" }

// Mount wires blog route handlers. Editing routes exist only when the
// dependencies carry a post editor.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(publichandler.NewBase(deps))
	registerRoutes(mux, h)
	if deps.Editor != nil {
		registerEditorRoutes(mux, h)
	}
	return module.Mount{Prefix: routepath.BlogPrefix, Handler: mux}, nil
}
