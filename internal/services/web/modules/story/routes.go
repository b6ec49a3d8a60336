package story

import (
	"net/http"

	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Story, h.handleStory)
	mux.HandleFunc(http.MethodGet+" "+routepath.StoryPrefix+"{$}", h.handleStory)
	mux.HandleFunc(routepath.Story, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.StoryPrefix, h.WriteNotFound)
}
