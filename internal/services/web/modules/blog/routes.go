package blog

import (
	"net/http"

	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Blog, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Blog, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.BlogPrefix, h.WriteNotFound)
}

func registerEditorRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.BlogPosts, h.handlePublish)
	mux.HandleFunc(routepath.BlogPosts, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.BlogPostDeletePattern, h.handleDelete)
	mux.HandleFunc(routepath.BlogPostDeletePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.BlogReset, h.handleReset)
	mux.HandleFunc(routepath.BlogReset, httpx.MethodNotAllowed(http.MethodPost))
}
