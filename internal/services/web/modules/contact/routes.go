package contact

import (
	"net/http"

	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContact)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactPrefix+"{$}", h.handleContact)
	mux.HandleFunc(routepath.Contact, httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodPost))
	mux.HandleFunc(routepath.ContactPrefix, h.WriteNotFound)
}
