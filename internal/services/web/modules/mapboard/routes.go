package mapboard

import (
	"net/http"

	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.MapBoards, h.handleCreate)
	mux.HandleFunc(routepath.MapBoards, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.MapBoardPattern, h.handleGet)
	mux.HandleFunc(routepath.MapBoardPattern, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.MapBoardActionPattern, h.handleAction)
	mux.HandleFunc(routepath.MapBoardActionPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.MapAPIPrefix, h.handleNotFound)
}
