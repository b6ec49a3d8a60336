package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jamesrunscanada/forthem/internal/contact"
	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/jamesrunscanada/forthem/internal/platform/assets/imagecdn"
	"github.com/jamesrunscanada/forthem/internal/platform/timeouts"
	"github.com/jamesrunscanada/forthem/internal/services/web/app"
	"github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/modules"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	webi18n "github.com/jamesrunscanada/forthem/internal/services/web/platform/i18n"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/observability"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/sitecookie"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	"github.com/jamesrunscanada/forthem/internal/services/web/static"
	"github.com/jamesrunscanada/forthem/internal/sponsors"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
	DonateURL    string
	Posts        module.PostFeed
	// Editor enables the blog publishing routes; nil for CMS-backed posts.
	Editor   module.PostEditor
	Sponsors sponsors.Catalog
	Boards   module.MapBoards
	Contact  contact.Relay
	Logger   *log.Logger
	Now      func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	relay := cfg.Contact
	if relay == nil {
		relay = contact.UIOnlyRelay{}
	}
	deps := module.Dependencies{
		Posts:     cfg.Posts,
		Editor:    cfg.Editor,
		Sponsors:  cfg.Sponsors,
		Boards:    cfg.Boards,
		Contact:   relay,
		Images:    imagecdn.New(cfg.AssetBaseURL),
		DonateURL: strings.TrimSpace(cfg.DonateURL),
		Logger:    logger,
		Now:       cfg.Now,
	}
	h, err := app.BuildRootHandler(app.Config{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	if cfg.Editor != nil {
		h = httpx.Chain(h, scopeVisitor())
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		webi18n.RememberLanguage(),
	), nil
}

// scopeVisitor ties each browser to its own locally stored posts through a
// long-lived cookie, issuing one on first visit.
func scopeVisitor() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitor, ok := sitecookie.Read(r, sitecookie.Visitor)
			if _, err := uuid.Parse(visitor); !ok || err != nil {
				visitor = uuid.NewString()
				sitecookie.Write(w, r, sitecookie.Visitor, visitor, sitecookie.VisitorMaxAge)
			}
			next.ServeHTTP(w, r.WithContext(content.WithVisitor(r.Context(), visitor)))
		})
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
