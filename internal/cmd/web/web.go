// Package web parses website flags and launches the HTTP service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jamesrunscanada/forthem/internal/contact"
	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/jamesrunscanada/forthem/internal/content/localstore"
	"github.com/jamesrunscanada/forthem/internal/content/sanity"
	entrypoint "github.com/jamesrunscanada/forthem/internal/platform/cmd"
	"github.com/jamesrunscanada/forthem/internal/platform/timeouts"
	"github.com/jamesrunscanada/forthem/internal/services/web"
	"github.com/jamesrunscanada/forthem/internal/sponsors"
	"github.com/jamesrunscanada/forthem/internal/tracker"
)

// Content sources accepted by -content-source.
const (
	SourceSanity = "sanity"
	SourceLocal  = "local"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr         string        `env:"JRC_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	ContentSource    string        `env:"JRC_CONTENT_SOURCE" envDefault:"sanity"`
	SanityProjectID  string        `env:"JRC_SANITY_PROJECT_ID" envDefault:"10gz6ylm"`
	SanityDataset    string        `env:"JRC_SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string        `env:"JRC_SANITY_API_VERSION" envDefault:"2025-01-01"`
	SanityUseCDN     bool          `env:"JRC_SANITY_USE_CDN" envDefault:"true"`
	SanityToken      string        `env:"JRC_SANITY_TOKEN"`
	LocalStorePath   string        `env:"JRC_LOCAL_STORE_PATH" envDefault:"data/posts.db"`
	ContactEndpoint  string        `env:"JRC_CONTACT_ENDPOINT"`
	MapBoardTTL      time.Duration `env:"JRC_MAP_BOARD_TTL" envDefault:"30m"`
	AssetBaseURL     string        `env:"JRC_ASSET_BASE_URL" envDefault:"/static"`
	DonateURL        string        `env:"JRC_DONATE_URL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentSource, "content-source", cfg.ContentSource, "Blog post source: sanity or local")
	fs.StringVar(&cfg.SanityProjectID, "sanity-project-id", cfg.SanityProjectID, "Sanity project id")
	fs.StringVar(&cfg.SanityDataset, "sanity-dataset", cfg.SanityDataset, "Sanity dataset")
	fs.StringVar(&cfg.SanityAPIVersion, "sanity-api-version", cfg.SanityAPIVersion, "Sanity API version date")
	fs.BoolVar(&cfg.SanityUseCDN, "sanity-use-cdn", cfg.SanityUseCDN, "Query the Sanity API CDN")
	fs.StringVar(&cfg.LocalStorePath, "local-store-path", cfg.LocalStorePath, "SQLite file for the local post store")
	fs.StringVar(&cfg.ContactEndpoint, "contact-endpoint", cfg.ContactEndpoint, "Form endpoint for contact submissions; empty keeps the form UI-only")
	fs.DurationVar(&cfg.MapBoardTTL, "map-board-ttl", cfg.MapBoardTTL, "Idle lifetime of a map board")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for site photos")
	fs.StringVar(&cfg.DonateURL, "donate-url", cfg.DonateURL, "External donation page")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.ContentSource = strings.ToLower(strings.TrimSpace(cfg.ContentSource))
	switch cfg.ContentSource {
	case SourceSanity, SourceLocal:
	default:
		return Config{}, fmt.Errorf("unknown content source %q", cfg.ContentSource)
	}
	if cfg.MapBoardTTL <= 0 {
		cfg.MapBoardTTL = timeouts.MapBoardIdle
	}
	return cfg, nil
}

// Run starts the website.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	serverCfg := web.Config{
		HTTPAddr:     cfg.HTTPAddr,
		AssetBaseURL: cfg.AssetBaseURL,
		DonateURL:    cfg.DonateURL,
		Sponsors:     sponsors.Default(),
		Contact:      contact.NewRelay(cfg.ContactEndpoint, contact.FormRelayConfig{}),
		Logger:       log.Default(),
	}

	source, closeSource, editor, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()
	serverCfg.Posts = content.NewLoader(source, log.Default())
	if editor != nil {
		serverCfg.Editor = editor
	}

	boards := tracker.NewBoards(tracker.BoardsConfig{TTL: cfg.MapBoardTTL})
	go boards.Run(ctx, 0)
	serverCfg.Boards = boards

	server, err := web.NewServer(ctx, serverCfg)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	log.Printf("web listening addr=%s content_source=%s", server.Addr(), cfg.ContentSource)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// openSource returns the configured post source. The local store doubles as
// the blog editor.
func openSource(ctx context.Context, cfg Config) (content.Source, func(), *localstore.Store, error) {
	switch cfg.ContentSource {
	case SourceLocal:
		store, err := localstore.Open(ctx, cfg.LocalStorePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open local store: %w", err)
		}
		closeStore := func() {
			if err := store.Close(); err != nil {
				log.Printf("close local store err=%v", err)
			}
		}
		return store, closeStore, store, nil
	default:
		client, err := sanity.New(sanity.Config{
			ProjectID:  cfg.SanityProjectID,
			Dataset:    cfg.SanityDataset,
			APIVersion: cfg.SanityAPIVersion,
			UseCDN:     cfg.SanityUseCDN,
			Token:      cfg.SanityToken,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("init sanity client: %w", err)
		}
		return client, func() {}, nil, nil
	}
}
