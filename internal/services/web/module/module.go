// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jamesrunscanada/forthem/internal/contact"
	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/jamesrunscanada/forthem/internal/content/localstore"
	"github.com/jamesrunscanada/forthem/internal/platform/assets/imagecdn"
	"github.com/jamesrunscanada/forthem/internal/platform/timeouts"
	"github.com/jamesrunscanada/forthem/internal/sponsors"
	"github.com/jamesrunscanada/forthem/internal/tracker"
)

// PostFeed loads the blog feed for one page render.
type PostFeed interface {
	Load(ctx context.Context) content.Feed
}

// PostEditor changes the local sample store. It is nil when posts come from
// the CMS.
type PostEditor interface {
	Add(ctx context.Context, draft localstore.Draft) (content.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reset(ctx context.Context) error
}

// MapBoards holds the transient pin boards behind the home page map.
type MapBoards interface {
	Create() tracker.State
	Get(id string) (tracker.State, error)
	Update(id string, fn func(*tracker.Board)) (tracker.State, error)
}

// Dependencies carries the collaborators shared by every module.
type Dependencies struct {
	Posts     PostFeed
	Editor    PostEditor
	Sponsors  sponsors.Catalog
	Boards    MapBoards
	Contact   contact.Relay
	Images    imagecdn.CDN
	DonateURL string
	Logger    *log.Logger
	Now       func() time.Time
}

// Clock returns the current time from Now, or time.Now when unset.
func (d Dependencies) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Log returns the configured logger or the standard logger.
func (d Dependencies) Log() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}

// LoadFeed loads the blog feed under the content fetch timeout. Without a
// feed the result is empty.
func (d Dependencies) LoadFeed(ctx context.Context) content.Feed {
	if d.Posts == nil {
		return content.Feed{}
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.ContentFetch)
	defer cancel()
	return d.Posts.Load(ctx)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
