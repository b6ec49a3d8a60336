package content

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/jamesrunscanada/forthem/internal/platform/timeouts"
)

// LoadFailedMessage is the user-visible text shown when posts cannot be read.
const LoadFailedMessage = "Failed to load blog posts."

// Feed is the result of one load: the posts newest first, or a public error
// message with an empty list.
type Feed struct {
	Posts []Post
	Err   string
}

// Failed reports whether the load failed.
func (f Feed) Failed() bool {
	return f.Err != ""
}

// Loader reads posts from a source for page renders. Concurrent loads for
// the same visitor share one in-flight source call; nothing is cached
// between loads.
type Loader struct {
	source Source
	logger *log.Logger
	group  singleflight.Group
}

// NewLoader returns a loader over source. A nil logger uses log.Default().
func NewLoader(source Source, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{source: source, logger: logger}
}

// ErrNoSource is returned when the loader has no source configured.
var ErrNoSource = errors.New("content source is not configured")

// Posts returns the source's posts sorted newest first. The shared source
// call is detached from any one caller's cancellation and bounded by
// timeouts.ContentFetch; each caller still stops waiting when its own ctx
// is done.
func (l *Loader) Posts(ctx context.Context) ([]Post, error) {
	if l == nil || l.source == nil {
		return nil, ErrNoSource
	}
	results := l.group.DoChan("posts:"+VisitorFrom(ctx), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.ContentFetch)
		defer cancel()
		return l.source.ListPosts(fetchCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		posts, _ := result.Val.([]Post)
		return SortByDateDesc(posts), nil
	}
}

// Load returns a feed for rendering. Failures are logged and reduced to
// LoadFailedMessage with no posts.
func (l *Loader) Load(ctx context.Context) Feed {
	posts, err := l.Posts(ctx)
	if err != nil {
		if l != nil {
			l.logger.Printf("content load failed err=%v", err)
		}
		return Feed{Err: LoadFailedMessage}
	}
	return Feed{Posts: posts}
}
