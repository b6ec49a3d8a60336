// Package localstore keeps blog posts in a local SQLite key-value table for
// sites that run without the hosted content store.
//
// Each visitor's posts live under their own key as one JSON array, the way
// a browser keeps its own local storage. A visitor with no stored array sees
// the sample posts. Every change rewrites the visitor's array whole.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/jamesrunscanada/forthem/internal/content/localstore/migrations"
	"github.com/jamesrunscanada/forthem/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// PostsKey is the key holding the JSON array of posts. Visitor arrays are
// stored under PostsKey + ":" + visitor id.
const PostsKey = "james_runs_across_canada_blog_posts_v1"

// Store keeps posts in SQLite, scoped by content.VisitorFrom.
type Store struct {
	db    *sql.DB
	mu    sync.Mutex
	newID func() string
	now   func() time.Time
}

// postsKey returns the storage key for the visitor on ctx.
func postsKey(ctx context.Context) string {
	if visitor := content.VisitorFrom(ctx); visitor != "" {
		return PostsKey + ":" + visitor
	}
	return PostsKey
}

// Open opens (creating if needed) the SQLite file at path and applies
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	store, err := openDB(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func openDB(ctx context.Context, db *sql.DB) (*Store, error) {
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, "."); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{
		db:    db,
		newID: uuid.NewString,
		now:   time.Now,
	}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// readPosts returns the visitor's stored array, or the sample posts when the
// key is missing, malformed or not an array. Read failures other than a
// missing key are returned.
func (s *Store) readPosts(ctx context.Context) ([]content.Post, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, postsKey(ctx)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return content.SamplePosts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}
	return DecodePosts(raw), nil
}

// DecodePosts parses a stored value, falling back to the sample posts.
func DecodePosts(raw string) []content.Post {
	if strings.TrimSpace(raw) == "" {
		return content.SamplePosts()
	}
	var posts []content.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil || posts == nil {
		return content.SamplePosts()
	}
	return posts
}

// ListPosts returns the visitor's posts in storage order.
func (s *Store) ListPosts(ctx context.Context) ([]content.Post, error) {
	if s == nil {
		return nil, errors.New("local store is nil")
	}
	return s.readPosts(ctx)
}

// Add validates draft, stores the resulting post first in the visitor's
// list and returns it.
func (s *Store) Add(ctx context.Context, draft Draft) (content.Post, error) {
	post, err := draft.Post(s.newID)
	if err != nil {
		return content.Post{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.readPosts(ctx)
	if err != nil {
		return content.Post{}, err
	}
	if err := s.writeLocked(ctx, append([]content.Post{post}, posts...)); err != nil {
		return content.Post{}, err
	}
	return post, nil
}

// Delete removes the post with id. Unknown ids are a no-op that reports false.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.readPosts(ctx)
	if err != nil {
		return false, err
	}
	next := slices.DeleteFunc(clonePosts(posts), func(p content.Post) bool { return p.ID == id })
	if len(next) == len(posts) {
		return false, nil
	}
	if err := s.writeLocked(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Reset replaces the visitor's posts with the sample posts.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(ctx, content.SamplePosts())
}

func (s *Store) writeLocked(ctx context.Context, posts []content.Post) error {
	if posts == nil {
		posts = []content.Post{}
	}
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		postsKey(ctx), string(payload), s.now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("write posts: %w", err)
	}
	return nil
}

func clonePosts(posts []content.Post) []content.Post {
	out := make([]content.Post, len(posts))
	for i, post := range posts {
		post.Photos = slices.Clone(post.Photos)
		out[i] = post
	}
	return out
}
