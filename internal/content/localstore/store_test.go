package localstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jamesrunscanada/forthem/internal/content"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func writeRaw(t *testing.T, path, raw string) {
	t.Helper()
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	if _, err := store.db.Exec(
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, 0)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, PostsKey, raw,
	); err != nil {
		t.Fatalf("write raw value: %v", err)
	}
}

func listIDs(t *testing.T, store *Store) []string {
	t.Helper()
	posts, err := store.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	ids := make([]string, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}
	return ids
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), " "); err == nil {
		t.Fatal("expected missing path error")
	}
}

func TestEmptyStoreFallsBackToSamples(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, filepath.Join(t.TempDir(), "posts.db"))
	if got := listIDs(t, store); len(got) != 3 || got[0] != "p1" {
		t.Fatalf("ListPosts() = %v, want sample posts", got)
	}
}

func TestUnparsableValueFallsBackToSamples(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]string{
		"malformed": "{not json",
		"object":    `{"id": "x"}`,
		"null":      "null",
		"blank":     "  ",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "posts.db")
			writeRaw(t, path, raw)
			store := openTestStore(t, path)
			if got := listIDs(t, store); len(got) != 3 {
				t.Fatalf("ListPosts() = %v, want sample posts", got)
			}
		})
	}
}

func TestStoredEmptyArrayIsKept(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "posts.db")
	writeRaw(t, path, "[]")
	store := openTestStore(t, path)
	if got := listIDs(t, store); len(got) != 0 {
		t.Fatalf("ListPosts() = %v, want empty", got)
	}
}

func TestAddPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "posts.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	store.newID = func() string { return "new-1" }

	post, err := store.Add(context.Background(), Draft{
		Date:    "2026-05-18",
		Content: "  First kilometres.  ",
		Photos:  "https://a.example/1.jpg, ,https://a.example/2.jpg",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if post.ID != "new-1" || post.Title != "Daily update — May 18, 2026" || post.Content != "First kilometres." {
		t.Fatalf("Add() = %+v", post)
	}
	if len(post.Photos) != 2 {
		t.Fatalf("Add() photos = %v", post.Photos)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := openTestStore(t, path)
	got := listIDs(t, reopened)
	if len(got) != 4 || got[0] != "new-1" {
		t.Fatalf("ListPosts() after reopen = %v", got)
	}
}

func TestAddRejectsInvalidDraft(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, filepath.Join(t.TempDir(), "posts.db"))
	for _, draft := range []Draft{
		{Date: "", Content: "text"},
		{Date: "2026-05-18", Content: "   "},
		{Date: "tomorrow", Content: "text"},
	} {
		_, err := store.Add(context.Background(), draft)
		var validation *ValidationError
		if !errors.As(err, &validation) || validation.Message != DraftInvalidMessage {
			t.Fatalf("Add(%+v) error = %v", draft, err)
		}
	}
	if got := listIDs(t, store); len(got) != 3 {
		t.Fatalf("invalid drafts changed the store: %v", got)
	}
}

func TestDeleteAndReset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "posts.db")
	store := openTestStore(t, path)

	removed, err := store.Delete(context.Background(), "p2")
	if err != nil || !removed {
		t.Fatalf("Delete(p2) = %v, %v", removed, err)
	}
	removed, err = store.Delete(context.Background(), "missing")
	if err != nil || removed {
		t.Fatalf("Delete(missing) = %v, %v", removed, err)
	}
	if got := listIDs(t, store); len(got) != 2 {
		t.Fatalf("ListPosts() after delete = %v", got)
	}

	if err := store.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if got := listIDs(t, store); len(got) != 3 {
		t.Fatalf("ListPosts() after reset = %v", got)
	}
}

func TestListPostsReturnsCopies(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, filepath.Join(t.TempDir(), "posts.db"))
	posts, _ := store.ListPosts(context.Background())
	posts[0].Photos[0] = "mutated"
	again, _ := store.ListPosts(context.Background())
	if again[0].Photos[0] == "mutated" {
		t.Fatal("ListPosts leaks internal slices")
	}
}

func TestStoreImplementsSource(t *testing.T) {
	t.Parallel()

	var _ content.Source = (*Store)(nil)
}

func TestSplitPhotos(t *testing.T) {
	t.Parallel()

	if got := SplitPhotos(""); len(got) != 0 {
		t.Fatalf("SplitPhotos(\"\") = %v", got)
	}
	if got := SplitPhotos(" a , b,,c "); len(got) != 3 || got[2] != "c" {
		t.Fatalf("SplitPhotos() = %v", got)
	}
}

func TestVisitorsKeepSeparatePosts(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, filepath.Join(t.TempDir(), "posts.db"))
	alice := content.WithVisitor(context.Background(), "alice")
	bob := content.WithVisitor(context.Background(), "bob")

	store.newID = func() string { return "alice-1" }
	if _, err := store.Add(alice, Draft{Date: "2026-05-18", Content: "Hers."}); err != nil {
		t.Fatalf("Add(alice) error = %v", err)
	}
	if removed, err := store.Delete(bob, "p1"); err != nil || !removed {
		t.Fatalf("Delete(bob, p1) = %v, %v", removed, err)
	}

	alicePosts, _ := store.ListPosts(alice)
	if len(alicePosts) != 4 || alicePosts[0].ID != "alice-1" {
		t.Fatalf("alice posts = %+v", alicePosts)
	}
	bobPosts, _ := store.ListPosts(bob)
	if len(bobPosts) != 2 {
		t.Fatalf("bob posts = %+v", bobPosts)
	}
	if got := listIDs(t, store); len(got) != 3 {
		t.Fatalf("anonymous posts = %v, want samples", got)
	}

	if err := store.Reset(bob); err != nil {
		t.Fatalf("Reset(bob) error = %v", err)
	}
	alicePosts, _ = store.ListPosts(alice)
	if len(alicePosts) != 4 {
		t.Fatalf("bob's reset changed alice's posts: %+v", alicePosts)
	}
}
