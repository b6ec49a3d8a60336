package blog

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/jamesrunscanada/forthem/internal/content/localstore"
	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	"golang.org/x/net/html"
)

type staticFeed content.Feed

func (f staticFeed) Load(context.Context) content.Feed { return content.Feed(f) }

type failingEditor struct{}

func (failingEditor) Add(context.Context, localstore.Draft) (content.Post, error) {
	return content.Post{}, errors.New("disk full")
}

func (failingEditor) Delete(context.Context, string) (bool, error) {
	return false, errors.New("disk full")
}

func (failingEditor) Reset(context.Context) error { return errors.New("disk full") }

func fixedNow() time.Time { return time.Date(2026, time.May, 18, 9, 0, 0, 0, time.UTC) }

func localDeps(t *testing.T) module.Dependencies {
	t.Helper()
	store, err := localstore.Open(context.Background(), filepath.Join(t.TempDir(), "posts.db"))
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	logger := log.New(&bytes.Buffer{}, "", 0)
	return module.Dependencies{
		Posts:  content.NewLoader(store, logger),
		Editor: store,
		Logger: logger,
		Now:    fixedNow,
	}
}

func mountBlog(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.BlogPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.BlogPrefix)
	}
	return mount.Handler
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func postForm(t *testing.T, handler http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// renderedPosts returns the post ids on the page in document order, and the
// id of the focused post.
func renderedPosts(t *testing.T, body string) ([]string, string) {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var ids []string
	focused := ""
	for _, n := range findAll(doc, func(n *html.Node) bool {
		_, ok := attr(n, "data-post")
		return n.Data == "article" && ok
	}) {
		id, _ := attr(n, "data-post")
		ids = append(ids, id)
		if class, _ := attr(n, "class"); strings.Contains(class, "post--focused") {
			focused = id
		}
	}
	return ids, focused
}

func TestModuleIDReturnsBlog(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "blog" {
		t.Fatalf("ID() = %q, want %q", got, "blog")
	}
}

func TestBlogRendersPostsNewestFirst(t *testing.T) {
	t.Parallel()

	posts := []content.Post{
		{ID: "a", Date: "2026-05-18", Content: "one"},
		{ID: "c", Date: "2026-05-20", Content: "three"},
		{ID: "b", Date: "2026-05-19", Content: "two"},
	}
	handler := mountBlog(t, module.Dependencies{Posts: staticFeed{Posts: posts}})
	rr := get(t, handler, routepath.Blog)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	ids, focused := renderedPosts(t, rr.Body.String())
	if strings.Join(ids, ",") != "c,b,a" {
		t.Fatalf("post order = %v, want c,b,a", ids)
	}
	if focused != "" {
		t.Fatalf("focused = %q without focus query", focused)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "3 posts") {
		t.Fatal("post count missing")
	}
	if strings.Contains(body, routepath.BlogPosts) {
		t.Fatal("editor rendered without local store")
	}
}

func TestBlogFocusesRequestedPost(t *testing.T) {
	t.Parallel()

	handler := mountBlog(t, module.Dependencies{Posts: staticFeed{Posts: content.SamplePosts()}})
	rr := get(t, handler, "/blog?focus=p2")
	if _, focused := renderedPosts(t, rr.Body.String()); focused != "p2" {
		t.Fatalf("focused = %q, want p2", focused)
	}
}

func TestBlogShowsLoadFailure(t *testing.T) {
	t.Parallel()

	rr := get(t, mountBlog(t, module.Dependencies{Posts: staticFeed{Err: content.LoadFailedMessage}}), routepath.Blog)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, content.LoadFailedMessage) || !strings.Contains(body, "0 posts") {
		t.Fatalf("body missing failure state: %q", body)
	}
}

func TestBlogTrailingSlashRendersIndex(t *testing.T) {
	t.Parallel()

	if rr := get(t, mountBlog(t, module.Dependencies{}), routepath.BlogPrefix); rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestBlogUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	if rr := get(t, mountBlog(t, module.Dependencies{}), "/blog/archive"); rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestEditorRoutesAbsentWithoutLocalStore(t *testing.T) {
	t.Parallel()

	handler := mountBlog(t, module.Dependencies{Posts: staticFeed{}})
	rr := postForm(t, handler, routepath.BlogPosts, url.Values{"date": {"2026-05-18"}, "content": {"hi"}})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestEditorRendersDraftFormWithToday(t *testing.T) {
	t.Parallel()

	rr := get(t, mountBlog(t, localDeps(t)), routepath.Blog)
	body := rr.Body.String()
	if !strings.Contains(body, `action="/blog/posts"`) || !strings.Contains(body, `value="2026-05-18"`) {
		t.Fatalf("editor form missing: %q", body)
	}
	if !strings.Contains(body, `action="/blog/posts/p1/delete"`) {
		t.Fatal("delete action missing for local posts")
	}
}

func TestPublishAddsPostAndFocusesIt(t *testing.T) {
	t.Parallel()

	handler := mountBlog(t, localDeps(t))
	rr := postForm(t, handler, routepath.BlogPosts, url.Values{
		"date":    {"2026-05-18"},
		"content": {"Started at the Atlantic."},
		"photos":  {" img/a.jpg, ,img/b.jpg "},
	})
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	location := rr.Header().Get("Location")
	if !strings.HasPrefix(location, "/blog?focus=") {
		t.Fatalf("Location = %q", location)
	}

	path, _, _ := strings.Cut(location, "#")
	page := get(t, handler, path)
	ids, focused := renderedPosts(t, page.Body.String())
	if len(ids) != 4 || ids[0] != focused || focused == "" {
		t.Fatalf("posts = %v focused = %q, want new post first and focused", ids, focused)
	}
	if !strings.Contains(page.Body.String(), "Daily update — May 18, 2026") {
		t.Fatal("default title missing")
	}
}

func TestPublishRejectsInvalidDraft(t *testing.T) {
	t.Parallel()

	handler := mountBlog(t, localDeps(t))
	rr := postForm(t, handler, routepath.BlogPosts, url.Values{"date": {"2026-05-18"}, "title": {"Kept <title>"}, "content": {"   "}})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, localstore.DraftInvalidMessage) {
		t.Fatal("validation message missing")
	}
	if !strings.Contains(body, `value="Kept &lt;title&gt;"`) {
		t.Fatalf("draft title not echoed escaped: %q", body)
	}
	if ids, _ := renderedPosts(t, body); len(ids) != 3 {
		t.Fatalf("posts = %v, want the three samples", ids)
	}
}

func TestDeleteAndResetRedirectToBlog(t *testing.T) {
	t.Parallel()

	handler := mountBlog(t, localDeps(t))
	rr := postForm(t, handler, routepath.BlogPostDelete("p1"), nil)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != routepath.Blog {
		t.Fatalf("delete = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if ids, _ := renderedPosts(t, get(t, handler, routepath.Blog).Body.String()); strings.Join(ids, ",") != "p3,p2" {
		t.Fatalf("posts after delete = %v", ids)
	}

	rr = postForm(t, handler, routepath.BlogReset, nil)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != routepath.Blog {
		t.Fatalf("reset = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if ids, _ := renderedPosts(t, get(t, handler, routepath.Blog).Body.String()); strings.Join(ids, ",") != "p3,p2,p1" {
		t.Fatalf("posts after reset = %v", ids)
	}
}

func TestEditorRoutesRejectGet(t *testing.T) {
	t.Parallel()

	handler := mountBlog(t, localDeps(t))
	for _, target := range []string{routepath.BlogPosts, routepath.BlogPostDelete("p1"), routepath.BlogReset} {
		if rr := get(t, handler, target); rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusMethodNotAllowed)
		}
	}
}

func TestEditorFailuresRenderServerError(t *testing.T) {
	t.Parallel()

	handler := mountBlog(t, module.Dependencies{
		Posts:  staticFeed{},
		Editor: failingEditor{},
		Logger: log.New(&bytes.Buffer{}, "", 0),
	})
	rr := postForm(t, handler, routepath.BlogReset, nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "disk full") {
		t.Fatal("error cause leaked to visitor")
	}
}
