package story

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/jamesrunscanada/forthem/internal/platform/assets/imagecdn"
	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
)

func serve(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{Images: imagecdn.New("/static")})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.StoryPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

// pageText returns the document's text with entities decoded.
func pageText(t *testing.T, body string) string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}

func TestModuleIDReturnsStory(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "story" {
		t.Fatalf("ID() = %q, want %q", got, "story")
	}
}

func TestStoryRendersBothSections(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, routepath.Story)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"/static/img/family-photo.jpg",
		"/static/img/ukraine-photo.jpeg",
		`data-parallax-strength="85"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("story page missing %q", want)
		}
	}
	text := pageText(t, body)
	for _, want := range []string{
		"My Why",
		webtemplates.PlanItems[0],
		webtemplates.SupportItems[3].Title,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("story text missing %q", want)
		}
	}
	if !strings.Contains(body, `aria-current="page"`) {
		t.Fatal("story tab not marked active")
	}
}

func TestStoryTrailingSlashAndUnknownPaths(t *testing.T) {
	t.Parallel()

	if rr := serve(t, http.MethodGet, routepath.StoryPrefix); rr.Code != http.StatusOK {
		t.Fatalf("GET /story/ status = %d", rr.Code)
	}
	if rr := serve(t, http.MethodGet, "/story/chapter-2"); rr.Code != http.StatusNotFound {
		t.Fatalf("GET /story/chapter-2 status = %d", rr.Code)
	}
	if rr := serve(t, http.MethodPost, routepath.Story); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /story status = %d", rr.Code)
	}
}
