// Package content models the blog posts shown in the site's feed and the
// sources they are read from.
package content

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultTitle is shown when a post has no title.
const DefaultTitle = "Daily update"

// Post is one dated entry of the run blog.
type Post struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Content string   `json:"content"`
	Photos  []string `json:"photos"`
}

// DisplayTitle returns the title or the default heading for untitled posts.
func (p Post) DisplayTitle() string {
	if title := strings.TrimSpace(p.Title); title != "" {
		return title
	}
	return DefaultTitle
}

// CoverPhoto returns the first photo, if any.
func (p Post) CoverPhoto() (string, bool) {
	for _, photo := range p.Photos {
		if strings.TrimSpace(photo) != "" {
			return photo, true
		}
	}
	return "", false
}

// Source lists posts from a backing store.
type Source interface {
	ListPosts(ctx context.Context) ([]Post, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Post, error)

// ListPosts calls f.
func (f SourceFunc) ListPosts(ctx context.Context) ([]Post, error) {
	return f(ctx)
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate parses the date formats the content store and local drafts use.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a post date as "Jan 2, 2006". Unparsable input is
// returned verbatim.
func FormatDate(value string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return value
	}
	return parsed.Format("Jan 2, 2006")
}

// SortByDateDesc returns a copy of posts ordered newest first. Posts with
// equal dates keep their input order; unparsable dates sort last.
func SortByDateDesc(posts []Post) []Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b Post) int {
		at, aok := ParseDate(a.Date)
		bt, bok := ParseDate(b.Date)
		switch {
		case aok && bok:
			return bt.Compare(at)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Latest returns the n newest posts.
func Latest(posts []Post, n int) []Post {
	if n <= 0 {
		return nil
	}
	sorted := SortByDateDesc(posts)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// LatestID returns the id of the newest post, or "" when there are none.
func LatestID(posts []Post) string {
	latest := Latest(posts, 1)
	if len(latest) == 0 {
		return ""
	}
	return latest[0].ID
}

const excerptMinCut = 60

// Excerpt collapses whitespace in text and shortens it to at most n runes,
// breaking at the last space when that space falls past the 60th rune.
func Excerpt(text string, n int) string {
	clean := strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")
	if n <= 0 || utf8.RuneCountInString(clean) <= n {
		return clean
	}
	cut := string([]rune(clean)[:n])
	if lastSpace := strings.LastIndex(cut, " "); lastSpace >= 0 && utf8.RuneCountInString(cut[:lastSpace]) > excerptMinCut {
		cut = cut[:lastSpace]
	}
	return cut + "…"
}
