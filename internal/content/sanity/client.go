// Package sanity reads blog posts from the Sanity content store over its
// HTTP query API.
package sanity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PostsQuery selects every post newest first with photo asset URLs resolved.
const PostsQuery = `*[_type == "post"] | order(date desc){
  _id,
  title,
  date,
  content,
  "photos": photos[].asset->url
}`

const (
	defaultDataset    = "production"
	defaultAPIVersion = "2025-01-01"
	maxBodyBytes      = 4 << 20
	tracerName        = "github.com/jamesrunscanada/forthem/internal/content/sanity"
)

// Config identifies the Sanity project to query.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	// Token is an optional read token for private datasets.
	Token string
	// BaseURL overrides the derived API host, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries one Sanity dataset.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	tracer   trace.Tracer
}

// New validates cfg and returns a client.
func New(cfg Config) (*Client, error) {
	projectID := strings.TrimSpace(cfg.ProjectID)
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		if projectID == "" {
			return nil, errors.New("sanity project id is required")
		}
		host := "api.sanity.io"
		if cfg.UseCDN {
			host = "apicdn.sanity.io"
		}
		base = "https://" + projectID + "." + host
	}
	dataset := strings.TrimSpace(cfg.Dataset)
	if dataset == "" {
		dataset = defaultDataset
	}
	version := strings.TrimPrefix(strings.TrimSpace(cfg.APIVersion), "v")
	if version == "" {
		version = defaultAPIVersion
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint: base + "/v" + version + "/data/query/" + url.PathEscape(dataset),
		token:    strings.TrimSpace(cfg.Token),
		http:     httpClient,
		tracer:   otel.Tracer(tracerName),
	}, nil
}

// ListPosts runs PostsQuery and decodes the result rows.
func (c *Client) ListPosts(ctx context.Context) ([]content.Post, error) {
	if c == nil {
		return nil, errors.New("sanity client is nil")
	}
	ctx, span := c.tracer.Start(ctx, "sanity.ListPosts")
	defer span.End()

	body, err := c.query(ctx, PostsQuery)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query posts")
		return nil, err
	}
	posts, err := DecodePosts(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode posts")
		return nil, err
	}
	span.SetAttributes(attribute.Int("sanity.posts", len(posts)))
	return posts, nil
}

func (c *Client) query(ctx context.Context, groq string) ([]byte, error) {
	target := c.endpoint + "?" + url.Values{"query": {groq}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build sanity request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query sanity: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read sanity response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Description: gjson.GetBytes(body, "error.description").String()}
	}
	return body, nil
}

// StatusError reports a non-2xx answer from the query API.
type StatusError struct {
	StatusCode  int
	Description string
}

func (e *StatusError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("sanity query status %d", e.StatusCode)
	}
	return fmt.Sprintf("sanity query status %d: %s", e.StatusCode, e.Description)
}

// DecodePosts maps a query response body's result rows to posts. Rows keep
// their response order.
func DecodePosts(body []byte) ([]content.Post, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("sanity response is not valid json")
	}
	result := gjson.GetBytes(body, "result")
	if !result.Exists() || result.Type == gjson.Null {
		return []content.Post{}, nil
	}
	if !result.IsArray() {
		return nil, errors.New("sanity result is not an array")
	}

	rows := result.Array()
	posts := make([]content.Post, 0, len(rows))
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		post := content.Post{
			ID:      row.Get("_id").String(),
			Title:   row.Get("title").String(),
			Date:    row.Get("date").String(),
			Content: row.Get("content").String(),
			Photos:  []string{},
		}
		for _, photo := range row.Get("photos").Array() {
			if src := strings.TrimSpace(photo.String()); photo.Type == gjson.String && src != "" {
				post.Photos = append(post.Photos, src)
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}
