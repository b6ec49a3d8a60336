// Package imagecdn resolves delivery URLs for post photos.
//
// Photos served from the Sanity image pipeline accept sizing parameters in
// the query string; any other host is passed through untouched.
package imagecdn

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// SanityHost is the host of the Sanity image pipeline.
const SanityHost = "cdn.sanity.io"

// ErrSourceRequired is returned when a request has no source URL.
var ErrSourceRequired = errors.New("image source is required")

// Fit selects how the pipeline fits the image into the requested box.
type Fit string

const (
	FitMax  Fit = "max"
	FitCrop Fit = "crop"
)

// Request describes one image delivery.
type Request struct {
	Source   string
	WidthPX  int
	HeightPX int
	Fit      Fit
	Quality  int
}

// CDN resolves delivery URLs. AssetBaseURL rewrites relative sources
// (bundled site photos) onto a static asset host.
type CDN struct {
	assetBaseURL string
}

// New returns a CDN that prefixes relative sources with assetBaseURL.
func New(assetBaseURL string) CDN {
	return CDN{assetBaseURL: strings.TrimRight(strings.TrimSpace(assetBaseURL), "/")}
}

// URL returns the delivery URL for req.
func (c CDN) URL(req Request) (string, error) {
	source := strings.TrimSpace(req.Source)
	if source == "" {
		return "", ErrSourceRequired
	}
	parsed, err := url.Parse(source)
	if err != nil {
		return "", err
	}
	if !parsed.IsAbs() {
		if c.assetBaseURL == "" {
			return source, nil
		}
		return c.assetBaseURL + "/" + strings.TrimLeft(source, "/"), nil
	}
	if !strings.EqualFold(parsed.Host, SanityHost) {
		return source, nil
	}

	query := parsed.Query()
	if req.WidthPX > 0 {
		query.Set("w", strconv.Itoa(req.WidthPX))
	}
	if req.HeightPX > 0 {
		query.Set("h", strconv.Itoa(req.HeightPX))
	}
	if req.Fit != "" {
		query.Set("fit", string(req.Fit))
	}
	if req.Quality > 0 {
		query.Set("q", strconv.Itoa(req.Quality))
	}
	query.Set("auto", "format")
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// MustURL is URL for templates: failures fall back to the raw source.
func (c CDN) MustURL(req Request) string {
	resolved, err := c.URL(req)
	if err != nil {
		return req.Source
	}
	return resolved
}
