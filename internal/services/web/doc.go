// Package web hosts the public charity-run website.
//
// The root handler composes the area modules (home, blog, story, contact
// and the map board API) behind shared middleware, and serves the embedded
// static assets under /static/.
package web
