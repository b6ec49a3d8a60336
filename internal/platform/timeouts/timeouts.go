// Package timeouts defines the durations shared by the site's HTTP edges.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ContentFetch caps one content store query made while rendering a page.
const ContentFetch = 4 * time.Second

// ContactRelay caps one hand-off to the form submission endpoint.
const ContactRelay = 8 * time.Second

// MapBoardIdle is how long an untouched map board survives in memory.
const MapBoardIdle = 30 * time.Minute
