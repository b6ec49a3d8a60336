package static

import "embed"

// FS exposes web static assets for HTTP serving. Site photos live under img/.
//
//go:embed *.css *.js img
var FS embed.FS
