// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	webi18n "github.com/jamesrunscanada/forthem/internal/services/web/platform/i18n"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
)

// Page describes one full-page response.
type Page struct {
	Title      string
	View       string
	StatusCode int
	Body       templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the site layout. Nothing is written when
// rendering fails, so callers can still send an error page.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	loc, lang := webi18n.ResolveLocalizer(r)
	shell := webtemplates.Shell{
		Title: page.Title,
		Lang:  lang,
		View:  page.View,
		Year:  deps.Clock().Year(),
		Loc:   loc,
	}
	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(shell).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
