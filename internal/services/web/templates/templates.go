// Package templates renders the site's pages as templ components backed by
// embedded html/template files.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/jamesrunscanada/forthem/internal/services/web/platform/i18n"
)

//go:embed html/*.html
var files embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"t":     T,
	"lines": splitParagraphs,
}).ParseFS(files, "html/*.html"))

// Home renders the landing view.
func Home(page HomePage) templ.Component { return component("home", page) }

// Blog renders the posts view.
func Blog(page BlogPage) templ.Component { return component("blog", page) }

// Story renders the "My Why" view.
func Story(page StoryPage) templ.Component { return component("story", page) }

// Contact renders the contact view.
func Contact(page ContactPage) templ.Component { return component("contact", page) }

// AppError renders the error state shown inside the layout.
func AppError(page ErrorPage) templ.Component { return component("error", page) }

// MapBoard renders the map SVG alone, for clients that swap it in place.
func MapBoard(view MapView) templ.Component { return component("map", view) }

// Layout wraps its children in the page chrome.
func Layout(shell Shell) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		// Children must be read before ClearChildren resets them on ctx.
		children := templ.GetChildren(ctx)
		body, err := templ.ToGoHTML(templ.ClearChildren(ctx), children)
		if err != nil {
			return fmt.Errorf("render page body: %w", err)
		}
		if shell.Loc == nil {
			shell.Loc = webi18n.Printer(webi18n.Default)
		}
		if shell.Lang == "" {
			shell.Lang = webi18n.Default.String()
		}
		description := shell.Description
		if description == "" {
			description = SiteDescription
		}
		return pages.ExecuteTemplate(w, "layout", layoutData{
			Shell:       shell,
			Description: description,
			Nav:         NavTabs(shell.Loc, shell.View),
			Footer:      T(shell.Loc, "footer.rights", strconv.Itoa(shell.Year)),
			Tagline:     T(shell.Loc, "nav.tagline"),
			Body:        body,
		})
	})
}

type layoutData struct {
	Shell
	Description string
	Nav         []NavTab
	Footer      string
	Tagline     string
	Body        template.HTML
}

func component(name string, data any) templ.Component {
	tmpl := pages.Lookup(name)
	if tmpl == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %q is not defined", name)
		})
	}
	return templ.FromGoHTML(tmpl, data)
}

// splitParagraphs splits post text on blank lines.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}
