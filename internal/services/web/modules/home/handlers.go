package home

import (
	"net/http"
	"strings"

	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/jamesrunscanada/forthem/internal/platform/assets/imagecdn"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/pagerender"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/sitecookie"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
	"github.com/jamesrunscanada/forthem/internal/tracker"
)

// Section parallax settings.
const (
	heroStrength     = 95
	charityStrength  = 90
	partnersStrength = 60

	charityHeightRatio  = 0.88
	partnersHeightRatio = 0.9
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	deps := h.Deps()
	loc, _ := h.PageLocalizer(r)
	feed := deps.LoadFeed(httpx.RequestContext(r))
	board := h.resolveBoard(w, r)

	hero := webtemplates.NewParallax(deps.Images, webtemplates.PhotoRunning, "45% 100%", heroStrength, 1)
	// The hero starts at the top of the page, centred on the viewport.
	hero.Offset = 0

	page := webtemplates.HomePage{
		Loc:          loc,
		Hero:         hero,
		Logo:         deps.Images.MustURL(imagecdn.Request{Source: webtemplates.PhotoLogo, WidthPX: 2 * webtemplates.LogoWidthPX}),
		LatestHref:   routepath.BlogFocus(content.LatestID(feed.Posts)),
		DonateHref:   webtemplates.DonateHref(deps.DonateURL),
		InstagramURL: webtemplates.InstagramURL,
		StartNotice:  webtemplates.RunStartNotice,
		Stats: []string{
			webtemplates.T(loc, "stats.days", webtemplates.RunDays),
			webtemplates.T(loc, "stats.daily", webtemplates.RunKilometersDay),
			webtemplates.T(loc, "stats.total", webtemplates.RunDays*webtemplates.RunKilometersDay),
		},
		Map:       webtemplates.NewMapView(board),
		MapPhoto:  deps.Images.MustURL(imagecdn.Request{Source: webtemplates.PhotoMap, WidthPX: webtemplates.BackgroundWidth}),
		Marquee:   webtemplates.Marquee(""),
		Latest:    webtemplates.NewPostCards(feed.Posts, webtemplates.LatestPostCount, deps.Images),
		FeedError: feed.Err,
		Charity:   webtemplates.NewParallax(deps.Images, webtemplates.PhotoBiking, "50% 50%", charityStrength, charityHeightRatio),
		Partners:  webtemplates.NewParallax(deps.Images, webtemplates.PhotoNature, "50% 55%", partnersStrength, partnersHeightRatio),
		Groups:    webtemplates.NewSponsorGroups(deps.Sponsors, deps.Images),
	}
	h.WritePage(w, r, pagerender.Page{
		View: routepath.ViewHome,
		Body: webtemplates.Home(page),
	})
}

// resolveBoard reuses the board named in the query, then the one remembered
// in the board cookie, or issues a new one. The chosen board is remembered
// for the rest of the browser session so tab switches keep the pins.
func (h handlers) resolveBoard(w http.ResponseWriter, r *http.Request) tracker.State {
	boards := h.Deps().Boards
	if boards == nil {
		return tracker.NewBoard().Snapshot("")
	}
	candidates := []string{strings.TrimSpace(r.URL.Query().Get(routepath.BoardQueryKey))}
	if id, ok := sitecookie.Read(r, sitecookie.Board); ok {
		candidates = append(candidates, id)
	}
	for _, id := range candidates {
		if id == "" {
			continue
		}
		if state, err := boards.Get(id); err == nil {
			sitecookie.Write(w, r, sitecookie.Board, state.ID, 0)
			return state
		}
	}
	state := boards.Create()
	sitecookie.Write(w, r, sitecookie.Board, state.ID, 0)
	return state
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
