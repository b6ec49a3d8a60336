package story

import (
	"net/http"

	"github.com/jamesrunscanada/forthem/internal/services/web/platform/pagerender"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
)

const (
	sectionStrength    = 85
	sectionHeightRatio = 0.8
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleStory(w http.ResponseWriter, r *http.Request) {
	images := h.Deps().Images
	loc, _ := h.PageLocalizer(r)
	page := webtemplates.StoryPage{
		Loc:     loc,
		Why:     webtemplates.NewParallax(images, webtemplates.PhotoFamily, "65% 35%", sectionStrength, sectionHeightRatio),
		How:     webtemplates.NewParallax(images, webtemplates.PhotoUkraine, "50% 35%", sectionStrength, sectionHeightRatio),
		Plan:    webtemplates.PlanItems,
		Support: webtemplates.SupportItems,
	}
	h.WritePage(w, r, pagerender.Page{
		Title: webtemplates.T(loc, "nav.story"),
		View:  routepath.ViewStory,
		Body:  webtemplates.Story(page),
	})
}
