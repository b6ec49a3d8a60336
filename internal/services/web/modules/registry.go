package modules

import (
	"github.com/jamesrunscanada/forthem/internal/services/web/modules/blog"
	"github.com/jamesrunscanada/forthem/internal/services/web/modules/contact"
	"github.com/jamesrunscanada/forthem/internal/services/web/modules/home"
	"github.com/jamesrunscanada/forthem/internal/services/web/modules/mapboard"
	"github.com/jamesrunscanada/forthem/internal/services/web/modules/story"
)

// DefaultModules returns the site's modules: one per view plus the map API.
func DefaultModules() []Module {
	return []Module{
		home.New(),
		blog.New(),
		story.New(),
		contact.New(),
		mapboard.New(),
	}
}
