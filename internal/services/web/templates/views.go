package templates

import (
	"html/template"
	"strconv"

	"github.com/jamesrunscanada/forthem/internal/content"
	"github.com/jamesrunscanada/forthem/internal/platform/assets/imagecdn"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	"github.com/jamesrunscanada/forthem/internal/sponsors"
	"github.com/jamesrunscanada/forthem/internal/tracker"
	"github.com/jamesrunscanada/forthem/internal/visual"
)

// Rendering limits.
const (
	LatestPostCount  = 3
	CardExcerptRunes = 130
	MaxPostPhotos    = 4
	CardPhotoWidthPX = 800
	PostPhotoWidthPX = 1400
	LogoWidthPX      = 96
	BackgroundWidth  = 2000
)

// Shell holds the page chrome shared by every view.
type Shell struct {
	Title       string
	Description string
	Lang        string
	View        string
	Year        int
	Loc         Localizer
}

// NavTab is one navigation link.
type NavTab struct {
	View   string
	Label  string
	Href   string
	Active bool
}

// NavTabs returns the four view tabs with active marked.
func NavTabs(loc Localizer, active string) []NavTab {
	tabs := make([]NavTab, 0, len(routepath.Views))
	for _, view := range routepath.Views {
		tabs = append(tabs, NavTab{
			View:   view,
			Label:  T(loc, "nav."+view),
			Href:   routepath.PathForView(view),
			Active: view == active,
		})
	}
	return tabs
}

// PostCard is a post teaser linking to the focused blog view.
type PostCard struct {
	ID      string
	Title   string
	Date    string
	Excerpt string
	Cover   string
	Href    string
}

// NewPostCards returns cards for the newest limit posts.
func NewPostCards(posts []content.Post, limit int, images imagecdn.CDN) []PostCard {
	latest := content.Latest(posts, limit)
	cards := make([]PostCard, 0, len(latest))
	for _, post := range latest {
		card := PostCard{
			ID:      post.ID,
			Title:   post.DisplayTitle(),
			Date:    content.FormatDate(post.Date),
			Excerpt: content.Excerpt(post.Content, CardExcerptRunes),
			Href:    routepath.BlogFocus(post.ID),
		}
		if cover, ok := post.CoverPhoto(); ok {
			card.Cover = images.MustURL(imagecdn.Request{Source: cover, WidthPX: CardPhotoWidthPX, Fit: imagecdn.FitMax})
		}
		cards = append(cards, card)
	}
	return cards
}

// PostEntry is one full post on the blog page.
type PostEntry struct {
	ID           string
	Anchor       string
	Title        string
	Date         string
	Content      string
	Photos       []string
	Focused      bool
	DeleteAction string
}

// NewPostEntries returns every post newest first. Delete actions are set
// only when editable.
func NewPostEntries(posts []content.Post, focusID string, editable bool, images imagecdn.CDN) []PostEntry {
	sorted := content.SortByDateDesc(posts)
	entries := make([]PostEntry, 0, len(sorted))
	for _, post := range sorted {
		entry := PostEntry{
			ID:      post.ID,
			Anchor:  routepath.PostAnchor(post.ID),
			Title:   post.DisplayTitle(),
			Date:    content.FormatDate(post.Date),
			Content: post.Content,
			Focused: focusID != "" && post.ID == focusID,
		}
		for _, photo := range post.Photos {
			if len(entry.Photos) == MaxPostPhotos {
				break
			}
			if photo == "" {
				continue
			}
			entry.Photos = append(entry.Photos, images.MustURL(imagecdn.Request{Source: photo, WidthPX: PostPhotoWidthPX, Fit: imagecdn.FitMax}))
		}
		if editable {
			entry.DeleteAction = routepath.BlogPostDelete(post.ID)
		}
		entries = append(entries, entry)
	}
	return entries
}

// SponsorCard is one supporter tile.
type SponsorCard struct {
	ID    string
	Name  string
	Tier  string
	Blurb string
	Logo  string
	URL   string
}

// SponsorGroupView is one titled group of sponsor tiles.
type SponsorGroupView struct {
	Key      string
	Title    string
	Subtitle string
	Count    int
	Cards    []SponsorCard
}

// NewSponsorGroups returns every catalog group; empty groups get
// placeholder cards.
func NewSponsorGroups(catalog sponsors.Catalog, images imagecdn.CDN) []SponsorGroupView {
	groups := make([]SponsorGroupView, 0, len(catalog.Groups))
	for _, group := range catalog.Groups {
		groups = append(groups, SponsorGroupView{
			Key:      group.Key,
			Title:    group.Title,
			Subtitle: group.Subtitle,
			Count:    len(group.Items),
			Cards:    NewSponsorCards(group.Cards(), images),
		})
	}
	return groups
}

// NewSponsorCards converts sponsors to tiles.
func NewSponsorCards(list []sponsors.Sponsor, images imagecdn.CDN) []SponsorCard {
	cards := make([]SponsorCard, 0, len(list))
	for _, sponsor := range list {
		card := SponsorCard{
			ID:    sponsor.ID,
			Name:  sponsor.DisplayName(),
			Tier:  sponsor.DisplayTier(),
			Blurb: sponsor.DisplayBlurb(),
			URL:   sponsor.URL,
		}
		if sponsor.Logo != "" {
			card.Logo = images.MustURL(imagecdn.Request{Source: sponsor.Logo, WidthPX: LogoWidthPX, HeightPX: LogoWidthPX, Fit: imagecdn.FitCrop})
		}
		cards = append(cards, card)
	}
	return cards
}

// Parallax is a full-bleed photo section whose background drifts on scroll.
type Parallax struct {
	Background string
	Position   string
	Strength   int
	Offset     int
}

// NewParallax resolves the background and seeds the offset for a section
// heightRatio viewports tall.
func NewParallax(images imagecdn.CDN, photo, position string, strength int, heightRatio float64) Parallax {
	return Parallax{
		Background: images.MustURL(imagecdn.Request{Source: photo, WidthPX: BackgroundWidth}),
		Position:   position,
		Strength:   strength,
		Offset:     visual.FoldOffset(heightRatio, float64(strength)),
	}
}

// MapView is the server-rendered state of one pin board.
type MapView struct {
	BoardID          string
	API              string
	Style            template.CSS
	Scale            string
	Pins             []MapPin
	Count            int
	ResetAction      string
	RemoveLastAction string
	ClearAction      string
	ReturnTo         string
}

// MapPin is one pin with its tooltip geometry.
type MapPin struct {
	ID      string
	Label   string
	Caption string
	X, Y    string
	TipX    string
	TipY    string
	TextX   string
	TextY   string
}

// NewMapView renders a board snapshot.
func NewMapView(state tracker.State) MapView {
	view := MapView{
		BoardID:          state.ID,
		API:              routepath.MapBoard(state.ID),
		Style:            template.CSS("transform: " + state.Viewport.Transform() + "; transform-origin: 0 0"),
		Scale:            number(state.Viewport.Scale),
		Count:            state.Count,
		ResetAction:      routepath.MapBoardAction(state.ID, "reset"),
		RemoveLastAction: routepath.MapBoardAction(state.ID, "remove-last"),
		ClearAction:      routepath.MapBoardAction(state.ID, "clear"),
		ReturnTo:         routepath.HomeMap(state.ID),
	}
	for _, pin := range state.Pins {
		view.Pins = append(view.Pins, MapPin{
			ID:      pin.ID,
			Label:   pin.Label,
			Caption: pin.Caption(),
			X:       number(pin.X),
			Y:       number(pin.Y),
			TipX:    number(pin.X + 10),
			TipY:    number(pin.Y - 24),
			TextX:   number(pin.X + 18),
			TextY:   number(pin.Y - 3),
		})
	}
	return view
}

func number(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
