package templates

import "strings"

// Site-wide copy and links.
const (
	SiteName         = "James Runs Canada"
	SiteDescription  = "Follow James as he runs across Canada for 100 days, 80km/day, to fund scholarships for youth who’ve been displaced in childhood."
	ContactEmail     = "TEAM@jamesrunscanada.ca"
	InstagramHandle  = "@Jams_Newman"
	InstagramURL     = "https://www.instagram.com/Jams_Newman/"
	RunStartNotice   = "Follow the run starting May 18th 2026!"
	RunDays          = 100
	RunKilometersDay = 80

	MarqueeText    = " LIVE • TURNING KILOMETERS INTO SCHOLARSHIPS • FOLLOW ALONG • DONATE • "
	marqueeRepeats = 12

	LoadingPostsMessage = "Loading posts…"
	NoPostsMessage      = "No posts yet."
	NoSponsorsMessage   = "No sponsors listed yet."
	NoPhotoLabel        = "No photo"
	defaultDonateURL    = "#donate"
)

// Site photos, relative to the asset base URL.
const (
	PhotoRunning = "img/jameshome6.png"
	PhotoBiking  = "img/biking-photo.png"
	PhotoUkraine = "img/ukraine-photo.jpeg"
	PhotoFamily  = "img/family-photo.jpg"
	PhotoNature  = "img/nature.avif"
	PhotoMap     = "img/map.png"
	PhotoLogo    = "img/logo.png"
)

// Marquee repeats the banner text enough times to scroll seamlessly.
func Marquee(text string) string {
	if text == "" {
		text = MarqueeText
	}
	return strings.Repeat(text, marqueeRepeats)
}

// DonateHref returns url or the in-page donate anchor when none is set.
func DonateHref(url string) string {
	if url = strings.TrimSpace(url); url != "" {
		return url
	}
	return defaultDonateURL
}

// PlanItems lists how the run is organised.
var PlanItems = []string{
	"Daily Instagram + blog updates with photos, stories, and distance.",
	"Live GPS tracker so anyone can follow in real time. The tracker will be turned off at the end of each day and resumed from that idling spot the next morning.",
	"Visits with charity partners along the route to show impact first-hand.",
	"Clear donation and milestone updates so supporters see progress.",
}

// SupportItem is one way to help.
type SupportItem struct {
	Title       string
	Description string
}

// SupportItems lists the ways to support the run.
var SupportItems = []SupportItem{
	{Title: "Donate", Description: "Directly fuels the scholarship fund."},
	{Title: "Share", Description: "More reach = more supporters (and more impact)."},
	{Title: "Sponsor", Description: "Any organizations wanting to help fuel the run with their products or services."},
	{Title: "Partner charities", Description: "Charity organizations are welcome to connect with us along the route!"},
}
