package templates

// HomePage is the landing view.
type HomePage struct {
	Loc          Localizer
	Hero         Parallax
	Logo         string
	LatestHref   string
	DonateHref   string
	InstagramURL string
	StartNotice  string
	Stats        []string
	Map          MapView
	MapPhoto     string
	Marquee      string
	Latest       []PostCard
	FeedError    string
	Charity      Parallax
	Partners     Parallax
	Groups       []SponsorGroupView
}

// BlogPage lists every post.
type BlogPage struct {
	Loc        Localizer
	Background string
	CountLabel string
	Posts      []PostEntry
	Error      string
	Empty      string
	Focus      string
	Editor     *BlogEditor
}

// BlogEditor is the publish form shown when posts live in the local store.
type BlogEditor struct {
	PublishAction string
	ResetAction   string
	Draft         DraftForm
	Error         string
}

// DraftForm echoes the publish form fields.
type DraftForm struct {
	Date    string
	Title   string
	Content string
	Photos  string
}

// StoryPage explains why the run exists.
type StoryPage struct {
	Loc     Localizer
	Why     Parallax
	How     Parallax
	Plan    []string
	Support []SupportItem
}

// ContactPage shows the contact details, form and sponsor carousel.
type ContactPage struct {
	Loc          Localizer
	Background   string
	Email        string
	Instagram    string
	InstagramURL string
	Action       string
	Form         ContactForm
	Status       FormStatus
	Sponsors     []SponsorCard
	NoSponsors   string
}

// ContactForm echoes the submitted contact fields.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// FormStatus is the outcome line under a form. Kind is "success" or "error".
type FormStatus struct {
	Kind    string
	Message string
}

// ErrorPage is the app-shell error state.
type ErrorPage struct {
	StatusCode int
	Title      string
	Message    string
	HomeHref   string
}
