package localstore

import (
	"strings"

	"github.com/jamesrunscanada/forthem/internal/content"
)

// DraftInvalidMessage is shown when a draft lacks a date or body text.
const DraftInvalidMessage = "Please add a date and some text."

// ValidationError reports a draft the store refused.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Draft is the publish form's input.
type Draft struct {
	Date    string
	Title   string
	Content string
	// Photos is a comma-separated list of image URLs.
	Photos string
}

// Post turns the draft into a post with an id from newID.
func (d Draft) Post(newID func() string) (content.Post, error) {
	date := strings.TrimSpace(d.Date)
	body := strings.TrimSpace(d.Content)
	if _, ok := content.ParseDate(date); !ok || body == "" {
		return content.Post{}, &ValidationError{Message: DraftInvalidMessage}
	}
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "Daily update — " + content.FormatDate(date)
	}
	return content.Post{
		ID:      newID(),
		Date:    date,
		Title:   title,
		Content: body,
		Photos:  SplitPhotos(d.Photos),
	}, nil
}

// SplitPhotos splits a comma-separated list, trimming entries and dropping
// empty ones.
func SplitPhotos(list string) []string {
	photos := []string{}
	for _, part := range strings.Split(list, ",") {
		if photo := strings.TrimSpace(part); photo != "" {
			photos = append(photos, photo)
		}
	}
	return photos
}
