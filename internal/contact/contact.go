// Package contact validates contact-form submissions and hands them to a
// third-party form endpoint.
package contact

import (
	"context"
	"strings"
)

// User-facing outcomes of a submission.
const (
	MissingFieldsMessage = "Please fill out name, email, and message."
	ReadyMessage         = "Message ready to send."
	SentMessage          = "Thanks! Your message has been sent."
	RelayFailedMessage   = "Sorry, your message could not be sent. Please email us directly."
)

// Submission is one contact-form post.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Trimmed returns the submission with surrounding whitespace removed.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate reports the missing-fields message when any field is blank.
func (s Submission) Validate() error {
	t := s.Trimmed()
	if t.Name == "" || t.Email == "" || t.Message == "" {
		return &ValidationError{Message: MissingFieldsMessage}
	}
	return nil
}

// ValidationError is a submission the form refuses before relaying.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Relay delivers a validated submission and returns the confirmation text.
type Relay interface {
	Send(ctx context.Context, submission Submission) (string, error)
}

// UIOnlyRelay accepts every submission without sending it anywhere.
type UIOnlyRelay struct{}

// Send returns ReadyMessage.
func (UIOnlyRelay) Send(context.Context, Submission) (string, error) {
	return ReadyMessage, nil
}

// NewRelay returns a FormRelay for endpoint, or UIOnlyRelay when no endpoint
// is configured.
func NewRelay(endpoint string, cfg FormRelayConfig) Relay {
	if strings.TrimSpace(endpoint) == "" {
		return UIOnlyRelay{}
	}
	cfg.Endpoint = endpoint
	return NewFormRelay(cfg)
}
