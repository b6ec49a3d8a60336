package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	maxResponseBytes = 64 << 10
	tracerName       = "github.com/jamesrunscanada/forthem/internal/contact"
)

// FormRelayConfig configures a FormRelay.
type FormRelayConfig struct {
	// Endpoint is the form endpoint URL, e.g. https://formspree.io/f/<id>.
	Endpoint   string
	HTTPClient *http.Client
}

// FormRelay posts submissions as url-encoded forms, the way a browser form
// post to a Formspree-style endpoint would.
type FormRelay struct {
	endpoint string
	http     *http.Client
	tracer   trace.Tracer
}

// NewFormRelay returns a relay for cfg.Endpoint.
func NewFormRelay(cfg FormRelayConfig) *FormRelay {
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &FormRelay{
		endpoint: strings.TrimSpace(cfg.Endpoint),
		http:     client,
		tracer:   otel.Tracer(tracerName),
	}
}

// RelayError is a non-2xx answer from the form endpoint.
type RelayError struct {
	StatusCode int
	Detail     string
}

func (e *RelayError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("form endpoint status %d", e.StatusCode)
	}
	return fmt.Sprintf("form endpoint status %d: %s", e.StatusCode, e.Detail)
}

// Send validates and posts submission.
func (r *FormRelay) Send(ctx context.Context, submission Submission) (string, error) {
	if r == nil || r.endpoint == "" {
		return "", errors.New("form endpoint is not configured")
	}
	if err := submission.Validate(); err != nil {
		return "", err
	}
	ctx, span := r.tracer.Start(ctx, "contact.Send")
	defer span.End()

	submission = submission.Trimmed()
	form := url.Values{
		"name":    {submission.Name},
		"email":   {submission.Email},
		"message": {submission.Message},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "post form")
		return "", fmt.Errorf("post form: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		relayErr := &RelayError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
		span.RecordError(relayErr)
		span.SetStatus(codes.Error, "form endpoint rejected submission")
		return "", relayErr
	}
	return SentMessage, nil
}

// errorDetail joins the messages of a Formspree-style error body.
func errorDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	var messages []string
	for _, item := range gjson.GetBytes(body, "errors.#.message").Array() {
		if msg := strings.TrimSpace(item.String()); msg != "" {
			messages = append(messages, msg)
		}
	}
	if len(messages) == 0 {
		return strings.TrimSpace(gjson.GetBytes(body, "error").String())
	}
	return strings.Join(messages, "; ")
}
