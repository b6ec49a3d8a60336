package contact

import (
	"context"
	"errors"
	"net/http"

	contactform "github.com/jamesrunscanada/forthem/internal/contact"
	"github.com/jamesrunscanada/forthem/internal/platform/assets/imagecdn"
	"github.com/jamesrunscanada/forthem/internal/platform/timeouts"
	apperrors "github.com/jamesrunscanada/forthem/internal/services/web/platform/errors"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/pagerender"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
)

// Form status kinds understood by the contact template.
const (
	statusSuccess = "success"
	statusError   = "error"
)

type handlers struct {
	publichandler.Base
	relay contactform.Relay
}

func newHandlers(base publichandler.Base, relay contactform.Relay) handlers {
	return handlers{Base: base, relay: relay}
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, http.StatusOK, webtemplates.ContactForm{}, webtemplates.FormStatus{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "invalid form", err))
		return
	}
	submission := contactform.Submission{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}
	echo := webtemplates.ContactForm{Name: submission.Name, Email: submission.Email, Message: submission.Message}

	if err := submission.Validate(); err != nil {
		h.renderContact(w, r, http.StatusBadRequest, echo, webtemplates.FormStatus{Kind: statusError, Message: validationMessage(err)})
		return
	}

	ctx, cancel := context.WithTimeout(httpx.RequestContext(r), timeouts.ContactRelay)
	defer cancel()
	confirmation, err := h.relay.Send(ctx, submission.Trimmed())
	if err != nil {
		var invalid *contactform.ValidationError
		if errors.As(err, &invalid) {
			h.renderContact(w, r, http.StatusBadRequest, echo, webtemplates.FormStatus{Kind: statusError, Message: invalid.Message})
			return
		}
		h.Deps().Log().Printf("contact relay failed err=%v", err)
		h.renderContact(w, r, http.StatusBadGateway, echo, webtemplates.FormStatus{Kind: statusError, Message: contactform.RelayFailedMessage})
		return
	}
	h.renderContact(w, r, http.StatusOK, webtemplates.ContactForm{}, webtemplates.FormStatus{Kind: statusSuccess, Message: confirmation})
}

func validationMessage(err error) string {
	var invalid *contactform.ValidationError
	if errors.As(err, &invalid) {
		return invalid.Message
	}
	return contactform.MissingFieldsMessage
}

func (h handlers) renderContact(w http.ResponseWriter, r *http.Request, statusCode int, form webtemplates.ContactForm, status webtemplates.FormStatus) {
	deps := h.Deps()
	loc, _ := h.PageLocalizer(r)
	page := webtemplates.ContactPage{
		Loc:          loc,
		Background:   deps.Images.MustURL(imagecdn.Request{Source: webtemplates.PhotoRunning, WidthPX: webtemplates.BackgroundWidth}),
		Email:        webtemplates.ContactEmail,
		Instagram:    webtemplates.InstagramHandle,
		InstagramURL: webtemplates.InstagramURL,
		Action:       routepath.Contact,
		Form:         form,
		Status:       status,
		Sponsors:     webtemplates.NewSponsorCards(deps.Sponsors.All(), deps.Images),
		NoSponsors:   webtemplates.NoSponsorsMessage,
	}
	h.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "nav.contact"),
		View:       routepath.ViewContact,
		StatusCode: statusCode,
		Body:       webtemplates.Contact(page),
	})
}
