package mapboard

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	apperrors "github.com/jamesrunscanada/forthem/internal/services/web/platform/errors"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/weberror"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	"github.com/jamesrunscanada/forthem/internal/tracker"
)

// returnToField names the form field that sends no-script posts back to
// the page they came from.
const returnToField = "return_to"

var (
	errBoardsUnavailable = apperrors.E(apperrors.KindUnavailable, "map boards are unavailable")
	errClickWithoutSize  = apperrors.EK(apperrors.KindInvalidInput, "error.map_click", "click needs a positive width and height")
)

type handlers struct {
	boards module.MapBoards
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{boards: deps.Boards}
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	if h.boards == nil {
		writeError(w, r, errBoardsUnavailable)
		return
	}
	state := h.boards.Create()
	_ = httpx.WriteJSON(w, http.StatusCreated, newBoardResponse(state, nil))
}

func (h handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	if h.boards == nil {
		writeError(w, r, errBoardsUnavailable)
		return
	}
	state, err := h.boards.Get(r.PathValue("boardID"))
	if err != nil {
		writeError(w, r, boardError(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, newBoardResponse(state, nil))
}

func (h handlers) handleAction(w http.ResponseWriter, r *http.Request) {
	boardID := strings.TrimSpace(r.PathValue("boardID"))
	action := strings.TrimSpace(r.PathValue("action"))
	formPost := isFormPost(r)

	if h.boards == nil {
		writeError(w, r, errBoardsUnavailable)
		return
	}
	input, err := decodeInput(r, formPost)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if action == actionClick && (input.Width <= 0 || input.Height <= 0) {
		writeError(w, r, errClickWithoutSize)
		return
	}
	var result actionResult
	apply, ok := boardAction(action, input, &result)
	if !ok {
		writeError(w, r, apperrors.E(apperrors.KindNotFound, "unknown map action"))
		return
	}

	state, err := h.boards.Update(boardID, apply)
	if formPost && !httpx.WantsJSON(r) {
		if err != nil {
			// The board expired; the home page issues a fresh one.
			boardID = ""
		}
		httpx.WriteRedirect(w, r, returnTo(r, boardID))
		return
	}
	if err != nil {
		writeError(w, r, boardError(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, newBoardResponse(state, result.Added))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, apperrors.E(apperrors.KindNotFound, "not found"))
}

// writeError answers API callers with a JSON error in the request language.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), weberror.PublicMessage(r, err))
}

func boardError(err error) error {
	if errors.Is(err, tracker.ErrBoardNotFound) {
		return apperrors.Wrap(apperrors.KindNotFound, tracker.ErrBoardNotFound.Error(), err)
	}
	return err
}

func isFormPost(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

func decodeInput(r *http.Request, formPost bool) (actionInput, error) {
	var input actionInput
	if !formPost {
		err := httpx.DecodeJSON(r, &input)
		return input, err
	}
	if err := r.ParseForm(); err != nil {
		return input, apperrors.Wrap(apperrors.KindInvalidInput, "invalid form", err)
	}
	fields := []struct {
		name   string
		target *float64
	}{
		{"dx", &input.DX},
		{"dy", &input.DY},
		{"delta_y", &input.DeltaY},
		{"cx", &input.CX},
		{"cy", &input.CY},
		{"width", &input.Width},
		{"height", &input.Height},
	}
	for _, field := range fields {
		raw := strings.TrimSpace(r.PostForm.Get(field.name))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, apperrors.Wrap(apperrors.KindInvalidInput, field.name+" must be a number", err)
		}
		*field.target = value
	}
	return input, nil
}

// returnTo accepts only same-site paths from the form.
func returnTo(r *http.Request, boardID string) string {
	target := strings.TrimSpace(r.PostForm.Get(returnToField))
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") && !strings.Contains(target, "\\") && boardID != "" {
		return target
	}
	return routepath.HomeMap(boardID)
}
