package mapboard

import (
	"github.com/jamesrunscanada/forthem/internal/tracker"
)

// Board actions accepted at /api/map/boards/{id}/{action}.
const (
	actionPan        = "pan"
	actionZoom       = "zoom"
	actionReset      = "reset"
	actionClick      = "click"
	actionRemoveLast = "remove-last"
	actionClear      = "clear"
)

// actionInput carries every action's parameters; each action reads its own.
type actionInput struct {
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	DeltaY float64 `json:"delta_y"`
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// actionResult is the outcome of one action applied to a board.
type actionResult struct {
	Added *tracker.Pin
}

// boardAction returns the board mutation for action, or false when the
// action is unknown.
func boardAction(action string, input actionInput, result *actionResult) (func(*tracker.Board), bool) {
	switch action {
	case actionPan:
		return func(b *tracker.Board) { b.Viewport = b.Viewport.Pan(input.DX, input.DY) }, true
	case actionZoom:
		return func(b *tracker.Board) { b.Viewport = b.Viewport.Zoom(input.DeltaY) }, true
	case actionReset:
		return func(b *tracker.Board) { b.ResetView() }, true
	case actionClick:
		return func(b *tracker.Board) {
			if pin, ok := b.Click(input.CX, input.CY, input.Width, input.Height); ok {
				result.Added = &pin
			}
		}, true
	case actionRemoveLast:
		return func(b *tracker.Board) { b.RemoveLast() }, true
	case actionClear:
		return func(b *tracker.Board) { b.Clear() }, true
	default:
		return nil, false
	}
}

// boardResponse is the JSON body of every board route.
type boardResponse struct {
	tracker.State
	Transform string       `json:"transform"`
	Added     *tracker.Pin `json:"added,omitempty"`
}

func newBoardResponse(state tracker.State, added *tracker.Pin) boardResponse {
	return boardResponse{State: state, Transform: state.Viewport.Transform(), Added: added}
}
