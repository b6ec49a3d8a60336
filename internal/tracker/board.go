package tracker

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// Pin is one point annotation dropped on the map.
type Pin struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Caption is the hover text: label and rounded coordinates.
func (p Pin) Caption() string {
	return fmt.Sprintf("%s • (%d, %d)", p.Label, int(math.Round(p.X)), int(math.Round(p.Y)))
}

// Board is one visitor's map: a viewport plus the pins in drop order.
// A Board is not safe for concurrent use; Boards serializes access.
type Board struct {
	Viewport Viewport
	pins     []Pin
	newID    func() string
}

// NewBoard returns an empty board at the identity view.
func NewBoard() *Board {
	return &Board{Viewport: Identity(), newID: uuid.NewString}
}

// Pins returns a copy of the pins in drop order.
func (b *Board) Pins() []Pin {
	return slices.Clone(b.pins)
}

// Len returns the number of pins.
func (b *Board) Len() int {
	return len(b.pins)
}

// Click drops a pin where a click at (cx, cy) lands for a map element of
// the given size. Clicks outside the logical map, or against an element
// without a positive size, are ignored and report false.
func (b *Board) Click(cx, cy, width, height float64) (Pin, bool) {
	if !finite(cx) || !finite(cy) || !finite(width) || !finite(height) {
		return Pin{}, false
	}
	if width <= 0 || height <= 0 {
		return Pin{}, false
	}
	return b.Drop(b.Viewport.ScreenToLogical(cx, cy, width, height))
}

// Drop adds a pin at a logical point when it lies on the map.
func (b *Board) Drop(at Point) (Pin, bool) {
	if !at.InBounds() {
		return Pin{}, false
	}
	newID := b.newID
	if newID == nil {
		newID = uuid.NewString
	}
	pin := Pin{
		ID:    newID(),
		X:     at.X,
		Y:     at.Y,
		Label: "Pin " + strconv.Itoa(len(b.pins)+1),
	}
	b.pins = append(b.pins, pin)
	return pin, true
}

// RemoveLast drops the most recent pin, if any.
func (b *Board) RemoveLast() {
	if len(b.pins) == 0 {
		return
	}
	b.pins = b.pins[:len(b.pins)-1]
}

// Clear removes every pin.
func (b *Board) Clear() {
	b.pins = nil
}

// ResetView returns the viewport to identity; pins are kept.
func (b *Board) ResetView() {
	b.Viewport = Identity()
}

// State is a serializable snapshot of a board.
type State struct {
	ID       string   `json:"id"`
	Viewport Viewport `json:"viewport"`
	Pins     []Pin    `json:"pins"`
	Count    int      `json:"count"`
}

// Snapshot captures the board under id.
func (b *Board) Snapshot(id string) State {
	pins := b.Pins()
	if pins == nil {
		pins = []Pin{}
	}
	return State{ID: id, Viewport: b.Viewport, Pins: pins, Count: len(pins)}
}
