package tracker

import (
	"strconv"
	"testing"
)

func newTestBoard() *Board {
	n := 0
	b := NewBoard()
	b.newID = func() string {
		n++
		return "pin-" + strconv.Itoa(n)
	}
	return b
}

func TestClickAddsPinIffInsideMap(t *testing.T) {
	t.Parallel()

	// Element 1000×500 at identity: screen coordinates equal logical ones.
	tests := []struct {
		cx, cy float64
		want   bool
	}{
		{cx: 0, cy: 0, want: true},
		{cx: 1000, cy: 500, want: true},
		{cx: 500, cy: 250, want: true},
		{cx: -1, cy: 250, want: false},
		{cx: 1001, cy: 250, want: false},
		{cx: 500, cy: -0.5, want: false},
		{cx: 500, cy: 501, want: false},
	}
	for _, tt := range tests {
		b := newTestBoard()
		_, added := b.Click(tt.cx, tt.cy, 1000, 500)
		if added != tt.want {
			t.Fatalf("Click(%v, %v) added = %v, want %v", tt.cx, tt.cy, added, tt.want)
		}
		if wantLen := map[bool]int{true: 1, false: 0}[tt.want]; b.Len() != wantLen {
			t.Fatalf("Click(%v, %v) pins = %d, want %d", tt.cx, tt.cy, b.Len(), wantLen)
		}
	}
}

func TestClickIgnoresElementsWithoutSize(t *testing.T) {
	t.Parallel()

	b := newTestBoard()
	for _, size := range [][2]float64{{0, 0}, {1000, 0}, {0, 500}, {-1000, 500}} {
		if _, added := b.Click(0, 0, size[0], size[1]); added {
			t.Fatalf("Click() on %vx%v element added a pin", size[0], size[1])
		}
	}
	if b.Len() != 0 {
		t.Fatalf("pins = %d, want 0", b.Len())
	}
}

func TestClickHonoursViewport(t *testing.T) {
	t.Parallel()

	b := newTestBoard()
	b.Viewport = Viewport{Scale: 2}
	// At 2x the visible window spans x 250..750, so the element edge maps inside.
	pin, ok := b.Click(0, 0, 1000, 500)
	if !ok {
		t.Fatal("Click() at zoomed edge should land on the map")
	}
	if pin.X != 250 || pin.Y != 125 {
		t.Fatalf("pin = %+v, want (250, 125)", pin)
	}

	b.Viewport = Viewport{Scale: 1, OffsetX: 600}
	if _, ok := b.Click(0, 250, 1000, 500); ok {
		t.Fatal("Click() left of the panned map should be dropped")
	}
}

func TestPinLabelsIncrement(t *testing.T) {
	t.Parallel()

	b := newTestBoard()
	for i := 0; i < 3; i++ {
		b.Drop(Point{X: float64(i * 10), Y: 5})
	}
	b.Drop(Point{X: -5, Y: 5})
	pins := b.Pins()
	if len(pins) != 3 {
		t.Fatalf("pins = %d, want 3", len(pins))
	}
	for i, pin := range pins {
		if want := "Pin " + strconv.Itoa(i+1); pin.Label != want {
			t.Fatalf("pins[%d].Label = %q, want %q", i, pin.Label, want)
		}
		if want := "pin-" + strconv.Itoa(i+1); pin.ID != want {
			t.Fatalf("pins[%d].ID = %q, want %q", i, pin.ID, want)
		}
	}

	b.RemoveLast()
	pin, _ := b.Drop(Point{X: 1, Y: 1})
	if pin.Label != "Pin 3" {
		t.Fatalf("label after remove = %q, want Pin 3", pin.Label)
	}
}

func TestRemoveLastAndClear(t *testing.T) {
	t.Parallel()

	b := newTestBoard()
	b.RemoveLast()
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("empty board pins = %d", b.Len())
	}

	b.Drop(Point{X: 1, Y: 1})
	b.Drop(Point{X: 2, Y: 2})
	b.RemoveLast()
	if pins := b.Pins(); len(pins) != 1 || pins[0].X != 1 {
		t.Fatalf("RemoveLast() left %+v", pins)
	}

	b.Drop(Point{X: 3, Y: 3})
	b.Viewport = b.Viewport.Zoom(-1)
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("Clear() left %d pins", b.Len())
	}
	if b.Viewport.Scale == 1 {
		t.Fatal("Clear() should not reset the view")
	}
	b.ResetView()
	if b.Viewport != Identity() {
		t.Fatalf("ResetView() = %+v", b.Viewport)
	}
}

func TestPinCaption(t *testing.T) {
	t.Parallel()

	pin := Pin{Label: "Pin 2", X: 120.6, Y: 44.4}
	if got := pin.Caption(); got != "Pin 2 • (121, 44)" {
		t.Fatalf("Caption() = %q", got)
	}
}

func TestSnapshotNeverReturnsNilPins(t *testing.T) {
	t.Parallel()

	state := newTestBoard().Snapshot("b1")
	if state.Pins == nil || state.Count != 0 || state.ID != "b1" {
		t.Fatalf("Snapshot() = %+v", state)
	}
}
