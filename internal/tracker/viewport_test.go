package tracker

import (
	"math"
	"testing"
)

func TestZoomStepsAndClamps(t *testing.T) {
	t.Parallel()

	v := Identity().Zoom(120)
	if math.Abs(v.Scale-0.92) > 1e-9 {
		t.Fatalf("zoom out scale = %v, want 0.92", v.Scale)
	}
	v = Identity().Zoom(-3)
	if math.Abs(v.Scale-1.08) > 1e-9 {
		t.Fatalf("zoom in scale = %v, want 1.08", v.Scale)
	}
	if got := Identity().Zoom(0).Scale; math.Abs(got-1.08) > 1e-9 {
		t.Fatalf("zero delta scale = %v, want zoom in", got)
	}
}

func TestZoomStaysWithinRange(t *testing.T) {
	t.Parallel()

	deltas := []float64{1, -1, 1e9, -1e9, 0.0001, -0.0001, math.Inf(1), math.Inf(-1)}
	v := Identity()
	for i := 0; i < 200; i++ {
		v = v.Zoom(deltas[i%len(deltas)])
		if v.Scale < MinScale || v.Scale > MaxScale {
			t.Fatalf("step %d scale = %v outside [%v, %v]", i, v.Scale, MinScale, MaxScale)
		}
	}
	for i := 0; i < 50; i++ {
		v = v.Zoom(-1)
	}
	if v.Scale != MaxScale {
		t.Fatalf("repeated zoom in = %v, want %v", v.Scale, MaxScale)
	}
	for i := 0; i < 50; i++ {
		v = v.Zoom(1)
	}
	if v.Scale != MinScale {
		t.Fatalf("repeated zoom out = %v, want %v", v.Scale, MinScale)
	}
}

func TestZoomRecoversFromCorruptScale(t *testing.T) {
	t.Parallel()

	for _, scale := range []float64{0, -4, math.NaN(), 99} {
		v := Viewport{Scale: scale}.Zoom(1)
		if v.Scale < MinScale || v.Scale > MaxScale {
			t.Fatalf("Zoom from %v = %v", scale, v.Scale)
		}
	}
}

func TestPanAccumulatesDeltas(t *testing.T) {
	t.Parallel()

	v := Identity().Pan(10, -4).Pan(-3, 2)
	if v.OffsetX != 7 || v.OffsetY != -2 {
		t.Fatalf("Pan() = %+v, want offset (7, -2)", v)
	}
	if got := v.Pan(math.NaN(), 1); got != v {
		t.Fatalf("Pan(NaN) = %+v, want unchanged", got)
	}
}

func TestScreenToLogical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      Viewport
		cx, cy float64
		want   Point
	}{
		{name: "identity centre", v: Identity(), cx: 400, cy: 210, want: Point{X: 500, Y: 250}},
		{name: "identity corner", v: Identity(), cx: 0, cy: 0, want: Point{X: 100, Y: 40}},
		{name: "panned", v: Viewport{Scale: 1, OffsetX: 50, OffsetY: -20}, cx: 400, cy: 210, want: Point{X: 450, Y: 270}},
		{name: "zoomed", v: Viewport{Scale: 2}, cx: 600, cy: 310, want: Point{X: 600, Y: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ScreenToLogical(tt.cx, tt.cy, 800, 420)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Fatalf("ScreenToLogical() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPointInBounds(t *testing.T) {
	t.Parallel()

	inside := []Point{{0, 0}, {1000, 500}, {500, 250}, {1000, 0}}
	outside := []Point{{-0.01, 10}, {1000.01, 10}, {10, -1}, {10, 500.5}}
	for _, p := range inside {
		if !p.InBounds() {
			t.Fatalf("%+v should be in bounds", p)
		}
	}
	for _, p := range outside {
		if p.InBounds() {
			t.Fatalf("%+v should be out of bounds", p)
		}
	}
}

func TestTransform(t *testing.T) {
	t.Parallel()

	got := Viewport{Scale: 1.5, OffsetX: 12, OffsetY: -3.5}.Transform()
	want := "translate(12px, -3.5px) scale(1.5) translate(-500px, -250px)"
	if got != want {
		t.Fatalf("Transform() = %q, want %q", got, want)
	}
}
