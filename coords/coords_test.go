package coords

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultiplyTranslateScale(t *testing.T) {
	m := Scale(2, 3).Multiply(Translate(10, 20))
	want := Matrix{2, 0, 0, 3, 10, 20}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformPoint(t *testing.T) {
	p := Scale(2, 2).Transform(Point{X: 3, Y: 4})
	if p != (Point{X: 6, Y: 8}) {
		t.Fatalf("transform = %+v", p)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	m := Rotate(math.Pi / 2)
	p := m.Transform(Point{X: 1, Y: 0})
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-1) > 1e-9 {
		t.Fatalf("rotated point = %+v, want (0, 1)", p)
	}
}

func TestIdentity(t *testing.T) {
	p := Point{X: 12.5, Y: -3}
	if got := Identity().Transform(p); got != p {
		t.Fatalf("identity moved point: %+v", got)
	}
}
