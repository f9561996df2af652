package geodome

import (
	"math"
	"testing"
)

func closeVertex(a, b Vertex, eps float64) bool {
	return a.Sub(b).Norm() <= eps
}

func TestRotationMatrix(t *testing.T) {
	// четверть оборота вокруг z: x -> y
	m := RotationMatrix(Vertex{0, 0, 1}, math.Pi/2)
	if got := m.Apply(Vertex{1, 0, 0}); !closeVertex(got, Vertex{0, 1, 0}, 1e-12) {
		t.Errorf("got %v, want (0, 1, 0)", got)
	}

	m = RotationMatrix(Vertex{1, 0, 0}, math.Pi)
	if got := m.Apply(Vertex{0, 1, 0}); !closeVertex(got, Vertex{0, -1, 0}, 1e-12) {
		t.Errorf("got %v, want (0, -1, 0)", got)
	}
}

func TestAlignToPole(t *testing.T) {
	v, _ := Vertex{1, 2, 3}.Normalize()
	w, _ := Vertex{-1, 0.5, 0}.Normalize()
	verts := []Vertex{v, w}
	before := v.Dot(w)

	if !AlignToPole(verts) {
		t.Fatal("expected rotation")
	}
	if verts[0] != Pole {
		t.Errorf("first vertex %v, want the pole", verts[0])
	}
	if after := verts[0].Dot(verts[1]); math.Abs(after-before) > 1e-12 {
		t.Errorf("angle between vertices changed: %g -> %g", before, after)
	}
}

func TestAlignToPoleAlreadyAtPole(t *testing.T) {
	verts := []Vertex{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
	if AlignToPole(verts) {
		t.Error("rotation must be skipped when the first vertex is at the pole")
	}
	want := []Vertex{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
	for i := range verts {
		if verts[i] != want[i] {
			t.Errorf("vertex %d changed: %v", i, verts[i])
		}
	}
	for _, v := range verts {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			t.Fatal("NaN after skipped rotation")
		}
	}
}

func TestAlignToPoleAntipode(t *testing.T) {
	verts := []Vertex{{0, 0, -1}, {1, 0, 0}, {0, 1, 0}}
	if !AlignToPole(verts) {
		t.Fatal("south pole must be turned to the north pole")
	}
	if verts[0] != Pole {
		t.Errorf("first vertex %v, want the pole", verts[0])
	}
	// пол-оборота вокруг x: x остается, y меняет знак
	if !closeVertex(verts[1], Vertex{1, 0, 0}, 1e-12) || !closeVertex(verts[2], Vertex{0, -1, 0}, 1e-12) {
		t.Errorf("unexpected half-turn result: %v", verts)
	}
}

func TestAlignToPoleEmpty(t *testing.T) {
	if AlignToPole(nil) {
		t.Error("nothing to rotate")
	}
}
