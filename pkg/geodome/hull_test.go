package geodome

import (
	"errors"
	"math/rand"
	"testing"
)

func TestConvexHullBasePolyhedra(t *testing.T) {
	cases := []struct {
		poly  Polyhedron
		faces int
		edges int
	}{
		{Tetrahedron, 4, 6},
		{Octahedron, 8, 12},
		{Icosahedron, 20, 30},
	}

	for _, tc := range cases {
		verts, _ := GenerateVertices(tc.poly, true)
		faces, edges, err := HullEdges(verts)
		if err != nil {
			t.Fatalf("%v: %v", tc.poly, err)
		}
		if len(faces) != tc.faces {
			t.Errorf("%v: got %d faces, want %d", tc.poly, len(faces), tc.faces)
		}
		if len(edges) != tc.edges {
			t.Errorf("%v: got %d edges, want %d", tc.poly, len(edges), tc.edges)
		}
		checkOutward(t, verts, faces)
	}
}

// все точки не снаружи ни одной грани
func checkOutward(t *testing.T, pts []Vertex, faces []Face) {
	t.Helper()
	for _, f := range faces {
		hf := newHullFace(pts, f.A, f.B, f.C)
		for i, p := range pts {
			if d := hf.distance(p); d > 1e-9 {
				t.Fatalf("point %d is %g outside face %v", i, d, f)
			}
		}
	}
}

func TestConvexHullIgnoresInteriorPoints(t *testing.T) {
	verts, _ := GenerateVertices(Octahedron, false)
	pts := append([]Vertex{}, verts...)
	pts = append(pts, Vertex{0, 0, 0}, Vertex{0.1, 0.2, -0.1}, verts[2])

	faces, err := ConvexHull(pts)
	if err != nil {
		t.Fatal(err)
	}
	if len(faces) != 8 {
		t.Errorf("got %d faces, want 8", len(faces))
	}
	for _, f := range faces {
		for _, i := range []int{f.A, f.B, f.C} {
			if i >= len(verts) {
				t.Errorf("face %v uses non-hull point %d", f, i)
			}
		}
	}
}

func TestConvexHullRandomSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pts := make([]Vertex, 0, 200)
	for len(pts) < 200 {
		v, ok := Vertex{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}.Normalize()
		if ok {
			pts = append(pts, v)
		}
	}

	faces, edges, err := HullEdges(pts)
	if err != nil {
		t.Fatal(err)
	}
	// триангуляция сферы: F = 2V - 4, E = 3V - 6
	if len(faces) != 2*len(pts)-4 {
		t.Errorf("got %d faces, want %d", len(faces), 2*len(pts)-4)
	}
	if len(edges) != 3*len(pts)-6 {
		t.Errorf("got %d edges, want %d", len(edges), 3*len(pts)-6)
	}
	checkOutward(t, pts, faces)
}

func TestConvexHullDegenerate(t *testing.T) {
	cases := map[string][]Vertex{
		"too few":   {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		"same":      {{1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
		"collinear": {{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {-1, -1, -1}},
		"coplanar":  {{1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}, {0.5, 0.5, 0}},
	}

	for name, pts := range cases {
		_, err := ConvexHull(pts)
		if !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: got %v, want ErrDegenerateGeometry", name, err)
		}
	}
}

func TestEdgesOf(t *testing.T) {
	faces := []Face{{0, 1, 2}, {2, 1, 3}, {3, 1, 0}, {0, 2, 3}, {0, 1, 2}}
	got := EdgesOf(faces)
	want := []Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEdgesCanonical(t *testing.T) {
	verts, _ := GenerateVertices(Icosahedron, true)
	_, edges, err := HullEdges(verts)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[Edge]bool)
	for _, e := range edges {
		if e.A >= e.B {
			t.Errorf("edge %v is not canonical", e)
		}
		if seen[e] {
			t.Errorf("edge %v repeated", e)
		}
		seen[e] = true
	}
}
