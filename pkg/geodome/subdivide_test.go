package geodome

import (
	"math"
	"testing"
)

func unitTriangle() (Vertex, Vertex, Vertex) {
	return Vertex{1, 0, 0}, Vertex{0, 1, 0}, Vertex{0, 0, 1}
}

func TestSubdivideTriangleCount(t *testing.T) {
	a, b, c := unitTriangle()
	for freq := 1; freq <= 10; freq++ {
		n := 0
		keys := make(map[GridKey]bool)
		for k, p := range SubdivideTriangle(a, b, c, freq) {
			n++
			keys[k] = true
			if d := math.Abs(p.Norm() - 1); d > 1e-12 {
				t.Errorf("freq %d: point %v off the sphere by %g", freq, k, d)
			}
			if k.I < 0 || k.J < 0 || k.I+k.J > freq {
				t.Errorf("freq %d: bad grid key %v", freq, k)
			}
		}
		want := (freq + 1) * (freq + 2) / 2
		if n != want || SampleCount(freq) != want {
			t.Errorf("freq %d: got %d samples (SampleCount %d), want %d", freq, n, SampleCount(freq), want)
		}
		if len(keys) != n {
			t.Errorf("freq %d: %d duplicate keys", freq, n-len(keys))
		}
	}
}

func TestSubdivideTriangleCorners(t *testing.T) {
	a, b, c := unitTriangle()
	got := make(map[GridKey]Vertex)
	for k, p := range SubdivideTriangle(a, b, c, 3) {
		got[k] = p
	}

	corners := []struct {
		key  GridKey
		want Vertex
	}{
		{GridKey{3, 0}, a},
		{GridKey{0, 3}, b},
		{GridKey{0, 0}, c},
	}
	for _, tc := range corners {
		if !closeVertex(got[tc.key], tc.want, 1e-15) {
			t.Errorf("corner %v = %v, want %v", tc.key, got[tc.key], tc.want)
		}
	}

	// центр грани при freq=3 - узел (1,1,1)
	center, _ := Vertex{1, 1, 1}.Normalize()
	if !closeVertex(got[GridKey{1, 1}], center, 1e-14) {
		t.Errorf("center = %v, want %v", got[GridKey{1, 1}], center)
	}
}

func TestSubdivideTriangleZeroFrequency(t *testing.T) {
	a, b, c := unitTriangle()
	var pts []Vertex
	for _, p := range SubdivideTriangle(a, b, c, 0) {
		pts = append(pts, p)
	}
	if len(pts) != 1 || pts[0] != a {
		t.Errorf("got %v, want only A", pts)
	}
}

func TestSubdivideTriangleRestartable(t *testing.T) {
	a, b, c := unitTriangle()
	seq := SubdivideTriangle(a, b, c, 4)

	var first, second []Vertex
	for _, p := range seq {
		first = append(first, p)
	}
	for _, p := range seq {
		second = append(second, p)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs", i)
		}
	}

	// ранний выход
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break: %d", n)
	}
}

func TestSubdivideTriangleZeroNorm(t *testing.T) {
	// середина между диаметрально противоположными точками - начало координат
	a, b := Vertex{1, 0, 0}, Vertex{-1, 0, 0}
	for k, p := range SubdivideTriangle(a, b, b, 2) {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
			t.Fatalf("%v: NaN", k)
		}
	}
}
