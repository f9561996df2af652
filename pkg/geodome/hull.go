package geodome

import (
	"fmt"
	"math"
	"sort"
)

// Грань оболочки во время построения
type hullFace struct {
	a, b, c int
	normal  Vertex
	offset  float64
	dead    bool
}

func newHullFace(pts []Vertex, a, b, c int) *hullFace {
	n := pts[b].Sub(pts[a]).Cross(pts[c].Sub(pts[a]))
	// вырожденный треугольник получит нулевую нормаль и не будет "видим"
	n, _ = n.Normalize()
	return &hullFace{
		a:      a,
		b:      b,
		c:      c,
		normal: n,
		offset: n.Dot(pts[a]),
	}
}

// Знаковое расстояние от плоскости грани, > 0 - снаружи
func (f *hullFace) distance(p Vertex) float64 {
	return f.normal.Dot(p) - f.offset
}

func (f *hullFace) directedEdges() [3][2]int {
	return [3][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}}
}

func hullEpsilon(pts []Vertex) float64 {
	scale := 1.0
	for _, p := range pts {
		scale = math.Max(scale, math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z))))
	}
	return 1e-10 * scale
}

// Начальный тетраэдр: крайняя точка, самая дальняя от нее, самая дальняя
// от прямой и самая дальняя от плоскости.
func initialSimplex(pts []Vertex, eps float64) ([4]int, error) {
	var s [4]int

	for i, p := range pts {
		if p.X < pts[s[0]].X {
			s[0] = i
		}
	}
	p0 := pts[s[0]]

	best := -1.0
	for i, p := range pts {
		if d := p.Sub(p0).Norm(); d > best {
			best, s[1] = d, i
		}
	}
	if best <= eps {
		return s, fmt.Errorf("%w: all points coincide", ErrDegenerateGeometry)
	}

	dir, _ := pts[s[1]].Sub(p0).Normalize()
	best = -1.0
	for i, p := range pts {
		if d := p.Sub(p0).Cross(dir).Norm(); d > best {
			best, s[2] = d, i
		}
	}
	if best <= eps {
		return s, fmt.Errorf("%w: all points are collinear", ErrDegenerateGeometry)
	}

	n, _ := pts[s[1]].Sub(p0).Cross(pts[s[2]].Sub(p0)).Normalize()
	best = -1.0
	for i, p := range pts {
		if d := math.Abs(n.Dot(p.Sub(p0))); d > best {
			best, s[3] = d, i
		}
	}
	if best <= eps {
		return s, fmt.Errorf("%w: all points are coplanar", ErrDegenerateGeometry)
	}

	return s, nil
}

// ConvexHull строит триангулированную выпуклую оболочку (инкрементальный
// алгоритм). Грани ориентированы против часовой стрелки, если смотреть
// снаружи. Точки внутри оболочки или на ее гранях в результат не попадают.
func ConvexHull(pts []Vertex) ([]Face, error) {
	if len(pts) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 points, got %d", ErrDegenerateGeometry, len(pts))
	}

	eps := hullEpsilon(pts)
	s, err := initialSimplex(pts, eps)
	if err != nil {
		return nil, err
	}

	centroid := pts[s[0]].Add(pts[s[1]]).Add(pts[s[2]]).Add(pts[s[3]]).Scale(0.25)

	faces := make([]*hullFace, 0, 2*len(pts))
	for _, tri := range [4][3]int{
		{s[0], s[1], s[2]},
		{s[0], s[1], s[3]},
		{s[0], s[2], s[3]},
		{s[1], s[2], s[3]},
	} {
		f := newHullFace(pts, tri[0], tri[1], tri[2])
		// нормаль должна смотреть наружу, от центра тетраэдра
		if f.distance(centroid) > 0 {
			f = newHullFace(pts, tri[0], tri[2], tri[1])
		}
		faces = append(faces, f)
	}

	used := map[int]bool{s[0]: true, s[1]: true, s[2]: true, s[3]: true}

	for idx, p := range pts {
		if used[idx] {
			continue
		}

		var visible []*hullFace
		for _, f := range faces {
			if f.distance(p) > eps {
				visible = append(visible, f)
			}
		}
		// точка внутри текущей оболочки
		if len(visible) == 0 {
			continue
		}

		visibleEdges := make(map[[2]int]bool, 3*len(visible))
		for _, f := range visible {
			f.dead = true
			for _, e := range f.directedEdges() {
				visibleEdges[e] = true
			}
		}

		// горизонт - ребра видимых граней, обратное к которым не видно
		for _, f := range visible {
			for _, e := range f.directedEdges() {
				if !visibleEdges[[2]int{e[1], e[0]}] {
					faces = append(faces, newHullFace(pts, e[0], e[1], idx))
				}
			}
		}

		alive := faces[:0]
		for _, f := range faces {
			if !f.dead {
				alive = append(alive, f)
			}
		}
		faces = alive
	}

	ret := make([]Face, 0, len(faces))
	for _, f := range faces {
		ret = append(ret, Face{A: f.a, B: f.b, C: f.c})
	}
	return ret, nil
}

// EdgesOf возвращает неориентированные ребра треугольников без повторов,
// отсортированные по (A, B).
func EdgesOf(faces []Face) []Edge {
	set := make(map[Edge]struct{}, 3*len(faces)/2)
	for _, f := range faces {
		set[newEdge(f.A, f.B)] = struct{}{}
		set[newEdge(f.B, f.C)] = struct{}{}
		set[newEdge(f.C, f.A)] = struct{}{}
	}

	ret := make(edges, 0, len(set))
	for e := range set {
		ret = append(ret, e)
	}
	sort.Sort(edgesByIndex{ret})
	return ret
}

// HullEdges - оболочка и ее ребра за один вызов
func HullEdges(pts []Vertex) ([]Face, []Edge, error) {
	faces, err := ConvexHull(pts)
	if err != nil {
		return nil, nil, err
	}
	return faces, EdgesOf(faces), nil
}
