package geodome

import (
	"math"
)

// Точка в R³. Внутри купола все точки лежат на единичной сфере.
type Vertex struct {
	X float64
	Y float64
	Z float64
}

// Полюс, куда поворачивается первая вершина при выравнивании
var Pole = Vertex{0, 0, 1}

func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vertex) Scale(k float64) Vertex {
	return Vertex{v.X * k, v.Y * k, v.Z * k}
}

func (v Vertex) Dot(o Vertex) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vertex) Cross(o Vertex) Vertex {
	return Vertex{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vertex) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize делит вектор на его длину. ok == false для (почти) нулевого
// вектора, тогда v возвращается без изменений.
func (v Vertex) Normalize() (Vertex, bool) {
	n := v.Norm()
	if n < normEpsilon {
		return v, false
	}
	return v.Scale(1 / n), true
}

const normEpsilon = 1e-15

// Треугольник - тройка индексов в облаке точек
type Face struct {
	A, B, C int
}

// Ребро - неупорядоченная пара индексов, всегда A < B
type Edge struct {
	A, B int
}

func newEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{A: i, B: j}
}

type edges []Edge

func (s edges) Len() int      { return len(s) }
func (s edges) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

type edgesByIndex struct{ edges }

func (s edgesByIndex) Less(i, j int) bool {
	if s.edges[i].A != s.edges[j].A {
		return s.edges[i].A < s.edges[j].A
	}
	return s.edges[i].B < s.edges[j].B
}
