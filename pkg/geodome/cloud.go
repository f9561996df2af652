package geodome

import "math"

// Допуск сравнения точек, как numpy.allclose:
// |a - b| <= Abs + Rel*|b| по каждой координате
type Tolerance struct {
	Rel float64
	Abs float64
}

var DefaultTolerance = Tolerance{Rel: 1e-5, Abs: 1e-8}

func (t Tolerance) close(a, b Vertex) bool {
	return math.Abs(a.X-b.X) <= t.Abs+t.Rel*math.Abs(b.X) &&
		math.Abs(a.Y-b.Y) <= t.Abs+t.Rel*math.Abs(b.Y) &&
		math.Abs(a.Z-b.Z) <= t.Abs+t.Rel*math.Abs(b.Z)
}

type cellKey [3]int64

// PointCloud - упорядоченный набор точек без дубликатов (в пределах допуска).
// Только растет. Поиск соседей идет через сетку с ребром ячейки не меньше
// радиуса допуска, поэтому достаточно проверить 27 соседних ячеек.
type PointCloud struct {
	points   []Vertex
	tol      Tolerance
	cellSize float64
	grid     map[cellKey][]int
}

// NewPointCloud создает пустое облако. bound - максимальный модуль
// координаты, для единичной сферы 1.
func NewPointCloud(tol Tolerance, bound float64) *PointCloud {
	bound = math.Max(bound, 1)
	cell := 2 * (tol.Abs + tol.Rel*bound)
	if cell <= 0 {
		cell = 1e-9
	}
	return &PointCloud{
		tol:      tol,
		cellSize: cell,
		grid:     make(map[cellKey][]int),
	}
}

func (c *PointCloud) key(p Vertex) cellKey {
	return cellKey{
		int64(math.Floor(p.X / c.cellSize)),
		int64(math.Floor(p.Y / c.cellSize)),
		int64(math.Floor(p.Z / c.cellSize)),
	}
}

// Find возвращает индекс точки, совпадающей с p в пределах допуска
func (c *PointCloud) Find(p Vertex) (int, bool) {
	k := c.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, idx := range c.grid[cellKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
					if c.tol.close(p, c.points[idx]) {
						return idx, true
					}
				}
			}
		}
	}
	return -1, false
}

// Append добавляет p, если в облаке нет близкой точки.
// Возвращает индекс (нового или найденного) и признак добавления.
func (c *PointCloud) Append(p Vertex) (int, bool) {
	if idx, ok := c.Find(p); ok {
		return idx, false
	}
	idx := len(c.points)
	c.points = append(c.points, p)
	k := c.key(p)
	c.grid[k] = append(c.grid[k], idx)
	return idx, true
}

func (c *PointCloud) Len() int {
	return len(c.points)
}

func (c *PointCloud) At(i int) Vertex {
	return c.points[i]
}

// Points возвращает копию точек в порядке добавления
func (c *PointCloud) Points() []Vertex {
	ret := make([]Vertex, len(c.points))
	copy(ret, c.points)
	return ret
}
