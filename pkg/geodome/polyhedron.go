package geodome

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Polyhedron - базовый многогранник. Значение совпадает с числом граней.
type Polyhedron int

const (
	Tetrahedron Polyhedron = 4
	Octahedron  Polyhedron = 8
	Icosahedron Polyhedron = 20
)

type polyhedronInfo struct {
	name  string
	label string
}

// Таблица только для чтения, заполняется при старте процесса
var polyhedra = map[Polyhedron]polyhedronInfo{
	Tetrahedron: {name: "tetrahedron", label: "Tétraèdre"},
	Octahedron:  {name: "octahedron", label: "Octaèdre"},
	Icosahedron: {name: "icosahedron", label: "Icosaèdre"},
}

// Polyhedra возвращает поддерживаемые многогранники в порядке роста числа граней
func Polyhedra() []Polyhedron {
	return []Polyhedron{Tetrahedron, Octahedron, Icosahedron}
}

func (p Polyhedron) Valid() bool {
	_, ok := polyhedra[p]
	return ok
}

func (p Polyhedron) String() string {
	if info, ok := polyhedra[p]; ok {
		return info.name
	}
	return "polyhedron(" + strconv.Itoa(int(p)) + ")"
}

// Label - подпись для отображения в UI и отчете
func (p Polyhedron) Label() string {
	if info, ok := polyhedra[p]; ok {
		return info.label
	}
	return p.String()
}

// VertexCount - число вершин базового многогранника
func (p Polyhedron) VertexCount() int {
	switch p {
	case Tetrahedron:
		return 4
	case Octahedron:
		return 6
	case Icosahedron:
		return 12
	}
	return 0
}

// ParsePolyhedron принимает имя ("icosahedron") или число граней ("20")
func ParsePolyhedron(s string) (Polyhedron, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		p := Polyhedron(n)
		if !p.Valid() {
			return 0, fmt.Errorf("%w: unsupported polyhedron %q", ErrInvalidInput, s)
		}
		return p, nil
	}
	for p, info := range polyhedra {
		if info.name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unsupported polyhedron %q", ErrInvalidInput, s)
}

// Сырые вершины, до нормализации
func rawVertices(p Polyhedron) ([]Vertex, error) {
	switch p {
	case Tetrahedron:
		// противоположные углы куба, четное число минусов
		return []Vertex{
			{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
		}, nil
	case Octahedron:
		return []Vertex{
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{0, 0, 1}, {0, 0, -1},
		}, nil
	case Icosahedron:
		phi := (1 + math.Sqrt(5)) / 2
		// циклические перестановки (0, ±1, ±φ)
		return []Vertex{
			{0, 1, phi}, {0, -1, phi}, {0, 1, -phi}, {0, -1, -phi},
			{1, phi, 0}, {-1, phi, 0}, {1, -phi, 0}, {-1, -phi, 0},
			{phi, 0, 1}, {-phi, 0, 1}, {phi, 0, -1}, {-phi, 0, -1},
		}, nil
	}
	return nil, fmt.Errorf("%w: unsupported polyhedron %v", ErrInvalidInput, p)
}

// GenerateVertices возвращает вершины многогранника на единичной сфере.
// При apex == true все точки поворачиваются так, чтобы первая вершина
// оказалась в полюсе (0, 0, 1).
func GenerateVertices(p Polyhedron, apex bool) ([]Vertex, error) {
	verts, err := rawVertices(p)
	if err != nil {
		return nil, err
	}

	for i, v := range verts {
		// у базовых вершин норма никогда не нулевая
		verts[i], _ = v.Normalize()
	}

	if apex {
		AlignToPole(verts)
	}
	return verts, nil
}
