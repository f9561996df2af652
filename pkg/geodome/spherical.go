package geodome

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Сферические координаты для диагностики
type Spherical struct {
	Azimuth float64 // Φ, [0, 2π)
	Polar   float64 // θ, [0, π]
	Radius  float64
}

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToSpherical переводит точку единичной сферы в (Φ, θ, r).
// Радиус всегда 1.0: входные точки уже нормализованы. Настоящая длина
// считается через Vertex.Norm.
func ToSpherical(v Vertex) Spherical {
	z := clamp(v.Z, -1, 1)

	polar := math.Acos(z)
	azimuth := math.Atan2(v.Y, v.X)
	if azimuth < 0 {
		azimuth += 2 * math.Pi
	}
	return Spherical{Azimuth: azimuth, Polar: polar, Radius: 1.0}
}

// ReportHeader - первая строка диагностического отчета
func ReportHeader(req Request) string {
	return fmt.Sprintf("Polyhedron: %s, Frequency: %d, Class: %d", req.Polyhedron.Label(), req.Frequency, req.Class)
}

// ReportLines - по строке на каждую базовую вершину, нумерация с 1
func ReportLines(verts []Vertex) []string {
	lines := make([]string, 0, len(verts))
	for i, v := range verts {
		s := ToSpherical(v)
		lines = append(lines, fmt.Sprintf("  Vertex %2d: Φ=%.8f, θ=%.8f, r=%.1f", i+1, s.Azimuth, s.Polar, s.Radius))
	}
	return lines
}
