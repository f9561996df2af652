package geodome

import "math"

// Матрица 3x3, по строкам
type Matrix3 [3][3]float64

func (m Matrix3) Apply(v Vertex) Vertex {
	return Vertex{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// RotationMatrix строит матрицу поворота на angle вокруг оси axis
// (формула Родрига). Ось должна быть единичной.
func RotationMatrix(axis Vertex, angle float64) Matrix3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	ux, uy, uz := axis.X, axis.Y, axis.Z

	return Matrix3{
		{c + ux*ux*t, ux*uy*t - uz*s, ux*uz*t + uy*s},
		{uy*ux*t + uz*s, c + uy*uy*t, uy*uz*t - ux*s},
		{uz*ux*t - uy*s, uz*uy*t + ux*s, c + uz*uz*t},
	}
}

// AlignToPole жестко поворачивает все точки так, чтобы verts[0] перешла в
// полюс. Возвращает false, если поворот не нужен: пустой срез или первая
// вершина уже в полюсе. Для вершины в южном полюсе ось вращения не
// определена (нулевое векторное произведение), тогда делается пол-оборота
// вокруг оси x.
func AlignToPole(verts []Vertex) bool {
	if len(verts) == 0 {
		return false
	}

	first := verts[0]
	var rot Matrix3
	if axis, ok := first.Cross(Pole).Normalize(); ok {
		cos := first.Dot(Pole)
		// защита от выхода за [-1, 1] после нормализации
		rot = RotationMatrix(axis, math.Acos(clamp(cos, -1, 1)))
	} else if first.Z > 0 {
		return false
	} else {
		rot = RotationMatrix(Vertex{1, 0, 0}, math.Pi)
	}

	for i, v := range verts {
		verts[i] = rot.Apply(v)
	}
	// убираем шум последних битов
	verts[0] = Pole
	return true
}
