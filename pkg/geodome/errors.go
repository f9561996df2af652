package geodome

import "errors"

var (
	// Неподдерживаемый тип многогранника
	ErrInvalidInput = errors.New("geodome: invalid input")
	// Несовместимые параметры запроса (класс 2 с нечетной частотой и т.п.)
	ErrInvalidConfiguration = errors.New("geodome: invalid configuration")
	// Выпуклая оболочка не может быть построена (меньше 4 точек, все в одной плоскости)
	ErrDegenerateGeometry = errors.New("geodome: degenerate geometry")
)
