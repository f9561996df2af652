package geodome

import "iter"

// Узел барицентрической сетки. K = freq - I - J и не хранится.
type GridKey struct {
	I, J int
}

// SubdivideTriangle перебирает все узлы (i, j, k), i+j+k = freq, и отдает
// точку wA·A + wB·B + wC·C, спроецированную на единичную сферу.
// Узлов (freq+1)(freq+2)/2, включая три исходные вершины.
//
// Последовательность ленивая и может перебираться повторно.
// При freq == 0 отдается единственная точка A. Точка с нулевой нормой
// (например, A и B диаметрально противоположны) отдается без нормализации.
func SubdivideTriangle(a, b, c Vertex, freq int) iter.Seq2[GridKey, Vertex] {
	return func(yield func(GridKey, Vertex) bool) {
		for i := 0; i <= freq; i++ {
			for j := 0; j <= freq-i; j++ {
				k := freq - i - j

				wA, wB, wC := 1.0, 0.0, 0.0
				if freq != 0 {
					f := float64(freq)
					wA, wB, wC = float64(i)/f, float64(j)/f, float64(k)/f
				}

				p := a.Scale(wA).Add(b.Scale(wB)).Add(c.Scale(wC))
				p, _ = p.Normalize()

				if !yield(GridKey{I: i, J: j}, p) {
					return
				}
			}
		}
	}
}

// SampleCount - число узлов сетки порядка freq
func SampleCount(freq int) int {
	if freq < 0 {
		return 0
	}
	return (freq + 1) * (freq + 2) / 2
}
