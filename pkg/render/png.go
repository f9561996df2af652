// Package render рисует купол в статичное изображение: ортографическая
// проекция, опорная сфера, точки и ребра.
package render

import (
	"image/color"
	"io"
	"math"

	"github.com/0x0FACED/go-geodome/pkg/geodome"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

type Options struct {
	Size int
	// Поворот камеры вокруг оси z и наклон, в радианах
	Azimuth   float64
	Elevation float64
	LineWidth float64
	PointSize float64
	// Параллели и меридианы опорной сферы
	Graticule bool
}

func DefaultOptions() Options {
	return Options{
		Size:      800,
		Azimuth:   math.Pi / 6,
		Elevation: math.Pi / 8,
		LineWidth: 1.5,
		PointSize: 3,
		Graticule: true,
	}
}

var (
	background = colornames.White
	sphereLine = colornames.Lightgray
	edgeFront  = colornames.Blue
	edgeBack   = color.RGBA{R: 0, G: 0, B: 255, A: 60}
	pointFront = colornames.Red
	pointBack  = color.RGBA{R: 255, G: 0, B: 0, A: 60}
)

// Камера: поворот вокруг z, потом наклон вокруг x. Экранные оси - x и z,
// глубина - y (больше - ближе к зрителю).
type camera struct {
	rot    geodome.Matrix3
	center float64
	radius float64
}

func newCamera(o Options) camera {
	az := geodome.RotationMatrix(geodome.Vertex{X: 0, Y: 0, Z: 1}, o.Azimuth)
	el := geodome.RotationMatrix(geodome.Vertex{X: 1, Y: 0, Z: 0}, o.Elevation)

	var m geodome.Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				m[i][j] += el[i][k] * az[k][j]
			}
		}
	}

	size := float64(o.Size)
	return camera{rot: m, center: size / 2, radius: size * 0.45}
}

func (c camera) project(v geodome.Vertex) (x, y, depth float64) {
	p := c.rot.Apply(v)
	return c.center + p.X*c.radius, c.center - p.Z*c.radius, -p.Y
}

func PNG(w io.Writer, d *geodome.Dome, o Options) error {
	return Draw(d, o).EncodePNG(w)
}

// Draw рисует купол и возвращает контекст gg для дальнейшей доработки
func Draw(d *geodome.Dome, o Options) *gg.Context {
	if o.Size <= 0 {
		o.Size = DefaultOptions().Size
	}
	cam := newCamera(o)

	ctx := gg.NewContext(o.Size, o.Size)
	ctx.SetColor(background)
	ctx.Clear()

	ctx.SetColor(sphereLine)
	ctx.SetLineWidth(1)
	ctx.DrawCircle(cam.center, cam.center, cam.radius)
	ctx.Stroke()

	if o.Graticule {
		drawGraticule(ctx, cam)
	}

	// сначала задняя сторона, потом передняя
	for _, front := range []bool{false, true} {
		ctx.SetLineWidth(o.LineWidth)
		for _, e := range d.Edges {
			a, b := d.Points[e.A], d.Points[e.B]
			x1, y1, z1 := cam.project(a)
			x2, y2, z2 := cam.project(b)
			if (z1+z2 >= 0) != front {
				continue
			}
			if front {
				ctx.SetColor(edgeFront)
			} else {
				ctx.SetColor(edgeBack)
			}
			ctx.DrawLine(x1, y1, x2, y2)
			ctx.Stroke()
		}

		for _, p := range d.Points {
			x, y, z := cam.project(p)
			if (z >= 0) != front {
				continue
			}
			if front {
				ctx.SetColor(pointFront)
			} else {
				ctx.SetColor(pointBack)
			}
			ctx.DrawPoint(x, y, o.PointSize)
			ctx.Fill()
		}
	}

	return ctx
}

func drawGraticule(ctx *gg.Context, cam camera) {
	const (
		rings    = 12
		segments = 48
	)

	line := func(at func(t float64) geodome.Vertex) {
		for s := 0; s < segments; s++ {
			t1 := float64(s) / segments
			t2 := float64(s+1) / segments
			x1, y1, z1 := cam.project(at(t1))
			x2, y2, z2 := cam.project(at(t2))
			// только видимая половина
			if z1+z2 < 0 {
				continue
			}
			ctx.DrawLine(x1, y1, x2, y2)
		}
	}

	ctx.SetColor(sphereLine)
	ctx.SetLineWidth(0.5)

	for r := 1; r < rings; r++ {
		theta := math.Pi * float64(r) / rings
		line(func(t float64) geodome.Vertex {
			phi := 2 * math.Pi * t
			return geodome.Vertex{X: math.Sin(theta) * math.Cos(phi), Y: math.Sin(theta) * math.Sin(phi), Z: math.Cos(theta)}
		})
	}
	for m := 0; m < rings; m++ {
		phi := 2 * math.Pi * float64(m) / rings
		line(func(t float64) geodome.Vertex {
			theta := math.Pi * t
			return geodome.Vertex{X: math.Sin(theta) * math.Cos(phi), Y: math.Sin(theta) * math.Sin(phi), Z: math.Cos(theta)}
		})
	}
	ctx.Stroke()
}
