package main

import (
	"fmt"

	"github.com/0x0FACED/go-geodome/pkg/geodome"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func chart3DOpts(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Min: -1, Max: 1}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Min: -1, Max: 1}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z", Min: -1, Max: 1}),
		charts.WithGrid3DOpts(opts.Grid3D{BoxWidth: 100, BoxHeight: 100, BoxDepth: 100}),
	}
}

func chartTitle(d *geodome.Dome) string {
	return fmt.Sprintf("%s, класс %d, частота %d", d.Request.Polyhedron.Label(), d.Request.Class, d.Request.Frequency)
}

func point3D(v geodome.Vertex) opts.Chart3DData {
	return opts.Chart3DData{Value: []interface{}{v.X, v.Y, v.Z}}
}

// Преобразуем купол в два 3D графика: точки и ребра.
// Каждое ребро - отдельная серия из двух точек, иначе line3D соединит все подряд.
func domeToEcharts(d *geodome.Dome) (*charts.Scatter3D, *charts.Line3D) {
	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(chart3DOpts(chartTitle(d))...)

	base := make([]opts.Chart3DData, 0, d.Base)
	added := make([]opts.Chart3DData, 0, len(d.Points))
	for i, p := range d.Points {
		if i < d.Base {
			base = append(base, point3D(p))
		} else {
			added = append(added, point3D(p))
		}
	}

	scatter.AddSeries("Вершины", base,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: "orange",
		}),
	)
	scatter.AddSeries("Точки разбиения", added,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: "red",
		}),
	)

	lines := charts.NewLine3D()
	lines.SetGlobalOptions(chart3DOpts(fmt.Sprintf("Ребра: %d", len(d.Edges)))...)

	for _, e := range d.Edges {
		lines.AddSeries("Ребра", []opts.Chart3DData{
			point3D(d.Points[e.A]),
			point3D(d.Points[e.B]),
		}, charts.WithLineStyleOpts(opts.LineStyle{
			Color: "blue",
			Width: 2,
		}))
	}

	return scatter, lines
}
