package main

import (
	"flag"
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/0x0FACED/go-geodome/pkg/geodome"
	"github.com/0x0FACED/go-geodome/pkg/logger"
	"github.com/0x0FACED/go-geodome/pkg/render"
	"github.com/0x0FACED/go-geodome/static"

	"go.uber.org/zap"
)

var addr = flag.String("addr", ":8080", "Адрес HTTP сервера")

// Совпадает с max у поля freq в форме. Оболочка квадратична по числу точек.
const maxFrequency = 16

// Параметры из формы. На GET - значения по умолчанию.
func parseRequest(r *http.Request) (geodome.Request, bool, error) {
	req := geodome.Request{Polyhedron: geodome.Tetrahedron, Frequency: 1, Class: 1}
	apex := true

	if err := r.ParseForm(); err != nil {
		return req, apex, err
	}

	var err error
	if v := r.FormValue("poly"); v != "" {
		if req.Polyhedron, err = geodome.ParsePolyhedron(v); err != nil {
			return req, apex, err
		}
	}
	if v := r.FormValue("freq"); v != "" {
		if req.Frequency, err = strconv.Atoi(v); err != nil {
			return req, apex, fmt.Errorf("%w: frequency %q", geodome.ErrInvalidConfiguration, v)
		}
		if req.Frequency > maxFrequency {
			return req, apex, fmt.Errorf("%w: frequency must be <= %d, got %d", geodome.ErrInvalidConfiguration, maxFrequency, req.Frequency)
		}
	}
	if v := r.FormValue("class"); v != "" {
		if req.Class, err = strconv.Atoi(v); err != nil {
			return req, apex, fmt.Errorf("%w: class %q", geodome.ErrInvalidConfiguration, v)
		}
	}
	// чекбокс не приходит, если снят
	if r.Method == http.MethodPost {
		apex = r.FormValue("apex") == "true"
	} else if v := r.FormValue("apex"); v != "" {
		apex = v == "true"
	}

	return req, apex, nil
}

func buildDome(r *http.Request, log *logger.ZapLogger) (*geodome.Dome, error) {
	req, apex, err := parseRequest(r)
	if err != nil {
		log.Error("[app] Некорректные параметры формы", zap.Error(err))
		return nil, err
	}

	options := geodome.DefaultOptions()
	options.Apex = apex

	log.Info("[app] Запрос на построение",
		zap.Stringer("poly", req.Polyhedron),
		zap.Int("freq", req.Frequency),
		zap.Int("class", req.Class),
		zap.Bool("apex", apex),
	)
	return geodome.NewBuilder(options, log).CreateDome(req)
}

// http обработчик страницы с куполом и формой для ввода данных
func domeHandler(w http.ResponseWriter, r *http.Request) {
	log := logger.New()
	defer log.ClearLogs()

	dome, err := buildDome(r, log)

	fmt.Fprintln(w, static.Part1)

	if err != nil {
		// вместо модального окна - сообщение под формой
		fmt.Fprintf(w, "<p class=\"error\">%s</p>\n", html.EscapeString(err.Error()))
	} else {
		points, edges := domeToEcharts(dome)
		if err := points.Render(w); err != nil {
			log.Error("[app] Ошибка рендеринга точек", zap.Error(err))
		}
		if err := edges.Render(w); err != nil {
			log.Error("[app] Ошибка рендеринга ребер", zap.Error(err))
		}
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Part3)
}

// Тот же купол картинкой: /dome.png?poly=20&freq=3&class=1
func pngHandler(w http.ResponseWriter, r *http.Request) {
	log := logger.New()

	dome, err := buildDome(r, log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, dome, render.DefaultOptions()); err != nil {
		log.Error("[app] Ошибка рендеринга PNG", zap.Error(err))
	}
}

func main() {
	flag.Parse()

	http.HandleFunc("/", domeHandler)
	http.HandleFunc("/dome.png", pngHandler)
	fmt.Printf("Сервер запущен на http://localhost%s\n", *addr)
	err := http.ListenAndServe(*addr, nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
