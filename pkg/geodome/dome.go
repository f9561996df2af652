package geodome

import (
	"fmt"
	"io"

	"github.com/0x0FACED/go-geodome/pkg/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Параметры построения купола
type Request struct {
	Polyhedron Polyhedron
	Frequency  int
	Class      int
}

// Validate проверяет запрос целиком и возвращает все нарушения сразу.
// Каждое из них можно сравнить через errors.Is.
func (r Request) Validate() error {
	var err error
	if !r.Polyhedron.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: unsupported polyhedron %v", ErrInvalidInput, r.Polyhedron))
	}
	if r.Frequency < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: frequency must be >= 1, got %d", ErrInvalidConfiguration, r.Frequency))
	}
	switch r.Class {
	case 1:
	case 2:
		if r.Frequency%2 != 0 {
			err = multierr.Append(err, fmt.Errorf("%w: class 2 requires even frequency, got %d", ErrInvalidConfiguration, r.Frequency))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("%w: class must be 1 or 2, got %d", ErrInvalidConfiguration, r.Class))
	}
	return err
}

type Options struct {
	// Поворот первой вершины в полюс
	Apex      bool
	Tolerance Tolerance
}

func DefaultOptions() Options {
	return Options{
		Apex:      true,
		Tolerance: DefaultTolerance,
	}
}

// Builder собирает облако точек купола. Один Builder можно использовать
// из нескольких горутин: каждое построение работает со своим облаком.
type Builder struct {
	Options Options
	Logger  *logger.ZapLogger
	// Если задан, отчет по базовым вершинам пишется сюда до разбиения
	Report io.Writer
}

func NewBuilder(options Options, log *logger.ZapLogger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{Options: options, Logger: log}
}

// Build строит облако: базовые вершины, их оболочка, разбиение каждой
// грани и добавление новых точек без дубликатов. При ошибке облако не
// возвращается.
func (b *Builder) Build(req Request) (*PointCloud, error) {
	if err := req.Validate(); err != nil {
		b.Logger.Error("[d] Некорректный запрос", zap.Error(err))
		return nil, err
	}

	verts, err := GenerateVertices(req.Polyhedron, b.Options.Apex)
	if err != nil {
		return nil, err
	}

	if err := b.report(req, verts); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	faces, err := ConvexHull(verts)
	if err != nil {
		return nil, fmt.Errorf("base hull: %w", err)
	}
	b.Logger.Debug("[d] Оболочка базового многогранника", zap.Int("faces", len(faces)))

	cloud := NewPointCloud(b.Options.Tolerance, 1)
	for _, v := range verts {
		cloud.Append(v)
	}

	for _, f := range faces {
		for _, p := range SubdivideTriangle(verts[f.A], verts[f.B], verts[f.C], req.Frequency) {
			cloud.Append(p)
		}
	}

	b.Logger.Info("[d] Облако точек построено", zap.Int("base", len(verts)), zap.Int("points", cloud.Len()))
	return cloud, nil
}

func (b *Builder) report(req Request, verts []Vertex) error {
	header := ReportHeader(req)
	lines := ReportLines(verts)

	b.Logger.Info("[d] " + header)
	for _, line := range lines {
		b.Logger.Info("[d]" + line)
	}

	if b.Report == nil {
		return nil
	}
	if _, err := fmt.Fprintln(b.Report, header); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(b.Report, line); err != nil {
			return err
		}
	}
	return nil
}

// Dome - готовый результат для отрисовки
type Dome struct {
	Request Request
	// число базовых вершин, они идут первыми в Points
	Base   int
	Points []Vertex
	Faces  []Face
	Edges  []Edge
}

// CreateDome - облако точек и ребра его выпуклой оболочки
func (b *Builder) CreateDome(req Request) (*Dome, error) {
	cloud, err := b.Build(req)
	if err != nil {
		return nil, err
	}

	points := cloud.Points()
	faces, edges, err := HullEdges(points)
	if err != nil {
		b.Logger.Error("[d] Не удалось построить оболочку", zap.Error(err))
		return nil, fmt.Errorf("dome hull: %w", err)
	}
	b.Logger.Info("[d] Ребра извлечены", zap.Int("faces", len(faces)), zap.Int("edges", len(edges)))

	return &Dome{
		Request: req,
		Base:    req.Polyhedron.VertexCount(),
		Points:  points,
		Faces:   faces,
		Edges:   edges,
	}, nil
}

// CreateDome строит купол с настройками по умолчанию
func CreateDome(req Request, log *logger.ZapLogger) (*Dome, error) {
	return NewBuilder(DefaultOptions(), log).CreateDome(req)
}
