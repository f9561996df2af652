package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/0x0FACED/go-geodome/pkg/geodome"
	"github.com/0x0FACED/go-geodome/pkg/logger"
	"github.com/0x0FACED/go-geodome/pkg/render"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dome", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		// Flags
		poly      = fs.String("poly", "icosahedron", "Polyhedron: tetrahedron, octahedron, icosahedron (or 4, 8, 20)")
		frequency = fs.Int("freq", 1, "Subdivision frequency")
		class     = fs.Int("class", 1, "Geodesic class (1 or 2, class 2 requires even frequency)")
		apex      = fs.Bool("apex", true, "Rotate the first vertex to the pole")
		output    = fs.String("out", "", "PNG destination (optional)")
		size      = fs.Int("size", 800, "PNG size in pixels")
		verbose   = fs.Bool("v", false, "Verbose build log on stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := geodome.ParsePolyhedron(*poly)
	if err != nil {
		return err
	}
	req := geodome.Request{Polyhedron: p, Frequency: *frequency, Class: *class}

	level := zapcore.WarnLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	zl := logger.New(logger.WithLevel(level), logger.WithConsole(stderr))
	defer zl.Sync()

	opts := geodome.DefaultOptions()
	opts.Apex = *apex
	builder := geodome.NewBuilder(opts, zl)
	// отчет по базовым вершинам печатается до разбиения
	builder.Report = stdout

	// спиннер только в терминале и без подробного лога
	var s *spinner
	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !*verbose {
		s = newSpinner()
		s.start("Building dome...")
	}
	start := time.Now()
	dome, err := builder.CreateDome(req)
	if s != nil {
		s.stop()
	}
	if err != nil {
		return fmt.Errorf("unable to build dome: %w", err)
	}

	fmt.Fprintf(stdout, "\nGenerated in: \x1b[92m%.3fs\x1b[39m\n", time.Since(start).Seconds())
	fmt.Fprintf(stdout, "Total number of \x1b[92m%d \x1b[39mpoints, \x1b[92m%d \x1b[39medges, \x1b[92m%d \x1b[39mfaces\n",
		len(dome.Points), len(dome.Edges), len(dome.Faces))

	if *output == "" {
		return nil
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("unable to create destination: %w", err)
	}
	defer f.Close()

	ro := render.DefaultOptions()
	ro.Size = *size
	if err := render.PNG(f, dome, ro); err != nil {
		return fmt.Errorf("unable to render dome: %w", err)
	}
	fmt.Fprintf(stdout, "Saved as: %s \x1b[92m✓\x1b[39m\n", filepath.Base(*output))
	return nil
}
