package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	matern "github.com/flywave/go-matern"
)

var (
	flgGridSize   int
	flgSmoothness float64
	flgVariance   string
	flgRange      string
	flgAngle      string
	flgRatio      string
	flgSeed       int64
	flgWorkers    int
	flgOutput     string
	flgHeatmap    string
	flgSize       string
	flgInterp     string
)

func main() {
	flag.IntVar(&flgGridSize, "n", 64, "grid resolution per axis")
	flag.Float64Var(&flgSmoothness, "smoothness", 1.5, "Matérn smoothness")
	flag.StringVar(&flgVariance, "variance", "0.5,3.0", "variance start,end")
	flag.StringVar(&flgRange, "range", "0.05,0.5", "correlation range start,end")
	flag.StringVar(&flgAngle, "angle", "-30,60", "anisotropy angle in degrees start,end")
	flag.StringVar(&flgRatio, "ratio", "1.5,3.0", "anisotropy ratio start,end")
	flag.Int64Var(&flgSeed, "seed", matern.DefaultSeed, "random seed")
	flag.IntVar(&flgWorkers, "workers", 0, "assembly workers, 0 = NumCPU")
	flag.StringVar(&flgOutput, "out", "nonstationary_anisotropic_data.tif", "GeoTIFF output path")
	flag.StringVar(&flgHeatmap, "png", "", "optional heatmap PNG path")
	flag.StringVar(&flgSize, "size", "", "optional output raster size WxH")
	flag.StringVar(&flgInterp, "interp", matern.BILINEAR, "resampling: bilinear or hyperbolic")
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	params := matern.FieldParams{
		GridSize:   flgGridSize,
		Smoothness: flgSmoothness,
		Workers:    flgWorkers,
	}

	var err error
	if params.Variance, err = parseRange(flgVariance); err != nil {
		return fmt.Errorf("variance: %w", err)
	}
	if params.Range, err = parseRange(flgRange); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if params.AngleDeg, err = parseRange(flgAngle); err != nil {
		return fmt.Errorf("angle: %w", err)
	}
	if params.Ratio, err = parseRange(flgRatio); err != nil {
		return fmt.Errorf("ratio: %w", err)
	}

	opts := matern.Options{
		Params:       params,
		Seed:         flgSeed,
		Output:       flgOutput,
		Heatmap:      flgHeatmap,
		Interpolator: &flgInterp,
	}

	if flgSize != "" {
		size, err := parseSize(flgSize)
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		opts.OutputSize = &size
	}

	log.Println("synthesis started",
		"GridSize", params.GridSize,
		"Smoothness", params.Smoothness,
		"Seed", flgSeed)

	start := time.Now()
	gen := matern.NewGenerator(opts)
	if err := gen.Process(); err != nil {
		return err
	}

	log.Println("synthesis finished",
		"Elapsed", time.Since(start),
		"Output", flgOutput)

	return nil
}

func parseRange(s string) (matern.ParamRange, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return matern.ParamRange{}, fmt.Errorf("expected start,end, got %q", s)
	}
	var r matern.ParamRange
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return matern.ParamRange{}, err
		}
		r[i] = v
	}
	return r, nil
}

func parseSize(s string) ([2]int, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("expected WxH, got %q", s)
	}
	var size [2]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return [2]int{}, err
		}
		if v < 1 {
			return [2]int{}, fmt.Errorf("size must be >= 1, got %d", v)
		}
		size[i] = v
	}
	return size, nil
}
