package matern

import (
	"image"
	"math/rand"

	"github.com/flywave/go-cog"
	"github.com/flywave/go-geom"
	"github.com/flywave/go-geom/general"
)

// Options configures a Generator. Only Params is required: an empty
// Output skips the raster, an empty Heatmap skips the rendering.
type Options struct {
	Params FieldParams

	// Seed seeds the sampler; zero selects DefaultSeed.
	Seed int64

	// Output is the GeoTIFF destination path.
	Output string

	// Heatmap is the PNG destination path.
	Heatmap string

	// OutputSize resamples the raster to width×height instead of
	// emitting one pixel per grid point.
	OutputSize *[2]int

	// Interpolator selects the resampling scheme, BILINEAR by default.
	Interpolator *string
}

// Generator runs the synthesis pipeline and hands the result to the
// raster and rendering collaborators. The core synthesis never depends
// on them: Field exposes the plain numeric result.
type Generator struct {
	params       FieldParams
	seed         int64
	output       string
	heatmap      string
	outputSize   *[2]int
	interpolator string
	field        *Field
}

func NewGenerator(opts Options) *Generator {
	gen := &Generator{
		params:     opts.Params,
		seed:       opts.Seed,
		output:     opts.Output,
		heatmap:    opts.Heatmap,
		outputSize: opts.OutputSize,
	}

	if gen.seed == 0 {
		gen.seed = DefaultSeed
	}

	if opts.Interpolator == nil {
		gen.interpolator = BILINEAR
	} else {
		gen.interpolator = *opts.Interpolator
	}

	return gen
}

// Field returns the last synthesized realization, nil before Process.
func (p *Generator) Field() *Field {
	return p.field
}

func (p *Generator) Process() error {
	rng := rand.New(rand.NewSource(p.seed))

	field, err := Synthesize(p.params, rng)
	if err != nil {
		return err
	}
	p.field = field

	if p.output != "" {
		if err := p.writeRaster(); err != nil {
			return err
		}
	}

	if p.heatmap != "" {
		if err := writeHeatmap(p.heatmap, field.Grid); err != nil {
			return err
		}
	}

	return nil
}

func (p *Generator) writeRaster() error {
	grid := p.field.Grid
	tiledata, si, bbox, srs := grid.TileData()

	if p.outputSize != nil {
		width, height := p.outputSize[0], p.outputSize[1]

		var interpolator Interpolator
		if p.interpolator == HYPERBOLIC {
			interpolator = &HyperbolicInterpolator{}
		} else {
			interpolator = &BilinearInterpolator{}
		}

		values := grid.Resample(width, height, interpolator)
		tiledata = flipRows(values, width, height)
		si = [2]uint32{uint32(width), uint32(height)}
	}

	rect := image.Rect(0, 0, int(si[0]), int(si[1]))

	src := cog.NewSource(tiledata, &rect, cog.CTLZW)

	return cog.WriteTile(p.output, src, bbox, srs, si, nil)
}

// flipRows reorders a south-up row-major lattice into the north-up order
// rasters expect.
func flipRows(values []float64, width, height int) []float64 {
	out := make([]float64, len(values))
	for r := 0; r < height; r++ {
		copy(out[r*width:(r+1)*width], values[(height-1-r)*width:(height-r)*width])
	}
	return out
}

// FeatureCollection exports the sampled points as (x, y, value) point
// features, nil before Process.
func (p *Generator) FeatureCollection() *geom.FeatureCollection {
	if p.field == nil {
		return nil
	}
	fc := &geom.FeatureCollection{}
	for i := range p.field.Grid.Coordinates {
		c := p.field.Grid.Coordinates[i]
		fc.Features = append(fc.Features, &geom.Feature{
			Geometry: general.NewPoint([]float64{c[0], c[1], c[2]}),
		})
	}
	return fc
}
