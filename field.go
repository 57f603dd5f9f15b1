package matern

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultNugget is added to the covariance diagonal before
	// factorization to absorb floating-point error.
	DefaultNugget = 1e-6

	// DefaultSeed seeds the sampler when the caller passes no generator.
	DefaultSeed = 42
)

// FieldParams configures one field realization. Each ParamRange varies
// linearly with the x-coordinate; equal endpoints keep that parameter
// stationary. The covariance matrix takes O(GridSize⁴) memory, so the
// grid size bounds the feasible problem (64 ⇒ a 4096×4096 matrix).
type FieldParams struct {
	GridSize   int
	Smoothness float64
	Variance   ParamRange
	Range      ParamRange
	AngleDeg   ParamRange
	Ratio      ParamRange

	// Nugget overrides DefaultNugget when non-zero.
	Nugget float64

	// Workers bounds the assembly worker pool; zero means NumCPU.
	Workers int
}

func (p FieldParams) validate() error {
	if p.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d, must be >= 1", ErrInvalidParameter, p.GridSize)
	}
	if p.Smoothness <= 0 {
		return fmt.Errorf("%w: smoothness %v, must be > 0", ErrInvalidParameter, p.Smoothness)
	}
	if !p.Variance.positive() {
		return fmt.Errorf("%w: variance range %v, must be > 0", ErrInvalidParameter, p.Variance)
	}
	if !p.Range.positive() {
		return fmt.Errorf("%w: range %v, must be > 0", ErrInvalidParameter, p.Range)
	}
	if !p.Ratio.positive() {
		return fmt.Errorf("%w: anisotropy ratio range %v, must be > 0", ErrInvalidParameter, p.Ratio)
	}
	return nil
}

func (p FieldParams) nugget() float64 {
	if p.Nugget != 0 {
		return p.Nugget
	}
	return DefaultNugget
}

func (p FieldParams) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

// paramFields holds the per-point local parameters, each a pure function
// of the point's x-coordinate.
type paramFields struct {
	variance   []float64
	rangeParam []float64
	angle      []float64
	ratio      []float64
}

func newParamFields(grid *Grid, p FieldParams) *paramFields {
	n := grid.Count
	f := &paramFields{
		variance:   make([]float64, n),
		rangeParam: make([]float64, n),
		angle:      make([]float64, n),
		ratio:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		x := grid.Coordinates[i][0]
		f.variance[i] = p.Variance.At(x)
		f.rangeParam[i] = p.Range.At(x)
		f.angle[i] = DegToRad(p.AngleDeg.At(x))
		f.ratio[i] = p.Ratio.At(x)
	}
	return f
}

// pairCovariance blends the local parameters of points i and j and
// evaluates the kernel at their anisotropic distance. The variance is
// combined by geometric mean so both scales enter symmetrically and
// positivity is preserved; the other parameters by arithmetic mean.
func (f *paramFields) pairCovariance(pi, pj vec2d.T, i, j int, smoothness float64) float64 {
	localVariance := math.Sqrt(f.variance[i] * f.variance[j])
	localRange := (f.rangeParam[i] + f.rangeParam[j]) / 2
	localAngle := (f.angle[i] + f.angle[j]) / 2
	localRatio := (f.ratio[i] + f.ratio[j]) / 2

	m := AnisotropyMatrix(localAngle, localRatio)
	delta := vec2d.Sub(&pi, &pj)
	h := AnisotropicDistance(delta, &m)

	return covariance(h, localVariance, localRange, smoothness)
}

// CovarianceMatrix assembles the N×N pairwise covariance matrix for the
// grid induced by params, without the nugget: the diagonal equals the
// local variance at each point exactly.
func CovarianceMatrix(params FieldParams) (*mat.SymDense, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return covarianceMatrix(UnitGrid(params.GridSize), params), nil
}

func covarianceMatrix(grid *Grid, params FieldParams) *mat.SymDense {
	n := grid.Count
	fields := newParamFields(grid, params)
	cov := mat.NewSymDense(n, nil)

	// Pairs are independent and each worker owns whole rows of the upper
	// triangle, so writes land in disjoint cells.
	rows := make(chan int)
	var g errgroup.Group
	for w := 0; w < params.workers(); w++ {
		g.Go(func() error {
			for i := range rows {
				pi := grid.Point(i)
				for j := i; j < n; j++ {
					pj := grid.Point(j)
					cov.SetSym(i, j, fields.pairCovariance(pi, pj, i, j, params.Smoothness))
				}
			}
			return nil
		})
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	_ = g.Wait()

	return cov
}

// Field is one realization of the random field over its grid.
type Field struct {
	Grid   *Grid
	Values []float64
}

// Synthesize draws one realization: it assembles the covariance matrix,
// regularizes the diagonal with the nugget, factorizes, and multiplies
// the lower Cholesky factor by independent standard-normal draws from
// rng. A nil rng falls back to a generator seeded with DefaultSeed; pass
// an explicit one for isolated, reproducible runs. On any failure no
// partial field is returned.
func Synthesize(params FieldParams, rng *rand.Rand) (*Field, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}

	grid := UnitGrid(params.GridSize)
	cov := covarianceMatrix(grid, params)

	n := grid.Count
	for i := 0; i < n; i++ {
		cov.SetSym(i, i, cov.At(i, i)+params.nugget())
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, fmt.Errorf("%w: grid size %d, nugget %g", ErrNotPositiveDefinite, params.GridSize, params.nugget())
	}
	var lower mat.TriDense
	chol.LTo(&lower)

	z := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		z.SetVec(i, rng.NormFloat64())
	}
	var y mat.VecDense
	y.MulVec(&lower, z)

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = y.AtVec(i)
	}
	grid.SetValues(values)

	return &Field{Grid: grid, Values: values}, nil
}
