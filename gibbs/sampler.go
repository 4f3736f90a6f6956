package gibbs

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilModel indicates a Sampler was constructed without a model.
	ErrNilModel = errors.New("gibbs: nil conditional model")
	// ErrNilBatch indicates a nil probability or destination batch.
	ErrNilBatch = errors.New("gibbs: nil batch")
	// ErrDimensionMismatch indicates dst and probs shapes disagree, or a
	// visible batch whose column count differs from the model's site count.
	ErrDimensionMismatch = errors.New("gibbs: dimension mismatch")
	// ErrBadStepCount indicates a negative Gibbs step count.
	ErrBadStepCount = errors.New("gibbs: step count must be non-negative")
	// ErrRowOutOfRange indicates a chain index outside the visible batch.
	ErrRowOutOfRange = errors.New("gibbs: chain row out of range")
)

// ConditionalModel is the slice of the generative sub-model the sampler
// needs: conditional distributions, the model's own stepping logic, and
// access to the visible-configuration batch it holds. The amplitude-role
// sub-model of a composite wavefunction satisfies this; the phase model is
// never consulted because the sampling target |ψ|² does not depend on it.
type ConditionalModel interface {
	// ProbHiddenGivenVisible returns p(h=1|v) for each entry of the batch.
	ProbHiddenGivenVisible(v *mat.Dense) (*mat.Dense, error)
	// ProbVisibleGivenHidden returns p(v=1|h) for each entry of the batch.
	ProbVisibleGivenHidden(h *mat.Dense) (*mat.Dense, error)
	// Visible returns the internally held visible-configuration batch
	// (chains × sites).
	Visible() *mat.Dense
	// SetVisible replaces the internally held visible batch.
	SetVisible(v *mat.Dense) error
	// Step advances the internal batch by k alternating Gibbs step pairs.
	Step(k int) error
	// NumVisible reports the number of sites (visible units).
	NumVisible() int
}

// Sampler drives Gibbs-style alternating sampling over the visible batch
// held by a ConditionalModel, using one explicit RNG stream.
//
// The RNG is consumed in a fixed, deterministic sequence; concurrent or
// reordered calls would break reproducibility and are disallowed by
// contract (external synchronization required for parallel chains).
type Sampler struct {
	model ConditionalModel
	rng   *rand.Rand
}

// NewSampler binds a sampler to a model and an RNG handle.
// A nil rng falls back to the deterministic default stream (seed==0 policy).
//
// Errors: ErrNilModel.
func NewSampler(m ConditionalModel, rng *rand.Rand) (*Sampler, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	r := rng
	if r == nil {
		r = NewRNG(0)
	}
	return &Sampler{model: m, rng: r}, nil
}

// ProbHiddenGivenVisible delegates the conditional query to the model.
// No sampling is performed and the RNG is not consumed.
func (s *Sampler) ProbHiddenGivenVisible(v *mat.Dense) (*mat.Dense, error) {
	if v == nil {
		return nil, ErrNilBatch
	}
	return s.model.ProbHiddenGivenVisible(v)
}

// ProbVisibleGivenHidden delegates the conditional query to the model.
// No sampling is performed and the RNG is not consumed.
func (s *Sampler) ProbVisibleGivenHidden(h *mat.Dense) (*mat.Dense, error) {
	if h == nil {
		return nil, ErrNilBatch
	}
	return s.model.ProbVisibleGivenHidden(h)
}

// SampleLayer fills dst with independent Bernoulli draws: dst[i,j] = 1 with
// probability probs[i,j], else 0. Entries are visited in fixed row-major
// order and each consumes exactly one uniform variate, so the draw is
// deterministic given the RNG's current internal state. Not parallelizable
// without breaking that guarantee.
//
// Errors: ErrNilBatch, ErrDimensionMismatch.
// Complexity: O(r·c). No allocations.
func (s *Sampler) SampleLayer(dst, probs *mat.Dense) error {
	if dst == nil || probs == nil {
		return ErrNilBatch
	}
	r, c := probs.Dims()
	if dr, dc := dst.Dims(); dr != r || dc != c {
		return fmt.Errorf("dst %dx%d, probs %dx%d: %w", dr, dc, r, c, ErrDimensionMismatch)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if s.rng.Float64() < probs.At(i, j) {
				dst.Set(i, j, 1)
			} else {
				dst.Set(i, j, 0)
			}
		}
	}
	return nil
}

// Run performs k alternating Gibbs step pairs (visible→hidden,
// hidden→visible) entirely through the model's own stepping logic,
// mutating the model's held visible batch in place. k==0 is a no-op.
//
// Errors: ErrBadStepCount, plus anything the model's Step reports.
func (s *Sampler) Run(k int) error {
	if k < 0 {
		return ErrBadStepCount
	}
	if k == 0 {
		return nil
	}
	return s.model.Step(k)
}

// Visible returns the model's current visible-configuration batch
// (chains × sites). The batch is the model's own storage; treat it as
// read-only between sampling calls.
func (s *Sampler) Visible() *mat.Dense {
	return s.model.Visible()
}

// SetVisible replaces the model's visible batch, e.g. to seed the chain
// from training data. The column count must match the model's site count.
//
// Errors: ErrNilBatch, ErrDimensionMismatch, plus model-side failures.
func (s *Sampler) SetVisible(v *mat.Dense) error {
	if v == nil {
		return ErrNilBatch
	}
	if _, c := v.Dims(); c != s.model.NumVisible() {
		return fmt.Errorf("batch has %d columns, model has %d sites: %w", c, s.model.NumVisible(), ErrDimensionMismatch)
	}
	return s.model.SetVisible(v)
}

// VisibleRow returns a copy of chain row i as a configuration vector.
//
// Errors: ErrRowOutOfRange.
// Complexity: O(n) for the copy.
func (s *Sampler) VisibleRow(i int) (*mat.VecDense, error) {
	batch := s.model.Visible()
	if batch == nil {
		return nil, ErrNilBatch
	}
	r, c := batch.Dims()
	if i < 0 || i >= r {
		return nil, fmt.Errorf("row %d of %d chains: %w", i, r, ErrRowOutOfRange)
	}
	row := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		row.SetVec(j, batch.At(i, j))
	}
	return row, nil
}
