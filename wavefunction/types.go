package wavefunction

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilModel indicates a missing amplitude- or phase-role sub-model.
	ErrNilModel = errors.New("wavefunction: nil generative sub-model")
	// ErrDomain indicates sqrt or log was applied to a probability outside
	// its domain (negative for the amplitude role, non-positive for the
	// phase role).
	ErrDomain = errors.New("wavefunction: probability outside function domain")
	// ErrNumericalInstability indicates a vanishing rotation denominator or
	// a NaN/Inf produced by an evaluation. Never recoverable locally.
	ErrNumericalInstability = errors.New("wavefunction: numerical instability")
	// ErrCapacityExceeded indicates more rotated sites than
	// Options.MaxRotatedSites allows.
	ErrCapacityExceeded = errors.New("wavefunction: rotated-site count exceeds enumeration limit")
	// ErrDimensionMismatch indicates a configuration or parameter vector of
	// the wrong length, or sub-models with disagreeing site counts.
	ErrDimensionMismatch = errors.New("wavefunction: dimension mismatch")
	// ErrNonBinaryState indicates a configuration entry that is not 0 or 1.
	ErrNonBinaryState = errors.New("wavefunction: configuration entries must be 0 or 1")
	// ErrBadOptions indicates out-of-range Options fields.
	ErrBadOptions = errors.New("wavefunction: invalid options")
)

// GenerativeModel is the capability set required from a generative sub-model.
// Two independent instances serve a composite Model: an amplitude role and a
// phase role. Implementations own their parameters and their visible batch;
// the composite never inspects their internals.
type GenerativeModel interface {
	// Probability returns the probability the model assigns to one
	// configuration. Need not be normalized; must be deterministic.
	Probability(v *mat.VecDense) (float64, error)

	// ProbHiddenGivenVisible returns p(h=1|v) entrywise for a batch.
	ProbHiddenGivenVisible(v *mat.Dense) (*mat.Dense, error)
	// ProbVisibleGivenHidden returns p(v=1|h) entrywise for a batch.
	ProbVisibleGivenHidden(h *mat.Dense) (*mat.Dense, error)

	// EnergyGrad returns the gradient of the model's effective energy at v
	// with respect to the model's own parameters.
	EnergyGrad(v *mat.VecDense) (*mat.VecDense, error)

	// Parameters returns the model's parameter vector; SetParameters
	// replaces it. Round-tripping must be the identity.
	Parameters() *mat.VecDense
	SetParameters(p *mat.VecDense) error

	// NumVisible reports the number of sites; NumParameters the length of
	// the parameter vector; NumChains the rows of the visible batch.
	NumVisible() int
	NumParameters() int
	NumChains() int

	// Visible returns the internally held visible batch; SetVisible
	// replaces it wholesale.
	Visible() *mat.Dense
	SetVisible(v *mat.Dense) error

	// Step advances the internal batch by k alternating Gibbs step pairs
	// using the model's own stepping logic.
	Step(k int) error

	// InitRandomParameters draws fresh parameters from a zero-mean
	// distribution of width sigma, seeded deterministically.
	InitRandomParameters(seed int64, sigma float64)
}

// Default limits for the rotation estimator. MaxRotatedSites matches the
// fixed bit width of the reference implementation; DenominatorTol is the
// magnitude below which the rotation denominator is declared unstable.
const (
	DefaultMaxRotatedSites = 16
	DefaultDenominatorTol  = 1e-12

	// maxEnumerableSites bounds MaxRotatedSites so 1<<t cannot overflow.
	maxEnumerableSites = 62
)

// Options configures a composite Model.
//
// Fields:
//   - Seed            — seed for the model's sampling RNG stream;
//     0 selects the fixed default seed (reproducible default runs).
//   - MaxRotatedSites — upper bound on rotated sites t in RotatedGrad;
//     enumeration cost is 2^t, so this is a cost guard, not a bit-width
//     limit. 0 selects DefaultMaxRotatedSites.
//   - DenominatorTol  — |denominator| threshold below which RotatedGrad
//     reports ErrNumericalInstability. 0 selects DefaultDenominatorTol.
type Options struct {
	Seed            int64
	MaxRotatedSites int
	DenominatorTol  float64
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{
		Seed:            0,
		MaxRotatedSites: DefaultMaxRotatedSites,
		DenominatorTol:  DefaultDenominatorTol,
	}
}

// validate normalizes zero values to defaults and rejects out-of-range
// fields with ErrBadOptions.
func (o Options) validate() (Options, error) {
	if o.MaxRotatedSites == 0 {
		o.MaxRotatedSites = DefaultMaxRotatedSites
	}
	if o.DenominatorTol == 0 {
		o.DenominatorTol = DefaultDenominatorTol
	}
	if o.MaxRotatedSites < 0 || o.MaxRotatedSites > maxEnumerableSites {
		return o, ErrBadOptions
	}
	if o.DenominatorTol < 0 {
		return o, ErrBadOptions
	}
	return o, nil
}
