package wavefunction

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/lowdim/qst/gibbs"
)

// Model is the composite wavefunction: one amplitude-role sub-model, one
// phase-role sub-model, one RNG stream, one sampling chain.
//
// The parameter space is the concatenation of the amplitude parameters
// followed by the phase parameters; each role's count is recorded at
// construction, so the two segments may differ in length.
type Model struct {
	amp GenerativeModel
	ph  GenerativeModel

	n       int // degrees of freedom (visible units)
	nparAmp int // amplitude-segment length
	nparPh  int // phase-segment length

	opts    Options
	rng     *rand.Rand
	sampler *gibbs.Sampler
}

// New builds a composite Model from the two role instances.
// The roles must agree on the number of visible units. The model's single
// RNG stream is seeded from opts.Seed (0 ⇒ fixed default) and feeds the
// sampler for the lifetime of the model.
//
// Errors: ErrNilModel, ErrDimensionMismatch, ErrBadOptions.
func New(amp, ph GenerativeModel, opts Options) (*Model, error) {
	if amp == nil || ph == nil {
		return nil, ErrNilModel
	}
	o, err := opts.validate()
	if err != nil {
		return nil, err
	}
	if amp.NumVisible() != ph.NumVisible() {
		return nil, fmt.Errorf("amplitude role has %d sites, phase role %d: %w",
			amp.NumVisible(), ph.NumVisible(), ErrDimensionMismatch)
	}

	rng := gibbs.NewRNG(o.Seed)
	// Sampling targets |ψ|², which the phase role never enters, so the
	// sampler is bound to the amplitude role only.
	sampler, err := gibbs.NewSampler(amp, rng)
	if err != nil {
		return nil, err
	}

	return &Model{
		amp:     amp,
		ph:      ph,
		n:       amp.NumVisible(),
		nparAmp: amp.NumParameters(),
		nparPh:  ph.NumParameters(),
		opts:    o,
		rng:     rng,
		sampler: sampler,
	}, nil
}

// N reports the number of degrees of freedom.
func (m *Model) N() int { return m.n }

// NumParameters reports the total parameter count (both roles).
func (m *Model) NumParameters() int { return m.nparAmp + m.nparPh }

// NumChains reports the number of sampling chains in the visible batch.
func (m *Model) NumChains() int { return m.amp.NumChains() }

// Sampler returns the model's Gibbs sampler over the amplitude role.
// There is exactly one sampler and one RNG stream per model; parallel use
// requires external synchronization by contract.
func (m *Model) Sampler() *gibbs.Sampler { return m.sampler }

// checkConfig validates a configuration vector: non-nil, length n, entries
// in {0, 1}.
func (m *Model) checkConfig(v *mat.VecDense) error {
	if v == nil || v.Len() != m.n {
		return ErrDimensionMismatch
	}
	for i := 0; i < m.n; i++ {
		if x := v.AtVec(i); x != 0 && x != 1 {
			return fmt.Errorf("site %d holds %v: %w", i, x, ErrNonBinaryState)
		}
	}
	return nil
}

// Amplitude returns |ψ(v)| = √P_amp(v).
//
// Errors: ErrDimensionMismatch, ErrNonBinaryState; ErrDomain when the
// amplitude role reports a negative or NaN probability.
func (m *Model) Amplitude(v *mat.VecDense) (float64, error) {
	if err := m.checkConfig(v); err != nil {
		return 0, err
	}
	p, err := m.amp.Probability(v)
	if err != nil {
		return 0, fmt.Errorf("amplitude: %w", err)
	}
	if p < 0 || math.IsNaN(p) {
		return 0, fmt.Errorf("amplitude probability %v: %w", p, ErrDomain)
	}
	return math.Sqrt(p), nil
}

// Phase returns log P_ph(v), the (unbounded) phase generator.
//
// The phase role's probability is used as an unnormalized positive weight;
// P_ph(v) ≤ 0 leaves the log undefined and surfaces as ErrDomain. This is
// the known instability of probability-shaped phase generators — it is
// reported, never clamped.
func (m *Model) Phase(v *mat.VecDense) (float64, error) {
	if err := m.checkConfig(v); err != nil {
		return 0, err
	}
	p, err := m.ph.Probability(v)
	if err != nil {
		return 0, fmt.Errorf("phase: %w", err)
	}
	if p <= 0 || math.IsNaN(p) {
		return 0, fmt.Errorf("phase probability %v: %w", p, ErrDomain)
	}
	return math.Log(p), nil
}

// Psi evaluates the full complex wavefunction:
//
//	ψ(v) = Amplitude(v) · exp(i · Phase(v) / 2)
//
// Pure function of v and the current parameters; no side effects.
//
// Errors: those of Amplitude and Phase, plus ErrNumericalInstability if the
// product degenerates to NaN or Inf.
func (m *Model) Psi(v *mat.VecDense) (complex128, error) {
	a, err := m.Amplitude(v)
	if err != nil {
		return 0, err
	}
	phi, err := m.Phase(v)
	if err != nil {
		return 0, err
	}
	psi := complex(a, 0) * cmplx.Exp(complex(0, phi/2))
	if cmplx.IsNaN(psi) || cmplx.IsInf(psi) {
		return 0, fmt.Errorf("psi: non-finite value: %w", ErrNumericalInstability)
	}
	return psi, nil
}

// Parameters returns the concatenation of the amplitude parameters followed
// by the phase parameters, in that fixed order. The result is a fresh copy.
//
// Errors: ErrDimensionMismatch if a role returns a vector of unexpected
// length (a broken sub-model, surfaced rather than trusted).
func (m *Model) Parameters() (*mat.VecDense, error) {
	pa := m.amp.Parameters()
	pp := m.ph.Parameters()
	if pa == nil || pa.Len() != m.nparAmp || pp == nil || pp.Len() != m.nparPh {
		return nil, fmt.Errorf("parameters: role vector length drifted: %w", ErrDimensionMismatch)
	}
	out := mat.NewVecDense(m.nparAmp+m.nparPh, nil)
	for i := 0; i < m.nparAmp; i++ {
		out.SetVec(i, pa.AtVec(i))
	}
	for i := 0; i < m.nparPh; i++ {
		out.SetVec(m.nparAmp+i, pp.AtVec(i))
	}
	return out, nil
}

// SetParameters splits p by the recorded per-role counts — the first
// nparAmp entries go to the amplitude role, the rest to the phase role —
// and routes each segment to its sub-model. SetParameters(Parameters()) is
// the identity.
//
// Errors: ErrDimensionMismatch for a nil vector or wrong total length, plus
// anything the roles report.
func (m *Model) SetParameters(p *mat.VecDense) error {
	if p == nil || p.Len() != m.nparAmp+m.nparPh {
		return fmt.Errorf("setParameters: want length %d: %w", m.nparAmp+m.nparPh, ErrDimensionMismatch)
	}
	pa := mat.NewVecDense(m.nparAmp, nil)
	for i := 0; i < m.nparAmp; i++ {
		pa.SetVec(i, p.AtVec(i))
	}
	pp := mat.NewVecDense(m.nparPh, nil)
	for i := 0; i < m.nparPh; i++ {
		pp.SetVec(i, p.AtVec(m.nparAmp+i))
	}
	if err := m.amp.SetParameters(pa); err != nil {
		return fmt.Errorf("setParameters amplitude role: %w", err)
	}
	if err := m.ph.SetParameters(pp); err != nil {
		return fmt.Errorf("setParameters phase role: %w", err)
	}
	return nil
}

// InitRandomParameters delegates random initialization to both roles with
// the same seed and width, matching the reference behavior.
func (m *Model) InitRandomParameters(seed int64, sigma float64) {
	m.amp.InitRandomParameters(seed, sigma)
	m.ph.InitRandomParameters(seed, sigma)
}
