package wavefunction

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AmplitudeGrad returns the gradient of the amplitude role's effective
// energy at v, with respect to that role's own parameters. Pure delegation.
//
// Errors: ErrDimensionMismatch, ErrNonBinaryState, plus role failures.
func (m *Model) AmplitudeGrad(v *mat.VecDense) (*mat.VecDense, error) {
	if err := m.checkConfig(v); err != nil {
		return nil, err
	}
	g, err := m.amp.EnergyGrad(v)
	if err != nil {
		return nil, fmt.Errorf("amplitudeGrad: %w", err)
	}
	if g == nil || g.Len() != m.nparAmp {
		return nil, fmt.Errorf("amplitudeGrad: role returned wrong length: %w", ErrDimensionMismatch)
	}
	return g, nil
}

// PhaseGrad returns the gradient of the phase role's effective energy at v,
// with respect to that role's own parameters. Pure delegation.
//
// Errors: ErrDimensionMismatch, ErrNonBinaryState, plus role failures.
func (m *Model) PhaseGrad(v *mat.VecDense) (*mat.VecDense, error) {
	if err := m.checkConfig(v); err != nil {
		return nil, err
	}
	g, err := m.ph.EnergyGrad(v)
	if err != nil {
		return nil, fmt.Errorf("phaseGrad: %w", err)
	}
	if g == nil || g.Len() != m.nparPh {
		return nil, fmt.Errorf("phaseGrad: role returned wrong length: %w", ErrDimensionMismatch)
	}
	return g, nil
}

// Grad returns the full parameter-space energy gradient at v: the
// amplitude-role gradient followed by the phase-role gradient, in the same
// order as Parameters().
//
// Complexity: O(npar) on top of the two delegated evaluations.
func (m *Model) Grad(v *mat.VecDense) (*mat.VecDense, error) {
	ga, err := m.AmplitudeGrad(v)
	if err != nil {
		return nil, err
	}
	gp, err := m.PhaseGrad(v)
	if err != nil {
		return nil, err
	}
	out := mat.NewVecDense(m.nparAmp+m.nparPh, nil)
	for i := 0; i < m.nparAmp; i++ {
		out.SetVec(i, ga.AtVec(i))
	}
	for i := 0; i < m.nparPh; i++ {
		out.SetVec(m.nparAmp+i, gp.AtVec(i))
	}
	return out, nil
}
