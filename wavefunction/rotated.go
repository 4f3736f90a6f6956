package wavefunction

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/lowdim/qst/basis"
)

// RotatedGrad estimates the expectation of the parameter gradient as
// observed after rotating the state by the per-site unitaries that b
// selects, evaluated at the reference configuration ref. The estimate is
// exact: it enumerates every configuration of the locally rotated subspace
// rather than sampling it.
//
// Algorithm (t = number of non-"Z" sites, in ascending site order):
//
//	for i in [0, 2^t):
//	    v       = ref, with bit j of i written to the j-th rotated site
//	    U       = ∏_j  table[b(site_j)][ref bit, v bit]
//	    num    += U · Grad(v) · ψ(v)     (complex vector)
//	    den    += U · ψ(v)               (complex scalar)
//	return num / den
//
// The enumeration order is fixed (ascending i, bit j ↔ j-th rotated site),
// so results are reproducible bit for bit.
//
// Special cases:
//   - t == 0 (all-"Z" basis): the sum has exactly one term with U = 1, and
//     the result is Grad(ref) promoted to complex, returned without the
//     redundant multiply-divide round trip.
//   - |den| ≤ Options.DenominatorTol: the rotated amplitudes interfere
//     destructively at ref; reported as ErrNumericalInstability instead of
//     letting NaN/Inf propagate into the optimizer.
//
// Errors: basis validation errors, ErrCapacityExceeded when
// t > Options.MaxRotatedSites, ErrNumericalInstability, plus anything Psi
// or Grad report for an enumerated configuration.
//
// Complexity: O(2^t · (t + cost(Psi) + cost(Grad))) time, O(npar) space.
func (m *Model) RotatedGrad(b basis.Basis, ref *mat.VecDense, table basis.Table) ([]complex128, error) {
	if err := m.checkConfig(ref); err != nil {
		return nil, err
	}
	if err := b.Validate(m.n, table); err != nil {
		return nil, err
	}

	sites := b.RotatedSites()
	t := len(sites)
	if t > m.opts.MaxRotatedSites {
		return nil, fmt.Errorf("rotatedGrad: %d rotated sites, limit %d: %w", t, m.opts.MaxRotatedSites, ErrCapacityExceeded)
	}

	npar := m.NumParameters()

	// Computational-basis measurement: single-term sum, U = 1, and the
	// ratio collapses to the plain gradient. Returning it directly keeps
	// the all-"Z" contract exact rather than exact-up-to-rounding.
	if t == 0 {
		g, err := m.Grad(ref)
		if err != nil {
			return nil, err
		}
		out := make([]complex128, npar)
		for k := 0; k < npar; k++ {
			out[k] = complex(g.AtVec(k), 0)
		}
		return out, nil
	}

	// Resolve unitaries and reference bits once; both are loop-invariant.
	unitaries := make([]*mat.CDense, t)
	refBits := make([]int, t)
	for j, site := range sites {
		u, err := table.Lookup(b[site])
		if err != nil {
			return nil, err
		}
		unitaries[j] = u
		refBits[j] = int(ref.AtVec(site))
	}

	num := make([]complex128, npar)
	scratch := make([]complex128, npar)
	var den complex128

	v := mat.NewVecDense(m.n, nil)
	for i := 0; i < 1<<t; i++ {
		// Candidate: the reference everywhere except the rotated sites,
		// which take the bits of i (bit j ↔ j-th rotated site).
		v.CopyVec(ref)
		u := complex(1, 0)
		for j, site := range sites {
			bit := (i >> uint(j)) & 1
			v.SetVec(site, float64(bit))
			u *= unitaries[j].At(refBits[j], bit)
		}

		psi, err := m.Psi(v)
		if err != nil {
			return nil, err
		}
		g, err := m.Grad(v)
		if err != nil {
			return nil, err
		}

		w := u * psi
		for k := 0; k < npar; k++ {
			scratch[k] = complex(g.AtVec(k), 0)
		}
		cmplxs.AddScaled(num, w, scratch)
		den += w
	}

	if cmplx.Abs(den) <= m.opts.DenominatorTol || cmplx.IsNaN(den) {
		return nil, fmt.Errorf("rotatedGrad: denominator %v below tolerance %v: %w", den, m.opts.DenominatorTol, ErrNumericalInstability)
	}
	cmplxs.Scale(1/den, num)

	for k := 0; k < npar; k++ {
		if cmplx.IsNaN(num[k]) || cmplx.IsInf(num[k]) {
			return nil, fmt.Errorf("rotatedGrad: non-finite component %d: %w", k, ErrNumericalInstability)
		}
	}
	return num, nil
}
