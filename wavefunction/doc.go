// Package wavefunction combines two generative sub-models — one playing the
// amplitude role, one the phase role — into a single complex wavefunction
// over binary configurations, and provides the gradient machinery needed to
// train it from measurements taken in arbitrary local bases.
//
// 🚀 What is wavefunction?
//
//	The composite evaluator at the heart of neural quantum state
//	tomography:
//
//	  ψ(v) = √P_amp(v) · exp(i · log P_ph(v) / 2)
//
//	plus three layers of gradient plumbing:
//	  • per-role energy gradients (pure delegation)
//	  • their concatenation into one parameter-space vector, ordered
//	    exactly like Parameters()
//	  • RotatedGrad — the basis-rotation estimator that enumerates the
//	    locally rotated Hilbert space exactly (no Monte Carlo) and
//	    returns the gradient as observed in the rotated basis
//
// ✨ Key guarantees:
//   - Sub-models are consumed only through the GenerativeModel capability
//     interface; amplitude and phase roles are two instances of it
//   - Parameter splitting uses each role's recorded count, never an
//     assumed half/half partition; SetParameters(Parameters()) is identity
//   - Enumeration order in RotatedGrad is fixed (ascending counter, bit j
//     ↔ j-th rotated site) so results are reproducible bit for bit
//   - Failure modes are explicit sentinels: ErrDomain for log/sqrt of a
//     non-positive probability, ErrNumericalInstability for a vanishing
//     rotation denominator or NaN/Inf, ErrCapacityExceeded for too many
//     rotated sites, ErrDimensionMismatch for shape violations
//
// ⚠️ A documented hazard: Phase(v) = log P_ph(v) treats a probability-shaped
// quantity as an unbounded phase generator. P_ph(v) → 0 makes the phase
// diverge; this surfaces as ErrDomain and is deliberately never masked,
// because clamping it would silently corrupt gradient estimates.
//
// ⚙️ Usage:
//
//	m, err := wavefunction.New(ampModel, phModel, wavefunction.DefaultOptions())
//	psi, err := m.Psi(v)
//	g, err := m.RotatedGrad(basis.Basis{"X", "Z"}, v, basis.StandardTable())
//
// Complexity: evaluation O(model); RotatedGrad O(2^t · model) for t rotated
// sites — t is the caller's cost dial, capped by Options.MaxRotatedSites.
package wavefunction
