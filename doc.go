// Package qst reconstructs unknown quantum states from measurement data,
// representing the state as a pair of generative sub-models — one for the
// amplitude, one for the phase — combined into a single complex wavefunction.
//
// 🚀 What is qst?
//
//	A deterministic, pure-Go core for neural quantum state tomography:
//		• Composite wavefunction: |ψ(v)| from the amplitude model, arg ψ(v)
//		  from the phase model, evaluated per binary configuration
//		• Gibbs sampling: alternating conditional draws targeting |ψ|²,
//		  driven by an explicit seeded RNG handle
//		• Gradient machinery: per-sub-model energy gradients concatenated
//		  into one parameter-space vector
//		• Basis rotation: exact enumeration of the locally rotated Hilbert
//		  space, turning non-computational-basis measurements into
//		  computational-basis gradients
//
// ✨ Why choose qst?
//
//   - Reproducible – every stochastic path is seeded; same seed, same bits
//   - Strict contracts – sentinel errors for domain, dimension, capacity and
//     numerical-instability failures; nothing is silently clamped
//   - Pluggable – sub-models are consumed through a narrow capability
//     interface, never as concrete types
//   - Pure Go – no cgo, no hidden deps beyond gonum
//
// Under the hood, everything is organized under four subpackages:
//
//	numutil/      — overflow-safe logistic and softplus kernels
//	basis/        — per-site measurement bases and 2×2 unitary tables
//	gibbs/        — seeded Bernoulli layer draws and k-step Gibbs runs
//	wavefunction/ — the composite model, gradients and the rotation estimator
//
// Quick sketch:
//
//	ψ(v) = √P_amp(v) · exp(i · log P_ph(v) / 2)
//
// where P_amp and P_ph are the probabilities assigned to configuration v by
// the amplitude-role and phase-role sub-models.
//
// Dive into the per-package doc.go files for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/lowdim/qst/wavefunction
package qst
