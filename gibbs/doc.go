// Package gibbs draws binary configurations from a generative sub-model by
// alternating conditional (Gibbs) sampling, with fully deterministic,
// explicitly seeded randomness.
//
// 🚀 What is gibbs?
//
//	The sampling side of the tomography core. After enough alternating
//	visible→hidden→visible half-steps, the visible batch held by the
//	amplitude sub-model is distributed (asymptotically) according to the
//	model's probability — that is, according to |ψ|², since the phase
//	model never enters the sampling target.
//
// ✨ Key features:
//   - Explicit RNG handle: every Sampler owns one *rand.Rand; no package
//     globals, no time-based seeding hidden anywhere
//   - Bernoulli layer draws in fixed row-major order, one uniform variate
//     per entry — same seed, same call sequence ⇒ bit-identical batches
//   - Narrow model contract: only conditional-probability queries, the
//     model's own stepping logic and visible-batch access are required
//   - Substream derivation (SplitMix64 mixing) for independent chains
//
// ⚙️ Usage:
//
//	rng := gibbs.NewRNG(13579)
//	s, err := gibbs.NewSampler(ampModel, rng)
//	if err != nil { ... }
//	if err := s.Run(100); err != nil { ... } // 100 Gibbs step pairs
//	batch := s.Visible()
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe; a Sampler must be driven from one
//     goroutine. Use DeriveRNG to give parallel chains independent streams.
//
// Complexity: SampleLayer O(r·c); Run delegates k steps to the model.
package gibbs
