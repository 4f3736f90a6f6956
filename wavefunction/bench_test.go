package wavefunction_test

import (
	"testing"

	"github.com/lowdim/qst/basis"
	"github.com/lowdim/qst/wavefunction"
)

// benchmarkRotatedGrad enumerates an all-"X" basis over t sites, so each
// iteration performs the full 2^t candidate sweep.
func benchmarkRotatedGrad(b *testing.B, t int) {
	amp := newTableModel(t, 4)
	ph := newTableModel(t, 4)
	m, err := wavefunction.New(amp, ph, wavefunction.DefaultOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	bas := make(basis.Basis, t)
	bits := make([]float64, t)
	for i := 0; i < t; i++ {
		bas[i] = "X"
	}
	ref := cfg(bits...)
	tbl := basis.StandardTable()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.RotatedGrad(bas, ref, tbl); err != nil {
			b.Fatalf("RotatedGrad failed: %v", err)
		}
	}
}

// BenchmarkRotatedGrad_T4 sweeps 16 candidates per iteration.
func BenchmarkRotatedGrad_T4(b *testing.B) { benchmarkRotatedGrad(b, 4) }

// BenchmarkRotatedGrad_T8 sweeps 256 candidates per iteration.
func BenchmarkRotatedGrad_T8(b *testing.B) { benchmarkRotatedGrad(b, 8) }

// BenchmarkRotatedGrad_T12 sweeps 4096 candidates per iteration.
func BenchmarkRotatedGrad_T12(b *testing.B) { benchmarkRotatedGrad(b, 12) }

// BenchmarkGrad measures the plain concatenated gradient for contrast.
func BenchmarkGrad(b *testing.B) {
	m, err := wavefunction.New(newTableModel(8, 16), newTableModel(8, 16), wavefunction.DefaultOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	ref := cfg(0, 1, 0, 1, 0, 1, 0, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Grad(ref); err != nil {
			b.Fatalf("Grad failed: %v", err)
		}
	}
}
