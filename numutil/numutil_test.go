package numutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lowdim/qst/numutil"
)

// TestLogistic_Midpoint verifies the defining value Logistic(0) = 1/2.
func TestLogistic_Midpoint(t *testing.T) {
	assert.InDelta(t, 0.5, numutil.Logistic(0), 1e-15, "logistic(0) must be exactly one half")
}

// TestLogistic_Symmetry checks Logistic(-x) = 1 - Logistic(x) across a sweep,
// which only holds when both branches of the overflow-safe split agree.
func TestLogistic_Symmetry(t *testing.T) {
	for _, x := range []float64{0.1, 1, 3, 10, 25, 100} {
		p := numutil.Logistic(x)
		q := numutil.Logistic(-x)
		assert.InDelta(t, 1.0, p+q, 1e-12, "logistic(x)+logistic(-x) must be 1 at x=%v", x)
	}
}

// TestLogistic_ExtremeArguments ensures saturation without NaN or Inf for
// arguments far beyond the naive-exp overflow point.
func TestLogistic_ExtremeArguments(t *testing.T) {
	hi := numutil.Logistic(750)
	lo := numutil.Logistic(-750)
	assert.Equal(t, 1.0, hi, "large positive input saturates at 1")
	assert.Equal(t, 0.0, lo, "large negative input saturates at 0")
	assert.False(t, math.IsNaN(hi) || math.IsNaN(lo), "no NaN at extremes")
}

// TestSoftplus_KnownValues pins the two contract points: Softplus(50) ≈ 50
// within 1e-6 and Softplus(0) = ln 2 within 1e-9.
func TestSoftplus_KnownValues(t *testing.T) {
	assert.InDelta(t, 50.0, numutil.Softplus(50), 1e-6, "softplus(50) ≈ 50")
	assert.InDelta(t, math.Ln2, numutil.Softplus(0), 1e-9, "softplus(0) = ln 2")
}

// TestSoftplus_NegativeTail verifies graceful underflow: for very negative x,
// softplus(x) ≈ e^x, tiny but positive, never NaN.
func TestSoftplus_NegativeTail(t *testing.T) {
	y := numutil.Softplus(-40)
	assert.InDelta(t, math.Exp(-40), y, 1e-25, "softplus(-40) ≈ e^-40")
	assert.Greater(t, y, 0.0, "softplus is strictly positive")
}

// TestSoftplus_ShortcutContinuity checks that the x>30 shortcut does not
// introduce a jump at the branch point: on either side of 30 the value is
// indistinguishable from x itself to double precision.
func TestSoftplus_ShortcutContinuity(t *testing.T) {
	below := 29.999999
	above := 30.000001
	assert.InDelta(t, below, numutil.Softplus(below), 1e-12, "just below the branch, softplus(x) ≈ x")
	assert.InDelta(t, above, numutil.Softplus(above), 1e-12, "just above the branch, softplus(x) = x")
}

// TestLogisticVec_Elementwise verifies the vector kernel matches the scalar
// kernel entry by entry.
func TestLogisticVec_Elementwise(t *testing.T) {
	x := mat.NewVecDense(4, []float64{-2, 0, 1, 40})
	dst := mat.NewVecDense(4, nil)
	require.NoError(t, numutil.LogisticVec(dst, x))
	for i := 0; i < x.Len(); i++ {
		assert.Equal(t, numutil.Logistic(x.AtVec(i)), dst.AtVec(i), "entry %d", i)
	}
}

// TestSoftplusMat_Elementwise verifies the matrix kernel matches the scalar
// kernel entry by entry in row-major order.
func TestSoftplusMat_Elementwise(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{-5, 0, 5, 31, -31, 0.5})
	dst := mat.NewDense(2, 3, nil)
	require.NoError(t, numutil.SoftplusMat(dst, x))
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, numutil.Softplus(x.At(i, j)), dst.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

// TestKernels_DimensionMismatch ensures every fallible kernel rejects shape
// disagreement with the package sentinel.
func TestKernels_DimensionMismatch(t *testing.T) {
	v3 := mat.NewVecDense(3, nil)
	v4 := mat.NewVecDense(4, nil)
	assert.ErrorIs(t, numutil.LogisticVec(v3, v4), numutil.ErrDimensionMismatch)
	assert.ErrorIs(t, numutil.SoftplusVec(v4, v3), numutil.ErrDimensionMismatch)

	m23 := mat.NewDense(2, 3, nil)
	m32 := mat.NewDense(3, 2, nil)
	assert.ErrorIs(t, numutil.LogisticMat(m23, m32), numutil.ErrDimensionMismatch)
	assert.ErrorIs(t, numutil.SoftplusMat(m32, m23), numutil.ErrDimensionMismatch)
}

// TestKernels_NilInputs ensures nil operands surface ErrNilInput rather than
// panicking inside gonum.
func TestKernels_NilInputs(t *testing.T) {
	v := mat.NewVecDense(2, nil)
	m := mat.NewDense(2, 2, nil)
	assert.ErrorIs(t, numutil.LogisticVec(nil, v), numutil.ErrNilInput)
	assert.ErrorIs(t, numutil.SoftplusVec(v, nil), numutil.ErrNilInput)
	assert.ErrorIs(t, numutil.LogisticMat(nil, m), numutil.ErrNilInput)
	assert.ErrorIs(t, numutil.SoftplusMat(m, nil), numutil.ErrNilInput)
}
