// Package numutil provides the elementwise numeric kernels shared by the
// tomography core: the logistic function and the softplus (log1p-exp)
// function, in scalar, vector and matrix form.
//
// 🚀 What is numutil?
//
//	Two tiny functions, implemented once, with overflow-safe branching:
//	  • Logistic(x)  = 1 / (1 + e^(-x))
//	  • Softplus(x)  = log(1 + e^x)
//
//	Naive evaluation of either overflows for |x| around 710 and loses
//	precision long before that. The kernels here branch on the sign and
//	magnitude of x so that every finite input produces a finite output.
//
// ✨ Key guarantees:
//   - Logistic maps all finite x into (0, 1); no NaN, no Inf
//   - Softplus(x) = x exactly for x > 30 (the e^(-x) correction is below
//     double precision there), matching the classic large-x shortcut
//   - Vector/matrix variants run fixed elementwise loops (row-major),
//     deterministic and allocation-free given caller-owned destinations
//
// ⚙️ Usage:
//
//	import "github.com/lowdim/qst/numutil"
//
//	p := numutil.Logistic(theta)           // scalar
//	err := numutil.LogisticMat(dst, src)   // gonum mat.Dense, elementwise
//
// Complexity: O(1) scalar, O(n) vector, O(r·c) matrix. No allocations.
package numutil
