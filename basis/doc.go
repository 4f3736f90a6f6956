// Package basis describes per-site measurement bases and the unitary
// rotations that connect them to the computational basis.
//
// 🚀 What is a basis assignment?
//
//	Tomographic data is collected by measuring each degree of freedom in
//	some local basis. A Basis is one label per site: "Z" marks the
//	computational basis (no rotation); any other label names a 2×2 unitary
//	to apply at that site before the measurement is interpreted.
//
// ✨ Key pieces:
//   - Basis         — ordered per-site labels with stable rotated-site
//     extraction (ascending site order, required for reproducible
//     enumeration downstream)
//   - Table         — label → 2×2 complex unitary (gonum mat.CDense),
//     indexed (reference bit, enumerated bit)
//   - StandardTable — the Hadamard-like "X" rotation and the "Y" rotation
//     used by the usual X/Y/Z measurement protocol
//
// ⚙️ Usage:
//
//	b := basis.Basis{"X", "Z", "Z", "Y"}
//	tbl := basis.StandardTable()
//	if err := b.Validate(4, tbl); err != nil { ... }
//	sites := b.RotatedSites() // [0 3]
//
// Validation is strict: an unknown label or a non-2×2 matrix is an error,
// never a silent identity.
package basis
