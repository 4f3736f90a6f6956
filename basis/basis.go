package basis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LabelZ marks a site measured in the computational basis; no rotation is
// applied there and no Table entry is required for it.
const LabelZ = "Z"

var (
	// ErrUnknownLabel indicates a non-"Z" label with no Table entry.
	ErrUnknownLabel = errors.New("basis: unknown basis label")
	// ErrBadUnitaryShape indicates a Table entry that is not 2×2.
	ErrBadUnitaryShape = errors.New("basis: unitary must be a 2×2 matrix")
	// ErrLengthMismatch indicates a Basis whose length differs from the
	// declared number of sites.
	ErrLengthMismatch = errors.New("basis: assignment length differs from site count")
	// ErrBitOutOfRange indicates a matrix index that is not 0 or 1.
	ErrBitOutOfRange = errors.New("basis: bit index must be 0 or 1")
)

// Basis is an ordered per-site assignment of measurement-basis labels.
// The j-th entry labels the j-th degree of freedom.
type Basis []string

// RotatedSites returns the indices of all sites whose label is not "Z",
// in ascending site order. The order is load-bearing: the rotation
// estimator maps bit j of its enumeration counter to the j-th entry of
// this slice, and reproducibility depends on that mapping being stable.
//
// Complexity: O(n) time, O(t) space for t rotated sites.
func (b Basis) RotatedSites() []int {
	sites := make([]int, 0, len(b))
	for j, label := range b {
		if label != LabelZ {
			sites = append(sites, j)
		}
	}
	return sites
}

// Validate checks that b has exactly n entries and that every non-"Z"
// label resolves to a well-formed entry in tbl.
//
// Errors: ErrLengthMismatch, ErrUnknownLabel, ErrBadUnitaryShape.
// Complexity: O(n).
func (b Basis) Validate(n int, tbl Table) error {
	if len(b) != n {
		return fmt.Errorf("basis length %d, want %d: %w", len(b), n, ErrLengthMismatch)
	}
	for j, label := range b {
		if label == LabelZ {
			continue
		}
		if _, err := tbl.Lookup(label); err != nil {
			return fmt.Errorf("site %d: %w", j, err)
		}
	}
	return nil
}

// Table maps a basis label to the 2×2 unitary rotating that basis into the
// computational one. Entry (r, c) is the amplitude for reference bit r and
// enumerated bit c.
type Table map[string]*mat.CDense

// Lookup resolves label to its unitary, verifying the 2×2 shape.
//
// Errors: ErrUnknownLabel, ErrBadUnitaryShape.
// Complexity: O(1).
func (t Table) Lookup(label string) (*mat.CDense, error) {
	u, ok := t[label]
	if !ok || u == nil {
		return nil, fmt.Errorf("label %q: %w", label, ErrUnknownLabel)
	}
	if r, c := u.Dims(); r != 2 || c != 2 {
		return nil, fmt.Errorf("label %q is %dx%d: %w", label, r, c, ErrBadUnitaryShape)
	}
	return u, nil
}

// Element returns the (refBit, candBit) entry of the unitary for label.
//
// Errors: ErrUnknownLabel, ErrBadUnitaryShape, ErrBitOutOfRange.
// Complexity: O(1).
func (t Table) Element(label string, refBit, candBit int) (complex128, error) {
	u, err := t.Lookup(label)
	if err != nil {
		return 0, err
	}
	if refBit < 0 || refBit > 1 || candBit < 0 || candBit > 1 {
		return 0, ErrBitOutOfRange
	}
	return u.At(refBit, candBit), nil
}

// StandardTable returns the unitaries of the usual X/Y/Z local measurement
// protocol. "Z" needs no entry; "X" is the Hadamard rotation and "Y" its
// phase-twisted counterpart:
//
//	U_X = 1/√2 · | 1   1 |      U_Y = 1/√2 · | 1  -i |
//	             | 1  -1 |                   | 1   i |
//
// The returned table is freshly allocated; callers may extend it with
// protocol-specific labels.
func StandardTable() Table {
	s := complex(1/math.Sqrt2, 0)
	return Table{
		"X": mat.NewCDense(2, 2, []complex128{
			s, s,
			s, -s,
		}),
		"Y": mat.NewCDense(2, 2, []complex128{
			s, -s * 1i,
			s, s * 1i,
		}),
	}
}
