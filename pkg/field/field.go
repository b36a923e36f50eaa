package field

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// Element represents a residue modulo a prime p, an element of Z/pZ.
//
// Elements are immutable: every operation returns a fresh element and
// never modifies its operands, so values can be shared freely between
// goroutines without coordination.
//
// New stores num exactly as given and does not reduce it into [0, p).
// Arithmetic results are always reduced with the Euclidean (non-negative)
// remainder, so the invariant 0 <= num < p holds for every element
// produced by an operation. Equal compares the raw stored values, which
// means an unreduced element is not equal to its reduced form.
type Element struct {
	num   *big.Int
	prime *big.Int
}

// New creates a field element with the given residue and prime modulus.
// The modulus is assumed prime; it is not verified. num is stored as
// given, without reduction.
func New(num, prime *big.Int) *Element {
	return &Element{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}
}

// NewInt64 creates a field element from int64 values. Convenient for
// small fields in tests and examples.
func NewInt64(num, prime int64) *Element {
	return New(big.NewInt(num), big.NewInt(prime))
}

// Num returns a copy of the stored residue.
func (e *Element) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the modulus.
func (e *Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// IsZero reports whether the residue is congruent to zero mod p.
func (e *Element) IsZero() bool {
	return new(big.Int).Mod(e.num, e.prime).Sign() == 0
}

// Equal reports whether other is present and has the same residue and
// the same modulus. A nil operand is never equal; the comparison itself
// cannot fail, even across different fields.
func (e *Element) Equal(other *Element) bool {
	if other == nil {
		return false
	}
	return e.num.Cmp(other.num) == 0 && e.prime.Cmp(other.prime) == 0
}

// sameField returns ErrIncompatibleField unless both elements share the
// same modulus.
func (e *Element) sameField(other *Element) error {
	if e.prime.Cmp(other.prime) != 0 {
		return fmt.Errorf("%w: %s vs %s", ErrIncompatibleField, e.prime, other.prime)
	}
	return nil
}

// reduce wraps n into [0, p) and returns it as a new element.
// big.Int.Mod is the Euclidean remainder, so negative intermediate
// results land on the correct non-negative residue.
func (e *Element) reduce(n *big.Int) *Element {
	return &Element{
		num:   n.Mod(n, e.prime),
		prime: new(big.Int).Set(e.prime),
	}
}

// Add returns e + other mod p.
func (e *Element) Add(other *Element) (*Element, error) {
	if err := e.sameField(other); err != nil {
		return nil, err
	}
	return e.reduce(new(big.Int).Add(e.num, other.num)), nil
}

// Sub returns e - other mod p.
func (e *Element) Sub(other *Element) (*Element, error) {
	if err := e.sameField(other); err != nil {
		return nil, err
	}
	return e.reduce(new(big.Int).Sub(e.num, other.num)), nil
}

// Mul returns e * other mod p.
func (e *Element) Mul(other *Element) (*Element, error) {
	if err := e.sameField(other); err != nil {
		return nil, err
	}
	return e.reduce(new(big.Int).Mul(e.num, other.num)), nil
}

// Neg returns -e mod p.
func (e *Element) Neg() *Element {
	return e.reduce(new(big.Int).Neg(e.num))
}

// Pow returns e^exp mod p.
//
// The exponent is first reduced into [0, p-1) with the Euclidean
// remainder. By Fermat's little theorem a^(p-1) = 1 for non-zero a, so
// this makes negative exponents behave as inverses of powers:
// e.Pow(-1) is the multiplicative inverse of e.
func (e *Element) Pow(exp *big.Int) *Element {
	pMinus1 := new(big.Int).Sub(e.prime, one)
	n := new(big.Int).Mod(exp, pMinus1)
	base := new(big.Int).Mod(e.num, e.prime)
	return &Element{
		num:   new(big.Int).Exp(base, n, e.prime),
		prime: new(big.Int).Set(e.prime),
	}
}

// Div returns e / other mod p, computed as e * other^(p-2) via Fermat's
// little theorem. This requires the modulus to be a true prime. Dividing
// by the zero residue returns ErrDivisionByZero.
func (e *Element) Div(other *Element) (*Element, error) {
	if err := e.sameField(other); err != nil {
		return nil, err
	}
	if other.IsZero() {
		return nil, ErrDivisionByZero
	}
	inv := other.Pow(new(big.Int).Sub(e.prime, big.NewInt(2)))
	return e.Mul(inv)
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.prime, e.num)
}
