// Package curve implements the group law on Weierstrass elliptic curves
// y^2 = x^3 + a*x + b in affine coordinates.
//
// Two coordinate domains are provided and never mix: Curve/Point work on
// unrestricted integers with exact division (the generic core, useful for
// curves over the rationals and for small worked examples), while
// FieldCurve/FieldPoint work on prime-field elements with field division
// (the domain real cryptographic curves live in).
package curve

import (
	"fmt"
	"math/big"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Curve holds the coefficients of a Weierstrass curve over the integers.
// It acts as a context object: points are created through it and carry a
// reference back to it.
type Curve struct {
	a, b *big.Int
}

// NewCurve creates an integer-domain curve y^2 = x^3 + a*x + b.
func NewCurve(a, b int64) *Curve {
	return NewCurveBig(big.NewInt(a), big.NewInt(b))
}

// NewCurveBig is NewCurve for arbitrary-precision coefficients.
func NewCurveBig(a, b *big.Int) *Curve {
	return &Curve{
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
	}
}

// A returns a copy of the a coefficient.
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns a copy of the b coefficient.
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// Equal reports whether both curves have the same coefficients.
func (c *Curve) Equal(other *Curve) bool {
	if other == nil {
		return false
	}
	return c.a.Cmp(other.a) == 0 && c.b.Cmp(other.b) == 0
}

// polynomial evaluates x^3 + a*x + b.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Mul(r, x)
	ax := new(big.Int).Mul(c.a, x)
	r.Add(r, ax)
	return r.Add(r, c.b)
}

// Point is a point on an integer-domain curve: either a finite (x, y)
// pair satisfying the curve equation, or the group identity (infinity).
// Points are immutable.
type Point struct {
	curve    *Curve
	x, y     *big.Int
	infinity bool
}

// NewPoint creates a finite point, verifying that (x, y) satisfies the
// curve equation exactly. Returns ErrInvalidPoint otherwise.
func (c *Curve) NewPoint(x, y *big.Int) (*Point, error) {
	y2 := new(big.Int).Mul(y, y)
	if y2.Cmp(c.polynomial(x)) != 0 {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrInvalidPoint, x, y)
	}
	return &Point{
		curve: c,
		x:     new(big.Int).Set(x),
		y:     new(big.Int).Set(y),
	}, nil
}

// NewPointInt64 is NewPoint for int64 coordinates.
func (c *Curve) NewPointInt64(x, y int64) (*Point, error) {
	return c.NewPoint(big.NewInt(x), big.NewInt(y))
}

// NewInfinity returns the identity element of the curve group.
func (c *Curve) NewInfinity() *Point {
	return &Point{curve: c, infinity: true}
}

// Curve returns the curve context the point belongs to.
func (p *Point) Curve() *Curve {
	return p.curve
}

// IsInfinity reports whether the point is the group identity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// X returns a copy of the x coordinate, or nil for the identity.
func (p *Point) X() *big.Int {
	if p.infinity {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the identity.
func (p *Point) Y() *big.Int {
	if p.infinity {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether other is present and is the same point on a
// curve with the same coefficients. A nil operand is never equal.
func (p *Point) Equal(other *Point) bool {
	if other == nil || !p.curve.Equal(other.curve) {
		return false
	}
	if p.infinity || other.infinity {
		return p.infinity && other.infinity
	}
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// Neg returns the additive inverse (x, -y). The identity is its own
// inverse.
func (p *Point) Neg() *Point {
	if p.infinity {
		return p
	}
	return &Point{
		curve: p.curve,
		x:     new(big.Int).Set(p.x),
		y:     new(big.Int).Neg(p.y),
	}
}

// Add applies the group law. The case analysis:
//
//  1. Either operand is the identity: the result is the other operand.
//  2. Same x, same y (doubling): identity when y = 0 (vertical
//     tangent), otherwise the tangent-line construction.
//  3. Same x, different y (mutual inverses): identity.
//  4. Different x: the chord-line construction.
//
// Slopes are computed with truncated integer division. When the slope is
// not an exact integer the constructed point fails the closing curve
// check and ErrInvalidPoint is returned; points with integer slopes (as
// in all worked examples) add cleanly.
func (p *Point) Add(other *Point) (*Point, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrCurveMismatch)
	}
	if !p.curve.Equal(other.curve) {
		return nil, fmt.Errorf("%w: y^2 = x^3 + %s*x + %s vs y^2 = x^3 + %s*x + %s",
			ErrCurveMismatch, p.curve.a, p.curve.b, other.curve.a, other.curve.b)
	}

	// 1. Identity law.
	if p.infinity {
		return other, nil
	}
	if other.infinity {
		return p, nil
	}

	var slope *big.Int
	if p.x.Cmp(other.x) == 0 {
		if p.y.Cmp(other.y) != 0 {
			// 3. Vertical line through mutual inverses.
			return p.curve.NewInfinity(), nil
		}
		// 2. Doubling.
		if p.y.Sign() == 0 {
			// Vertical tangent.
			return p.curve.NewInfinity(), nil
		}
		// slope = (3*x^2 + a) / (2*y)
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, three)
		num.Add(num, p.curve.a)
		den := new(big.Int).Mul(two, p.y)
		slope = num.Quo(num, den)
	} else {
		// 4. Chord through two distinct points.
		// slope = (y2 - y1) / (x2 - x1)
		num := new(big.Int).Sub(other.y, p.y)
		den := new(big.Int).Sub(other.x, p.x)
		slope = num.Quo(num, den)
	}

	// x3 = slope^2 - x1 - x2
	x3 := new(big.Int).Mul(slope, slope)
	x3.Sub(x3, p.x)
	x3.Sub(x3, other.x)

	// y3 = slope*(x1 - x3) - y1
	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, slope)
	y3.Sub(y3, p.y)

	return p.curve.NewPoint(x3, y3)
}

// ScalarMul returns k*P by double-and-add. A negative k multiplies the
// negated point; k = 0 yields the identity.
func (p *Point) ScalarMul(k *big.Int) (*Point, error) {
	base := p
	if k.Sign() < 0 {
		base = p.Neg()
		k = new(big.Int).Neg(k)
	}

	result := p.curve.NewInfinity()
	var err error
	for i := k.BitLen() - 1; i >= 0; i-- {
		result, err = result.Add(result)
		if err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			result, err = result.Add(base)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// String implements fmt.Stringer.
func (p *Point) String() string {
	if p.infinity {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)", p.x, p.y)
}
