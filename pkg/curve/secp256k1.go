package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ec-algebra/pkg/field"
)

// Secp256k1 returns the secp256k1 curve y^2 = x^3 + 7 as a generic
// prime-field curve. The parameters come from the secp256k1 library's
// own instance rather than being restated here; secp256k1 is a Koblitz
// curve, so a = 0.
func Secp256k1() (*FieldCurve, error) {
	params := secp256k1.S256().Params()
	return NewFieldCurve(
		field.New(big.NewInt(0), params.P),
		field.New(params.B, params.P),
	)
}

// Secp256k1Generator returns the base point G of secp256k1 as a generic
// field point.
func Secp256k1Generator() (*FieldPoint, error) {
	c, err := Secp256k1()
	if err != nil {
		return nil, err
	}
	params := secp256k1.S256().Params()
	return c.NewPoint(
		field.New(params.Gx, params.P),
		field.New(params.Gy, params.P),
	)
}

// Secp256k1Order returns the order n of the secp256k1 base point.
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}
