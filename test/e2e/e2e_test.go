package e2e

import (
	"crypto/rand"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ec-algebra/pkg/curve"
	"github.com/smallyu/go-ec-algebra/pkg/field"
)

// TestSecp256k1AgainstLibrary drives the generic group law over the
// secp256k1 base field and checks every result against the dedicated
// secp256k1 implementation.
func TestSecp256k1AgainstLibrary(t *testing.T) {
	g, err := curve.Secp256k1Generator()
	if err != nil {
		t.Fatalf("Secp256k1Generator failed: %v", err)
	}
	lib := secp256k1.S256()
	p := lib.Params().P

	for i := 0; i < 8; i++ {
		k, err := rand.Int(rand.Reader, lib.Params().N)
		if err != nil {
			t.Fatalf("rand.Int failed: %v", err)
		}

		got, err := g.ScalarMul(k)
		if err != nil {
			t.Fatalf("ScalarMul failed: %v", err)
		}

		wantX, wantY := lib.ScalarBaseMult(k.Bytes())
		if !got.X().Equal(field.New(wantX, p)) || !got.Y().Equal(field.New(wantY, p)) {
			t.Errorf("k=%s: generic law disagrees with secp256k1 library", k)
		}
	}
}

// TestSecp256k1AddAgainstLibrary checks chord addition of two unrelated
// points against the library.
func TestSecp256k1AddAgainstLibrary(t *testing.T) {
	g, err := curve.Secp256k1Generator()
	if err != nil {
		t.Fatalf("Secp256k1Generator failed: %v", err)
	}
	lib := secp256k1.S256()
	p := lib.Params().P

	p1, err := g.ScalarMul(big.NewInt(1234))
	if err != nil {
		t.Fatalf("ScalarMul failed: %v", err)
	}
	p2, err := g.ScalarMul(big.NewInt(987654321))
	if err != nil {
		t.Fatalf("ScalarMul failed: %v", err)
	}

	sum, err := p1.Add(p2)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	wantX, wantY := lib.Add(p1.X().Num(), p1.Y().Num(), p2.X().Num(), p2.Y().Num())
	if !sum.X().Equal(field.New(wantX, p)) || !sum.Y().Equal(field.New(wantY, p)) {
		t.Errorf("chord addition disagrees with secp256k1 library")
	}
}

// TestFermatInversionAgainstEdwards25519 checks the Fermat inverse in
// pkg/field against edwards25519's scalar inversion. The ed25519 group
// order l is prime, so both must agree on Z/lZ.
func TestFermatInversionAgainstEdwards25519(t *testing.T) {
	// l = 2^252 + 27742317777372353535851937790883648493
	l, ok := new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	if !ok {
		t.Fatal("bad order literal")
	}

	for i := 0; i < 8; i++ {
		n, err := rand.Int(rand.Reader, l)
		if err != nil {
			t.Fatalf("rand.Int failed: %v", err)
		}
		if n.Sign() == 0 {
			continue
		}

		// Our inverse: 1/n computed as n^(l-2) mod l.
		one := field.New(big.NewInt(1), l)
		inv, err := one.Div(field.New(n, l))
		if err != nil {
			t.Fatalf("Div failed: %v", err)
		}

		// Library inverse.
		s, err := edwards25519.NewScalar().SetCanonicalBytes(littleEndian32(n))
		if err != nil {
			t.Fatalf("SetCanonicalBytes failed: %v", err)
		}
		libInv := edwards25519.NewScalar().Invert(s)

		want := new(big.Int).SetBytes(reverse(libInv.Bytes()))
		if inv.Num().Cmp(want) != 0 {
			t.Errorf("n=%s: Fermat inverse %s, edwards25519 inverse %s", n, inv.Num(), want)
		}
	}
}

// TestToyCurveScenario exercises the full integer-domain walkthrough end
// to end: construct, add, double, cancel.
func TestToyCurveScenario(t *testing.T) {
	c := curve.NewCurve(5, 7)

	p1, err := c.NewPointInt64(2, 5)
	if err != nil {
		t.Fatalf("NewPoint failed: %v", err)
	}
	p2, err := c.NewPointInt64(-1, -1)
	if err != nil {
		t.Fatalf("NewPoint failed: %v", err)
	}

	sum, err := p1.Add(p2)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	want, err := c.NewPointInt64(3, -7)
	if err != nil {
		t.Fatalf("NewPoint failed: %v", err)
	}
	if !sum.Equal(want) {
		t.Errorf("(2,5)+(-1,-1) = %s, want %s", sum, want)
	}

	double, err := p2.Add(p2)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	want, err = c.NewPointInt64(18, 77)
	if err != nil {
		t.Fatalf("NewPoint failed: %v", err)
	}
	if !double.Equal(want) {
		t.Errorf("2*(-1,-1) = %s, want %s", double, want)
	}

	cancel, err := p2.Add(p2.Neg())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !cancel.IsInfinity() {
		t.Errorf("P + (-P) = %s, want infinity", cancel)
	}
}

// littleEndian32 returns n as 32 little-endian bytes.
func littleEndian32(n *big.Int) []byte {
	return reverse(n.FillBytes(make([]byte, 32)))
}

// reverse returns a byte-reversed copy.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
