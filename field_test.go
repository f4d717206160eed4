// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import (
	"errors"
	"math/big"
	"testing"
)

func bigFromHex(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad test constant: " + s)
	}
	return x
}

// TestMontRoundTrip ensures converting a value into the Montgomery domain
// and back recovers the original value.
func TestMontRoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"1",
		"2",
		"ffffffff00000001000000000000000000000000fffffffffffffffffffffe",
		"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	}

	for _, in := range tests {
		x := bigFromHex(in)
		x.Mod(x, &p256Big)

		var e Element
		e.ToMont(x)
		got := e.FromMont()

		if got.Cmp(x) != 0 {
			t.Errorf("round trip mismatch for %s: got %s", in, got.Text(16))
		}
	}
}

// TestAddSubNegate checks basic field identities using big.Int as the
// reference implementation.
func TestAddSubNegate(t *testing.T) {
	a := bigFromHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	b := bigFromHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")
	a.Mod(a, &p256Big)
	b.Mod(b, &p256Big)

	var ea, eb, sum, diff, neg Element
	ea.ToMont(a)
	eb.ToMont(b)

	sum.Add(&ea, &eb)
	wantSum := new(big.Int).Add(a, b)
	wantSum.Mod(wantSum, &p256Big)
	if sum.FromMont().Cmp(wantSum) != 0 {
		t.Errorf("Add mismatch: got %s want %s", sum.FromMont().Text(16), wantSum.Text(16))
	}

	diff.Sub(&ea, &eb)
	wantDiff := new(big.Int).Sub(a, b)
	wantDiff.Mod(wantDiff, &p256Big)
	if diff.FromMont().Cmp(wantDiff) != 0 {
		t.Errorf("Sub mismatch: got %s want %s", diff.FromMont().Text(16), wantDiff.Text(16))
	}

	neg.Negate(&ea)
	wantNeg := new(big.Int).Neg(a)
	wantNeg.Mod(wantNeg, &p256Big)
	if neg.FromMont().Cmp(wantNeg) != 0 {
		t.Errorf("Negate mismatch: got %s want %s", neg.FromMont().Text(16), wantNeg.Text(16))
	}

	var zero Element
	zero.Negate(&zero)
	if zero.IsZero() != 1 {
		t.Errorf("Negate(0) should be 0")
	}
}

// TestMulSquareInvert exercises Montgomery multiplication, squaring and
// inversion against big.Int arithmetic.
func TestMulSquareInvert(t *testing.T) {
	a := bigFromHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	a.Mod(a, &p256Big)

	var ea, prod, sq, inv, check Element
	ea.ToMont(a)

	prod.Mul(&ea, &ea)
	sq.Square(&ea)
	if prod.FromMont().Cmp(sq.FromMont()) != 0 {
		t.Errorf("Mul(a,a) != Square(a)")
	}

	wantSq := new(big.Int).Mul(a, a)
	wantSq.Mod(wantSq, &p256Big)
	if sq.FromMont().Cmp(wantSq) != 0 {
		t.Errorf("Square mismatch: got %s want %s", sq.FromMont().Text(16), wantSq.Text(16))
	}

	inv.Invert(&ea)
	check.Mul(&inv, &ea)
	if check.FromMont().Cmp(bigOne) != 0 {
		t.Errorf("a * a^-1 != 1, got %s", check.FromMont().Text(16))
	}

	var zero, zeroInv Element
	zeroInv.Invert(&zero)
	if zeroInv.IsZero() != 1 {
		t.Errorf("Invert(0) should be 0, got %s", zeroInv.FromMont().Text(16))
	}
}

// TestDoubleTripleHalve checks Double and Triple against big.Int arithmetic,
// and Halve by doubling its result back.
func TestDoubleTripleHalve(t *testing.T) {
	a := bigFromHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")
	a.Mod(a, &p256Big)

	var ea, dbl, triple, halved, doubledBack Element
	ea.ToMont(a)

	dbl.Double(&ea)
	wantDbl := new(big.Int).Lsh(a, 1)
	wantDbl.Mod(wantDbl, &p256Big)
	if dbl.FromMont().Cmp(wantDbl) != 0 {
		t.Errorf("Double mismatch: got %s want %s", dbl.FromMont().Text(16), wantDbl.Text(16))
	}

	triple.Triple(&ea)
	wantTriple := new(big.Int).Mul(a, big.NewInt(3))
	wantTriple.Mod(wantTriple, &p256Big)
	if triple.FromMont().Cmp(wantTriple) != 0 {
		t.Errorf("Triple mismatch: got %s want %s", triple.FromMont().Text(16), wantTriple.Text(16))
	}

	halved.Halve(&ea)
	doubledBack.Double(&halved)
	if doubledBack.FromMont().Cmp(a) != 0 {
		t.Errorf("Double(Halve(a)) != a")
	}
}

// TestSetBytesOutOfRange ensures a 32-byte value equal to or greater than p
// is rejected.
func TestSetBytesOutOfRange(t *testing.T) {
	var buf [32]byte
	p256Big.FillBytes(buf[:])

	var e Element
	_, err := e.SetBytes(buf[:])
	if err == nil {
		t.Fatalf("expected error for value == p")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("wrong error kind: %v", err)
	}
}
