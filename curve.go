// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import "math/big"

// curveB is the P-256 curve coefficient b, satisfying y^2 = x^3 - 3x + b.
var curveB Element

// curveN is the order of the generator, as a plain big.Int (scalars are
// reduced modulo this boundary value, never inside the constant-time core).
var curveN big.Int

// Generator is the standard P-256 base point G, in affine coordinates.
var Generator Affine

func init() {
	b, ok := new(big.Int).SetString("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	if !ok {
		panic("p256: invalid curve coefficient constant")
	}
	curveB.ToMont(b)

	if _, ok := curveN.SetString("115792089210356248762697446949407573529996955224135760342422259061068512044369", 10); !ok {
		panic("p256: invalid curve order constant")
	}

	gx, ok := new(big.Int).SetString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16)
	if !ok {
		panic("p256: invalid generator X constant")
	}
	gy, ok := new(big.Int).SetString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16)
	if !ok {
		panic("p256: invalid generator Y constant")
	}
	Generator.X.ToMont(gx)
	Generator.Y.ToMont(gy)
}

// IsOnCurve reports whether a satisfies y^2 = x^3 - 3x + b.
func IsOnCurve(a *Affine) bool {
	var lhs, rhs, x3, threeX Element
	lhs.Square(&a.Y)

	rhs.Square(&a.X)
	rhs.Mul(&rhs, &a.X)
	x3 = rhs

	threeX.Triple(&a.X)
	rhs.Sub(&x3, &threeX)
	rhs.Add(&rhs, &curveB)

	return lhs.Equal(&rhs) == 1
}

// isAffineGenerator reports whether a is exactly the standard generator,
// used to decide whether the fixed-base comb table can be used for a
// scalar multiplication.
func isAffineGenerator(a *Affine) bool {
	return a.X.Equal(&Generator.X) == 1 && a.Y.Equal(&Generator.Y) == 1
}
