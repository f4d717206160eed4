// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import "math/big"

// ScalarBaseMult computes k*G for the standard generator G using the
// precomputed comb table, and returns the result in Jacobian coordinates.
// k is reduced modulo the curve order if it is out of range.
func ScalarBaseMult(k *big.Int) *Jacobian {
	ensureGeneratorTable()

	s := newScalarBytes(k)

	const mask = (1 << (fixedBaseWindowBits + 1)) - 1

	wvalue := (uint32(s[0]) << 1) & mask
	index := fixedBaseWindowBits
	digit := boothRecodeW7(wvalue)

	var aff Affine
	selectGeneratorRow(&aff, 0, digit>>1)
	aff.CondNegateY(maskFromBit(uint64(digit & 1)))

	var p Jacobian
	p.FromAffine(&aff)

	for row := 1; row < fixedBaseRows; row++ {
		wvalue := s.window(index, fixedBaseWindowBits)
		index += fixedBaseWindowBits
		digit := boothRecodeW7(wvalue)

		var t Affine
		selectGeneratorRow(&t, row, digit>>1)
		t.CondNegateY(maskFromBit(uint64(digit & 1)))

		p.AddAffine(&p, &t)
	}

	return &p
}
