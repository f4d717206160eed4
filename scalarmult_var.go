// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import "math/big"

// varBaseWindowBits is the window size used by the variable-base ladder.
const varBaseWindowBits = 5

// varBaseTableSize is the number of stored multiples per point, 2^5/2:
// row k (0-based) holds (k+1)*P.
const varBaseTableSize = 1 << (varBaseWindowBits - 1)

// varBaseTable holds the multiples 1*P .. varBaseTableSize*P of a single
// point, in Jacobian coordinates, built by successive addition.
type varBaseTable [varBaseTableSize]Jacobian

func buildVarBaseTable(p *Jacobian) *varBaseTable {
	var t varBaseTable
	t[0] = *p
	for k := 1; k < varBaseTableSize; k++ {
		t[k].Add(&t[k-1], p)
	}
	return &t
}

// selectVarTableEntry sets out to the point of magnitude m in t (or the
// point at infinity when m is 0), via a constant-time linear scan.
func selectVarTableEntry(out *Jacobian, t *varBaseTable, m uint32) {
	var zero Jacobian
	zero.SetInfinity()
	*out = zero
	physIdx := m - 1 // wraps to an unmatchable value when m == 0
	for k := 0; k < varBaseTableSize; k++ {
		mask := equalMask32(uint32(k), physIdx)
		selectJacobian(out, &t[k], out, mask)
	}
}

// scalarMultVarTerm is one (scalar, point) pair fed into the variable-base
// ladder.
type scalarMultVarTerm struct {
	scalar scalarBytes
	table  *varBaseTable
}

// scalarMultVar computes sum(terms[i].scalar * terms[i].point) using the
// windowed, Booth-recoded ladder with a 5-bit window, doubling the
// accumulator five times between windows. It always processes every term on
// every step, so its running time depends only on the number of terms, not
// on any scalar's value.
func scalarMultVar(terms []scalarMultVarTerm) *Jacobian {
	var r Jacobian
	r.SetInfinity()
	if len(terms) == 0 {
		return &r
	}

	const mask = (1 << (varBaseWindowBits + 1)) - 1

	index := 255
	wvalue := uint32(terms[0].scalar[(index-1)/8])
	wvalue = (wvalue >> uint((index-1)%8)) & mask
	digit := boothRecodeW5(wvalue)

	var h Jacobian
	selectVarTableEntry(&h, terms[0].table, digit>>1)
	h.CondNegateY(maskFromBit(uint64(digit & 1)))
	r.Add(&r, &h)

	for index >= varBaseWindowBits {
		start := 0
		if index == 255 {
			start = 1
		}
		for i := start; i < len(terms); i++ {
			wvalue := terms[i].scalar.window(index, varBaseWindowBits)
			digit := boothRecodeW5(wvalue)

			selectVarTableEntry(&h, terms[i].table, digit>>1)
			h.CondNegateY(maskFromBit(uint64(digit & 1)))
			r.Add(&r, &h)
		}

		index -= varBaseWindowBits
		for i := 0; i < varBaseWindowBits; i++ {
			r.Double(&r)
		}
	}

	for i := 0; i < len(terms); i++ {
		wvalue := uint32(terms[i].scalar[0])
		wvalue = (wvalue << 1) & mask
		digit := boothRecodeW5(wvalue)

		selectVarTableEntry(&h, terms[i].table, digit>>1)
		h.CondNegateY(maskFromBit(uint64(digit & 1)))
		r.Add(&r, &h)
	}

	return &r
}

// ScalarMult computes k*p for an arbitrary point p and returns the result
// in Jacobian coordinates. k is reduced modulo the curve order if it is
// out of range. When p is exactly the standard generator, ScalarMult takes
// the fixed-base comb ladder instead of building a fresh one-off table.
// (Mul in multiscalar.go makes no such check: it uses the comb ladder only
// for its own generator scalar and sends every Term through scalarMultVar.)
func ScalarMult(k *big.Int, p *Affine) *Jacobian {
	if isAffineGenerator(p) {
		return ScalarBaseMult(k)
	}

	var jp Jacobian
	jp.FromAffine(p)
	table := buildVarBaseTable(&jp)
	terms := []scalarMultVarTerm{{scalar: newScalarBytes(k), table: table}}
	return scalarMultVar(terms)
}
