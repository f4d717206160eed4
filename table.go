// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import "sync"

// fixedBaseWindowBits is the window size used by the fixed-base comb
// ladder in scalarmult_base.go.
const fixedBaseWindowBits = 7

// fixedBaseRows is the number of comb rows, i.e. ceil(256/7).
const fixedBaseRows = 37

// fixedBaseEntriesPerRow is the number of stored multiples per row,
// 2^fixedBaseWindowBits / 2: Booth recoding of an 8-bit window yields a
// signed digit whose magnitude covers every integer in
// [0, fixedBaseEntriesPerRow], so entry k (0-based) of row i holds
// (k+1)*2^(7i)*G, and
// magnitude 0 (the point at infinity) is never stored.
const fixedBaseEntriesPerRow = 1 << (fixedBaseWindowBits - 1)

// generatorTable holds, for each row i in [0, fixedBaseRows), the affine
// points (k+1)*2^(7i)*G for k in [0, fixedBaseEntriesPerRow). It is built
// once, lazily, from the public generator using the package's own group
// law, the same way the example ports build their base-point tables at
// init time instead of shipping a literal constant blob.
var generatorTable [fixedBaseRows][fixedBaseEntriesPerRow]Affine

var generatorTableOnce sync.Once

func buildGeneratorTable() {
	var rowBase Jacobian
	rowBase.FromAffine(&Generator)

	for row := 0; row < fixedBaseRows; row++ {
		cur := rowBase
		affine, err := cur.ToAffine()
		if err != nil {
			panic(err)
		}
		generatorTable[row][0] = *affine

		for k := 1; k < fixedBaseEntriesPerRow; k++ {
			cur.Add(&cur, &rowBase)
			affine, err := cur.ToAffine()
			if err != nil {
				panic(err)
			}
			generatorTable[row][k] = *affine
		}

		for i := 0; i < fixedBaseWindowBits; i++ {
			rowBase.Double(&rowBase)
		}
	}
}

// ensureGeneratorTable builds the fixed-base table on first use.
func ensureGeneratorTable() {
	generatorTableOnce.Do(buildGeneratorTable)
}

// selectGeneratorRow sets out to the point of magnitude m in the given row
// (or the point at infinity, represented as Affine{0,0}, when m is 0),
// using a constant-time linear scan so the access pattern never depends on
// the secret magnitude.
func selectGeneratorRow(out *Affine, row int, m uint32) {
	var zero Affine
	*out = zero
	physIdx := m - 1 // wraps to an unmatchable value when m == 0
	for k := 0; k < fixedBaseEntriesPerRow; k++ {
		mask := equalMask32(uint32(k), physIdx)
		selectAffine(out, &generatorTable[row][k], out, mask)
	}
}
