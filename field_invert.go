// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

// Invert sets e = a^-1 mod p and returns e, using Fermat's little theorem
// (a^(p-2) = a^-1 mod p) computed via a fixed addition chain built out of
// 255 squarings and 13 multiplications. p-2 is
//
//	ffffffff 00000001 00000000 00000000 00000000 ffffffff ffffffff fffffffd
//
// The chain accumulates p2 = a^(2^2-1), p4 = a^(2^4-1), p8 = a^(2^8-1),
// p16 = a^(2^16-1) and p32 = a^(2^32-1) along the way, then combines them
// with the input to hit every run of set bits in p-2. The sequence of
// squarings and multiplications is fixed regardless of a, so this runs in
// constant time. If a is zero the result is zero, matching the convention
// that the point at infinity's Z coordinate inverts to zero.
func (e *Element) Invert(a *Element) *Element {
	var res, p2, p4, p8, p16, p32 Element

	res.Square(a)
	p2.Mul(&res, a) // a^3

	res.Square(&p2)
	res.Square(&res)
	p4.Mul(&res, &p2) // a^0xf

	res.Square(&p4)
	res.Square(&res)
	res.Square(&res)
	res.Square(&res)
	p8.Mul(&res, &p4) // a^0xff

	res.Square(&p8)
	for i := 0; i < 7; i++ {
		res.Square(&res)
	}
	p16.Mul(&res, &p8) // a^0xffff

	res.Square(&p16)
	for i := 0; i < 15; i++ {
		res.Square(&res)
	}
	p32.Mul(&res, &p16) // a^0xffffffff

	res.Square(&p32)
	for i := 0; i < 31; i++ {
		res.Square(&res)
	}
	res.Mul(&res, a)

	for i := 0; i < 32*4; i++ {
		res.Square(&res)
	}
	res.Mul(&res, &p32)

	for i := 0; i < 32; i++ {
		res.Square(&res)
	}
	res.Mul(&res, &p32)

	for i := 0; i < 16; i++ {
		res.Square(&res)
	}
	res.Mul(&res, &p16)

	for i := 0; i < 8; i++ {
		res.Square(&res)
	}
	res.Mul(&res, &p8)

	res.Square(&res)
	res.Square(&res)
	res.Square(&res)
	res.Square(&res)
	res.Mul(&res, &p4)

	res.Square(&res)
	res.Square(&res)
	res.Mul(&res, &p2)

	res.Square(&res)
	res.Square(&res)
	res.Mul(&res, a)

	*e = res
	return e
}
