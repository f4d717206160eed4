// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import (
	"math/big"
	"math/bits"
)

// Element is a field element modulo the P-256 prime
//
//	p = 2^256 - 2^224 + 2^192 + 2^96 - 1
//
// held as four 64-bit limbs in little-endian order.  Unless documented
// otherwise, every Element produced by a method of this package is fully
// reduced into [0, p) and is expressed in the Montgomery domain, that is,
// it stores a·R mod p for the logical value a, with R = 2^256.  Conversion
// to and from the Montgomery domain only happens at the explicit ToMont
// and FromMont boundary operations.
//
// Every method here is written to be constant-time with respect to the
// values of its operands: the control flow depends only on the fixed
// number of limbs, never on limb contents.
type Element [4]uint64

// p256P is the P-256 prime, least-significant limb first.
var p256P = Element{
	0xffffffffffffffff,
	0x00000000ffffffff,
	0x0000000000000000,
	0xffffffff00000001,
}

// p256Zero is the additive identity.
var p256Zero = Element{0, 0, 0, 0}

// p256Big is the prime p as a big.Int, used only at the to-big/from-big
// boundary (ToMont, FromMont, SetBytes, Bytes) and never inside the
// constant-time ladders.
//
// This is a var initializer rather than an init() assignment so that it (and
// the p256NegPInv/p256RInv values derived from it below) are guaranteed to be
// set before any package init() function runs, regardless of file order.
var p256Big = mustBigIntFromString("115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)

// p256NegPInv is -p^-1 mod 2^64, the Montgomery reduction constant for the
// least significant limb. It is derived once, from p256P, rather than
// hard-coded, since it is fully determined by the prime.
var p256NegPInv = computeP256NegPInv()

// p256RInv is R^-1 mod p, where R = 2^256. It is used by FromMont, and like
// p256NegPInv is derived once rather than hard-coded.
var p256RInv = computeP256RInv()

func mustBigIntFromString(s string, base int) big.Int {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic("p256: invalid big.Int constant")
	}
	return *v
}

func computeP256NegPInv() uint64 {
	// n0 = -p0^-1 mod 2^64.
	mod64 := new(big.Int).Lsh(big.NewInt(1), 64)
	p0 := new(big.Int).SetUint64(p256P[0])
	inv := new(big.Int).ModInverse(p0, mod64)
	neg := new(big.Int).Sub(mod64, inv)
	return neg.Uint64()
}

func computeP256RInv() big.Int {
	// R^-1 mod p, where R mod p is obtained by shifting 1 left 256 bits.
	r := new(big.Int).Lsh(big.NewInt(1), 256)
	r.Mod(r, &p256Big)
	var out big.Int
	out.ModInverse(r, &p256Big)
	return out
}

// One sets e = 1 (in the Montgomery domain) and returns e.
func (e *Element) One() *Element {
	return e.ToMont(bigOne)
}

var bigOne = big.NewInt(1)

// Zero sets e = 0 and returns e.
func (e *Element) Zero() *Element {
	*e = p256Zero
	return e
}

// Set sets e = a and returns e.
func (e *Element) Set(a *Element) *Element {
	*e = *a
	return e
}

// add64 adds a+b+carryIn, returning the sum and the carry out.
func add64(a, b, carryIn uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carryIn)
}

// sub64 computes a-b-borrowIn, returning the difference and the borrow out.
func sub64(a, b, borrowIn uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrowIn)
}

// add4 computes t = a+b as a 4-limb sum plus a carry-out limb.
func add4(a, b *Element) (t Element, carry uint64) {
	t[0], carry = add64(a[0], b[0], 0)
	t[1], carry = add64(a[1], b[1], carry)
	t[2], carry = add64(a[2], b[2], carry)
	t[3], carry = add64(a[3], b[3], carry)
	return t, carry
}

// sub4 computes t = a-b as a 4-limb difference plus a borrow-out bit.
func sub4(a, b *Element) (t Element, borrow uint64) {
	t[0], borrow = sub64(a[0], b[0], 0)
	t[1], borrow = sub64(a[1], b[1], borrow)
	t[2], borrow = sub64(a[2], b[2], borrow)
	t[3], borrow = sub64(a[3], b[3], borrow)
	return t, borrow
}

// maskFromBit turns a single 0/1 value into an all-zero or all-one mask,
// without branching on it.
func maskFromBit(bit uint64) uint64 {
	return 0 - bit
}

// selectElement sets out to a if mask is all-ones, or to b if mask is
// all-zero, in constant time.
func selectElement(out, a, b *Element, mask uint64) {
	for i := range out {
		out[i] = (a[i] & mask) | (b[i] &^ mask)
	}
}

// Add sets e = a+b mod p and returns e.
func (e *Element) Add(a, b *Element) *Element {
	sum, carry := add4(a, b)
	// sum is at most 2p-2 plus a carry bit, so at most one conditional
	// subtraction of p is needed.
	reduced, borrow := sub4(&sum, &p256P)
	// If the subtraction borrowed and there was no carry out of the initial
	// addition, sum was already below p; keep it. Otherwise use reduced.
	useReduced := maskFromBit(carry) | ^maskFromBit(borrow)
	selectElement(e, &reduced, &sum, useReduced)
	return e
}

// Sub sets e = a-b mod p and returns e.
func (e *Element) Sub(a, b *Element) *Element {
	diff, borrow := sub4(a, b)
	added, _ := add4(&diff, &p256P)
	selectElement(e, &added, &diff, maskFromBit(borrow))
	return e
}

// Negate sets e = -a mod p and returns e.
func (e *Element) Negate(a *Element) *Element {
	return e.Sub(&p256Zero, a)
}

// Double sets e = 2a mod p and returns e.
func (e *Element) Double(a *Element) *Element {
	return e.Add(a, a)
}

// Triple sets e = 3a mod p and returns e.
func (e *Element) Triple(a *Element) *Element {
	var doubled Element
	doubled.Double(a)
	return e.Add(&doubled, a)
}

// shiftRight1 shifts a 5-limb value (4 limbs plus a carry limb which only
// ever holds 0 or 1) right by one bit.
func shiftRight1(t *Element, carry uint64) Element {
	var out Element
	out[3] = (t[3] >> 1) | (carry << 63)
	out[2] = (t[2] >> 1) | (t[3] << 63)
	out[1] = (t[1] >> 1) | (t[2] << 63)
	out[0] = (t[0] >> 1) | (t[1] << 63)
	return out
}

// Halve sets e = a/2 mod p and returns e.
func (e *Element) Halve(a *Element) *Element {
	odd := a[0] & 1
	mask := maskFromBit(odd)
	var masked Element
	for i := range masked {
		masked[i] = p256P[i] & mask
	}
	sum, carry := add4(a, &masked)
	*e = shiftRight1(&sum, carry)
	return e
}

// IsZero returns 1 if e == 0 and 0 otherwise.
func (e *Element) IsZero() int {
	var acc uint64
	for _, w := range e {
		acc |= w
	}
	// acc == 0 iff e is zero.
	acc |= 0 - acc
	return int(1 - (acc >> 63))
}

// Equal returns 1 if e == a and 0 otherwise.
func (e *Element) Equal(a *Element) int {
	var diff Element
	diff.Sub(e, a)
	return diff.IsZero()
}

// montgomeryMul computes out = a*b*R^-1 mod p using the classic
// separated-operand-scanning Montgomery multiplication: a 4x4 schoolbook
// product followed by four reduction rounds that each cancel one
// least-significant limb by adding a multiple of p.
func montgomeryMul(out *Element, a, b *Element) {
	var t [9]uint64 // t[8] is an overflow guard, always <= 1 in practice.

	// Schoolbook multiply: t = a*b, 8 limbs.
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			lo, c1 := add64(lo, t[i+j], 0)
			lo, c2 := add64(lo, carry, 0)
			t[i+j] = lo
			carry = hi + c1 + c2
		}
		t[i+4] += carry
	}

	// Montgomery reduction: four rounds, each cancels t[i].
	for i := 0; i < 4; i++ {
		m := t[i] * p256NegPInv
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(m, p256P[j])
			lo, c1 := add64(lo, t[i+j], 0)
			lo, c2 := add64(lo, carry, 0)
			t[i+j] = lo
			carry = hi + c1 + c2
		}
		// Propagate the carry through the remaining limbs unconditionally,
		// so the number of operations never depends on data.
		for k := i + 4; k < 9; k++ {
			t[k], carry = add64(t[k], carry, 0)
		}
	}

	var result Element
	copy(result[:], t[4:8])
	reduced, borrow := sub4(&result, &p256P)
	// t[8] can only be 1 when the true value is >= 2^256 and therefore also
	// >= p, in which case the subtraction must be taken regardless of borrow.
	useReduced := ^maskFromBit(borrow) | maskFromBit(t[8])
	selectElement(out, &reduced, &result, useReduced)
}

// Mul sets e = a*b*R^-1 mod p (Montgomery multiplication) and returns e.
func (e *Element) Mul(a, b *Element) *Element {
	montgomeryMul(e, a, b)
	return e
}

// Square sets e = a*a*R^-1 mod p and returns e.
func (e *Element) Square(a *Element) *Element {
	montgomeryMul(e, a, a)
	return e
}

// ToMont sets e to the Montgomery representation of x, i.e. e = x*R mod p,
// and returns e. x is treated as a plain, non-negative integer; the
// conversion itself runs on the boundary big.Int and is not required to be
// constant-time, mirroring how generic BIGNUM-to-field-element encoding
// works in the embedding library this core serves.
func (e *Element) ToMont(x *big.Int) *Element {
	v := new(big.Int).Lsh(x, 256)
	v.Mod(v, &p256Big)
	e.fromBigRaw(v)
	return e
}

// FromMont returns, as a new big.Int, the plain integer represented by e in
// the Montgomery domain, i.e. e*R^-1 mod p.
func (e *Element) FromMont() *big.Int {
	v := e.toBigRaw()
	v.Mul(v, &p256RInv)
	v.Mod(v, &p256Big)
	return v
}

// fromBigRaw sets e's limbs directly from x, with no Montgomery
// interpretation; x must already be reduced mod p.
func (e *Element) fromBigRaw(x *big.Int) {
	var buf [32]byte
	x.FillBytes(buf[:])
	for i := 0; i < 4; i++ {
		var w uint64
		for j := 0; j < 8; j++ {
			w = w<<8 | uint64(buf[(3-i)*8+j])
		}
		e[i] = w
	}
}

// toBigRaw returns e's limbs as a plain integer, with no Montgomery
// interpretation.
func (e *Element) toBigRaw() *big.Int {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		w := e[i]
		for j := 0; j < 8; j++ {
			buf[31-(i*8+j)] = byte(w)
			w >>= 8
		}
	}
	return new(big.Int).SetBytes(buf[:])
}

// SetBytes sets e to the Montgomery representation of the big-endian,
// 32-byte encoding of a field element and returns e. It returns
// ErrOutOfRange if the encoded value is not less than p.
func (e *Element) SetBytes(b []byte) (*Element, error) {
	if len(b) != 32 {
		return nil, errorf(ErrOutOfRange, "p256: invalid field element length %d", len(b))
	}
	x := new(big.Int).SetBytes(b)
	if x.Cmp(&p256Big) >= 0 {
		return nil, errorf(ErrOutOfRange, "p256: field element out of range")
	}
	return e.ToMont(x), nil
}

// Bytes returns the big-endian, 32-byte encoding of e, converting out of
// the Montgomery domain first.
func (e *Element) Bytes() []byte {
	var buf [32]byte
	e.FromMont().FillBytes(buf[:])
	return buf[:]
}
