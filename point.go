// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

// Jacobian is a point on the P-256 curve in Jacobian projective
// coordinates: affine (x, y) = (X/Z^2, Y/Z^3). Z == 0 represents the point
// at infinity, by convention with no requirement on X or Y in that case.
// All three coordinates are Elements, i.e. held in the Montgomery domain.
type Jacobian struct {
	X, Y, Z Element
}

// Affine is a point on the P-256 curve in affine coordinates. The pair
// (0, 0), which is not on the curve, is used as the sentinel for the point
// at infinity: table selection returns it for magnitude 0, and FromAffine
// maps it to a Jacobian point with Z = 0.
type Affine struct {
	X, Y Element
}

// SetInfinity sets p to the point at infinity and returns p.
func (p *Jacobian) SetInfinity() *Jacobian {
	p.X.Zero()
	p.Y.Zero()
	p.Z.Zero()
	return p
}

// IsInfinity reports whether p is the point at infinity.
func (p *Jacobian) IsInfinity() bool {
	return p.Z.IsZero() == 1
}

// Set sets p = a and returns p.
func (p *Jacobian) Set(a *Jacobian) *Jacobian {
	*p = *a
	return p
}

// FromAffine sets p to a, with an implicit Z = 1, and returns p. The affine
// coordinate pair (0, 0), which never occurs on the curve since b != 0, is
// reserved as the encoding of the point at infinity produced by a
// constant-time table scan that found no matching entry.
func (p *Jacobian) FromAffine(a *Affine) *Jacobian {
	p.X = a.X
	p.Y = a.Y

	var one Element
	one.One()
	isInfinity := uint64(a.X.IsZero() & a.Y.IsZero())
	selectElement(&p.Z, &p256Zero, &one, maskFromBit(isInfinity))
	return p
}

// selectJacobian sets out to a if mask is all-ones, or b if mask is
// all-zero.
func selectJacobian(out, a, b *Jacobian, mask uint64) {
	selectElement(&out.X, &a.X, &b.X, mask)
	selectElement(&out.Y, &a.Y, &b.Y, mask)
	selectElement(&out.Z, &a.Z, &b.Z, mask)
}

// selectAffine sets out to a if mask is all-ones, or b if mask is
// all-zero.
func selectAffine(out, a, b *Affine, mask uint64) {
	selectElement(&out.X, &a.X, &b.X, mask)
	selectElement(&out.Y, &a.Y, &b.Y, mask)
}

// CondNegateY negates p.Y in place when mask is all-ones, and leaves it
// unchanged when mask is zero. It is used to realize the sign bit produced
// by Booth recoding without branching.
func (p *Jacobian) CondNegateY(mask uint64) *Jacobian {
	var neg Element
	neg.Negate(&p.Y)
	selectElement(&p.Y, &neg, &p.Y, mask)
	return p
}

// CondNegateY negates a.Y in place when mask is all-ones.
func (a *Affine) CondNegateY(mask uint64) *Affine {
	var neg Element
	neg.Negate(&a.Y)
	selectElement(&a.Y, &neg, &a.Y, mask)
	return a
}

// Double sets p = 2*a and returns p, using the standard a=-3 Jacobian
// doubling formula.
func (p *Jacobian) Double(a *Jacobian) *Jacobian {
	var delta, gamma, beta, alpha, t0, t1, t2 Element

	delta.Square(&a.Z)
	gamma.Square(&a.Y)
	beta.Mul(&a.X, &gamma)

	t0.Sub(&a.X, &delta)
	t1.Add(&a.X, &delta)
	alpha.Mul(&t0, &t1)
	alpha.Triple(&alpha)

	var x3, y3, z3 Element
	x3.Square(&alpha)
	t0.Double(&beta)
	t0.Double(&t0)
	t0.Double(&t0)
	x3.Sub(&x3, &t0)

	t1.Double(&beta)
	t1.Double(&t1)
	t1.Sub(&t1, &x3)
	y3.Mul(&alpha, &t1)
	t2.Square(&gamma)
	t2.Double(&t2)
	t2.Double(&t2)
	t2.Double(&t2)
	y3.Sub(&y3, &t2)

	t0.Add(&a.Y, &a.Z)
	z3.Square(&t0)
	z3.Sub(&z3, &gamma)
	z3.Sub(&z3, &delta)

	p.X, p.Y, p.Z = x3, y3, z3
	return p
}

// addJacobianGeneric computes the full Jacobian point addition formula
// without handling the degenerate cases (equal points, infinities); the
// caller is responsible for masking those in.
func addJacobianGeneric(a, b *Jacobian) (x3, y3, z3, h, r Element) {
	var z1z1, z2z2, u1, u2, s1, s2, i, j, v, t0, t1 Element

	z1z1.Square(&a.Z)
	z2z2.Square(&b.Z)
	u1.Mul(&a.X, &z2z2)
	u2.Mul(&b.X, &z1z1)
	s1.Mul(&a.Y, &b.Z)
	s1.Mul(&s1, &z2z2)
	s2.Mul(&b.Y, &a.Z)
	s2.Mul(&s2, &z1z1)

	h.Sub(&u2, &u1)
	r.Sub(&s2, &s1)
	r.Double(&r)

	t0.Double(&h)
	i.Square(&t0)
	j.Mul(&h, &i)
	v.Mul(&u1, &i)

	x3.Square(&r)
	x3.Sub(&x3, &j)
	t1.Double(&v)
	x3.Sub(&x3, &t1)

	t0.Sub(&v, &x3)
	y3.Mul(&r, &t0)
	t1.Mul(&s1, &j)
	t1.Double(&t1)
	y3.Sub(&y3, &t1)

	t0.Add(&a.Z, &b.Z)
	t0.Square(&t0)
	t0.Sub(&t0, &z1z1)
	t0.Sub(&t0, &z2z2)
	z3.Mul(&t0, &h)

	return x3, y3, z3, h, r
}

// Add sets p = a+b and returns p. It handles the point-at-infinity and
// equal-input (doubling) cases in constant time by always evaluating every
// branch and selecting the right one at the end, rather than branching on
// secret point values.
func (p *Jacobian) Add(a, b *Jacobian) *Jacobian {
	x3, y3, z3, h, r := addJacobianGeneric(a, b)
	generic := Jacobian{X: x3, Y: y3, Z: z3}

	var doubled Jacobian
	doubled.Double(a)

	sameX := maskFromBit(uint64(h.IsZero()))
	sameY := maskFromBit(uint64(r.IsZero()))
	isDouble := sameX & sameY
	isOppositeInverse := sameX &^ sameY

	var result Jacobian
	selectJacobian(&result, &doubled, &generic, isDouble)
	var infinity Jacobian
	infinity.SetInfinity()
	selectJacobian(&result, &infinity, &result, isOppositeInverse)

	aInf := maskFromBit(uint64(a.Z.IsZero()))
	bInf := maskFromBit(uint64(b.Z.IsZero()))
	selectJacobian(&result, b, &result, aInf)
	selectJacobian(&result, a, &result, bInf&^aInf)

	*p = result
	return p
}

// AddAffine sets p = a+b, where b is given in affine coordinates (implicit
// Z=1), and returns p. This is the "mixed addition" used while walking a
// precomputed table of affine multiples.
func (p *Jacobian) AddAffine(a *Jacobian, b *Affine) *Jacobian {
	var bj Jacobian
	bj.FromAffine(b)
	return p.Add(a, &bj)
}

// ToAffine converts p to affine coordinates and returns the result, along
// with an error if p is the point at infinity.
func (p *Jacobian) ToAffine() (*Affine, error) {
	if p.IsInfinity() {
		return nil, makeError(ErrPointAtInfinity, "p256: cannot convert point at infinity to affine coordinates")
	}

	var zInv, zInv2, zInv3 Element
	zInv.Invert(&p.Z)
	zInv2.Square(&zInv)
	zInv3.Mul(&zInv2, &zInv)

	var a Affine
	a.X.Mul(&p.X, &zInv2)
	a.Y.Mul(&p.Y, &zInv3)
	return &a, nil
}
