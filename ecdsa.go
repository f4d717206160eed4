// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import (
	"crypto/rand"
	"math/big"
)

// Signature is an ECDSA signature over P-256.
type Signature struct {
	R, S *big.Int
}

// Sign produces an ECDSA signature over hash, which should be the output
// of a cryptographic hash of the message, using RFC 6979-style retry
// (simple rejection, not deterministic nonce generation): a fresh random
// nonce is drawn for each attempt and the attempt is discarded if it
// yields a degenerate r or s.
func Sign(priv *PrivateKey, hash []byte) (*Signature, error) {
	e := hashToInt(hash)

	for {
		k, err := rand.Int(rand.Reader, &curveN)
		if err != nil {
			return nil, err
		}
		if k.Sign() == 0 {
			continue
		}

		p := ScalarBaseMult(k)
		aff, err := p.ToAffine()
		if err != nil {
			continue
		}
		r := aff.X.FromMont()
		r.Mod(r, &curveN)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(k, &curveN)
		if kInv == nil {
			continue
		}

		s := new(big.Int).Mul(priv.D, r)
		s.Add(s, e)
		s.Mod(s, &curveN)
		s.Mul(s, kInv)
		s.Mod(s, &curveN)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid ECDSA signature over hash by pub.
// It checks the signature using the combinator directly: it computes
// u1*G + u2*Q and compares the result's X coordinate against r, which is
// exactly the computation Mul exists to make efficient.
func Verify(pub *PublicKey, hash []byte, sig *Signature) bool {
	if sig.R.Sign() <= 0 || sig.R.Cmp(&curveN) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(&curveN) >= 0 {
		return false
	}

	e := hashToInt(hash)

	sInv := new(big.Int).ModInverse(sig.S, &curveN)
	if sInv == nil {
		return false
	}

	u1 := new(big.Int).Mul(e, sInv)
	u1.Mod(u1, &curveN)
	u2 := new(big.Int).Mul(sig.R, sInv)
	u2.Mod(u2, &curveN)

	p, err := Mul(u1, []Term{{Scalar: u2, Point: &pub.Affine}})
	if err != nil {
		return false
	}
	if p.IsInfinity() {
		return false
	}

	aff, err := p.ToAffine()
	if err != nil {
		return false
	}
	x := aff.X.FromMont()
	x.Mod(x, &curveN)

	return x.Cmp(sig.R) == 0
}

// hashToInt converts a hash to a big.Int the way ECDSA requires: the
// leftmost bits of the hash, up to the bit length of the curve order, are
// taken as the integer, with no modular reduction at this stage.
func hashToInt(hash []byte) *big.Int {
	orderBits := curveN.BitLen()
	if len(hash) > (orderBits+7)/8 {
		hash = hash[:(orderBits+7)/8]
	}
	e := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		e.Rsh(e, uint(excess))
	}
	return e
}
