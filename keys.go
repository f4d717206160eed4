// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import (
	"crypto/rand"
	"math/big"
)

// PrivateKey is a P-256 private scalar.
type PrivateKey struct {
	D *big.Int
}

// PublicKey is a P-256 public point.
type PublicKey struct {
	Affine
}

// GenerateKey generates a new private key using crypto/rand, and returns
// both it and the corresponding public key.
func GenerateKey() (*PrivateKey, *PublicKey, error) {
	nMinusOne := new(big.Int).Sub(&curveN, bigOne)

	var d *big.Int
	for {
		var err error
		d, err = rand.Int(rand.Reader, nMinusOne)
		if err != nil {
			return nil, nil, err
		}
		d.Add(d, bigOne)
		if d.Sign() != 0 {
			break
		}
	}

	priv := &PrivateKey{D: d}
	return priv, priv.Public(), nil
}

// Public computes the public key corresponding to priv.
func (priv *PrivateKey) Public() *PublicKey {
	p := ScalarBaseMult(priv.D)
	aff, err := p.ToAffine()
	if err != nil {
		// Only reachable if D is a multiple of the curve order, which
		// GenerateKey never produces; callers constructing PrivateKey
		// directly with a degenerate D get the zero public key.
		return &PublicKey{}
	}
	return &PublicKey{Affine: *aff}
}
