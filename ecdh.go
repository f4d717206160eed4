// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

// ECDH computes the shared secret for Diffie-Hellman key exchange over
// P-256 (RFC 5903): the X coordinate of priv.D*pub, left-padded to 32
// bytes. As RFC 5903 section 9 recommends, callers should hash the result
// before using it as a symmetric key; ECDH does not do that itself.
func ECDH(priv *PrivateKey, pub *PublicKey) ([]byte, error) {
	shared := ScalarMult(priv.D, &pub.Affine)
	aff, err := shared.ToAffine()
	if err != nil {
		return nil, err
	}
	return aff.X.Bytes(), nil
}

// ECDH computes the shared secret between priv and remote. It is a thin
// wrapper around the package-level ECDH function, closer in shape to the
// standard library's crypto/ecdh API.
func (priv *PrivateKey) ECDH(remote *PublicKey) ([]byte, error) {
	return ECDH(priv, remote)
}
