// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import (
	"crypto/sha256"
	"math/big"
	"testing"
)

// TestSignVerifyRoundTrip checks that a freshly generated key can sign a
// message and have that signature verify.
func TestSignVerifyRoundTrip(t *testing.T) {
	priv, pub, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	hash := sha256.Sum256([]byte("the quick brown fox"))
	sig, err := Sign(priv, hash[:])
	if err != nil {
		t.Fatal(err)
	}

	if !Verify(pub, hash[:], sig) {
		t.Fatalf("signature failed to verify")
	}
}

// TestVerifyRejectsWrongHash checks that a signature does not verify
// against a different message.
func TestVerifyRejectsWrongHash(t *testing.T) {
	priv, pub, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	hash := sha256.Sum256([]byte("message one"))
	sig, err := Sign(priv, hash[:])
	if err != nil {
		t.Fatal(err)
	}

	otherHash := sha256.Sum256([]byte("message two"))
	if Verify(pub, otherHash[:], sig) {
		t.Fatalf("signature should not verify against a different hash")
	}
}

// TestVerifyRejectsWrongKey checks that a signature does not verify under
// a different public key.
func TestVerifyRejectsWrongKey(t *testing.T) {
	priv1, _, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	_, pub2, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	hash := sha256.Sum256([]byte("message"))
	sig, err := Sign(priv1, hash[:])
	if err != nil {
		t.Fatal(err)
	}

	if Verify(pub2, hash[:], sig) {
		t.Fatalf("signature should not verify under an unrelated key")
	}
}

// TestVerifyRejectsOutOfRangeSignature checks that signatures with R or S
// outside [1, n-1] are rejected before any point arithmetic runs.
func TestVerifyRejectsOutOfRangeSignature(t *testing.T) {
	_, pub, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	hash := sha256.Sum256([]byte("message"))

	zero := &Signature{R: big.NewInt(0), S: big.NewInt(1)}
	if Verify(pub, hash[:], zero) {
		t.Fatalf("signature with R=0 should not verify")
	}

	tooBig := &Signature{R: new(big.Int).Set(&curveN), S: big.NewInt(1)}
	if Verify(pub, hash[:], tooBig) {
		t.Fatalf("signature with R=n should not verify")
	}
}
