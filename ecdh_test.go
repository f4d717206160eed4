// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import (
	"bytes"
	"testing"
)

// TestECDHAgreement checks that both sides of a Diffie-Hellman exchange
// compute the same shared secret.
func TestECDHAgreement(t *testing.T) {
	privA, pubA, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	privB, pubB, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	secretA, err := ECDH(privA, pubB)
	if err != nil {
		t.Fatal(err)
	}
	secretB, err := ECDH(privB, pubA)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(secretA, secretB) {
		t.Fatalf("shared secrets disagree: %x vs %x", secretA, secretB)
	}

	secretAMethod, err := privA.ECDH(pubB)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(secretA, secretAMethod) {
		t.Fatalf("method form disagrees with function form")
	}
}
