// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package p256 implements constant-time scalar multiplication on the NIST
P-256 elliptic curve (secp256r1).

This package provides the core arithmetic used by higher-level protocols
such as ECDSA and ECDH: computing k·G for the standard generator G, and
computing the linear combination k·G + Σ kᵢ·Pᵢ for arbitrary points Pᵢ.
Both operations run in constant time with respect to the scalars involved.

An overview of the features provided by this package are as follows:

  - Element, a field element modulo the P-256 prime held in Montgomery form
  - Constant-time field addition, subtraction, negation, doubling, tripling,
    halving, Montgomery multiplication and squaring
  - Constant-time modular inversion via a fixed Fermat addition chain
  - Jacobian and Affine point types with a constant-time group law: point
    doubling, point addition, and mixed affine addition
  - Booth signed-digit recoding and constant-time table selection for
    windows of size 5 and 7
  - A variable-base windowed ladder for arbitrary points
  - A fixed-base comb ladder over a precomputed table of generator multiples
  - A combinator, Mul, that computes k·G + Σ kᵢ·Pᵢ in one pass

Thin ECDSA and ECDH helpers are layered on top of the core to exercise it
the way an embedding library would, but the package makes no attempt to be
a general-purpose elliptic curve library: it supports P-256 only, it has no
non-constant-time fast path, and it never exposes field elements outside
the Montgomery domain except at the explicit ToMont, FromMont, SetBytes and
Bytes boundary operations.
*/
package p256
