// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import "math/big"

// maxVarBaseTerms bounds the number of variable-base terms a single Mul
// call accepts, precluding the size_t/int overflows that unbounded table
// allocation would otherwise risk.
const maxVarBaseTerms = 1 << 24

// Term is one (scalar, point) pair in a multi-scalar multiplication.
type Term struct {
	Scalar *big.Int
	Point  *Affine
}

// Mul computes k*G + sum(terms[i].Scalar*terms[i].Point) and returns the
// result in Jacobian coordinates. k may be nil to omit the generator term.
// Mul returns ErrTooManyTerms if len(terms) exceeds the bound this package
// enforces to keep table construction free of integer overflow.
func Mul(k *big.Int, terms []Term) (*Jacobian, error) {
	if k == nil && len(terms) == 0 {
		var inf Jacobian
		inf.SetInfinity()
		return &inf, nil
	}

	if len(terms) > maxVarBaseTerms {
		return nil, errorf(ErrTooManyTerms, "p256: %d terms exceeds the maximum of %d", len(terms), maxVarBaseTerms)
	}

	var baseResult *Jacobian
	if k != nil {
		baseResult = ScalarBaseMult(k)
	}

	if len(terms) == 0 {
		return baseResult, nil
	}

	varTerms := make([]scalarMultVarTerm, len(terms))
	for i, term := range terms {
		var jp Jacobian
		jp.FromAffine(term.Point)
		varTerms[i] = scalarMultVarTerm{
			scalar: newScalarBytes(term.Scalar),
			table:  buildVarBaseTable(&jp),
		}
	}
	varResult := scalarMultVar(varTerms)

	if baseResult == nil {
		return varResult, nil
	}

	var result Jacobian
	result.Add(baseResult, varResult)
	return &result, nil
}
