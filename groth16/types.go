// Package groth16 verifies Groth16 proofs over BN254 and converts the
// verifying key, proof and public input values between their in-memory
// form, a JSON form for on-disk files, and a primitive limb form for
// crossing a zkVM host/guest boundary.
package groth16

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Inputs are the public inputs bound to a proof. Order matters: input i
// pairs with S[i+1] of the verifying key.
type Inputs []fr_bn254.Element

// VerifyingKey holds the public parameters of one circuit. S has one entry
// per public input plus the constant term S[0]. None of the points may be
// the point at infinity.
type VerifyingKey struct {
	Alpha bn254.G1Affine
	Beta  bn254.G2Affine
	Gamma bn254.G2Affine
	Delta bn254.G2Affine
	S     []bn254.G1Affine
}

// Proof is a Groth16 proof for a single statement.
type Proof struct {
	PiA bn254.G1Affine
	PiB bn254.G2Affine
	PiC bn254.G1Affine
}
