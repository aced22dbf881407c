package groth16

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

var (
	// ErrInvalidInputCount is returned when len(inputs)+1 != len(vk.S).
	ErrInvalidInputCount = errors.New("groth16: input count does not match verifying key")

	// ErrProofRejected is returned when the pairing product was computed
	// but is not the identity. This is the normal outcome for an invalid
	// proof, not a fault.
	ErrProofRejected = errors.New("groth16: proof rejected, pairing product is not one")

	// ErrPairingFailure is returned when the pairing itself cannot be
	// computed, i.e. the inputs are algebraically malformed.
	ErrPairingFailure = errors.New("groth16: pairing computation failed")
)

// Verify checks proof against vk and the public inputs. It accepts iff
//
//	e(-pi_a, pi_b) * e(alpha, beta) * e(p, gamma) * e(pi_c, delta) == 1
//
// where p = S[0] + Σ inputs[i]·S[i+1]. The four pairs share one Miller
// loop and a single final exponentiation.
//
// A nil return means the proof is accepted. Rejection (ErrProofRejected)
// and computation faults (ErrPairingFailure) are distinguishable with
// errors.Is. Verification is pure and deterministic.
func Verify(vk *VerifyingKey, proof *Proof, inputs Inputs) error {
	if len(inputs)+1 != len(vk.S) {
		return fmt.Errorf("%w: %d inputs for %d key terms", ErrInvalidInputCount, len(inputs), len(vk.S))
	}

	// p = S[0] + Σ inputs[i]·S[i+1], accumulated in jacobian coordinates
	var p bn254.G1Jac
	if len(inputs) > 0 {
		if _, err := p.MultiExp(vk.S[1:], inputs, ecc.MultiExpConfig{}); err != nil {
			return fmt.Errorf("%w: %v", ErrPairingFailure, err)
		}
	}
	p.AddMixed(&vk.S[0])
	var pAff bn254.G1Affine
	pAff.FromJacobian(&p)

	var piANeg bn254.G1Affine
	piANeg.Neg(&proof.PiA)

	ml, err := bn254.MillerLoop(
		[]bn254.G1Affine{piANeg, vk.Alpha, pAff, proof.PiC},
		[]bn254.G2Affine{proof.PiB, vk.Beta, vk.Gamma, vk.Delta},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPairingFailure, err)
	}

	// the final exponentiation is undefined on a non-invertible Miller
	// loop output
	var zero bn254.GT
	if ml.Equal(&zero) {
		return ErrPairingFailure
	}

	res := bn254.FinalExponentiation(&ml)
	var one bn254.GT
	one.SetOne()
	if !res.Equal(&one) {
		return ErrProofRejected
	}
	return nil
}
