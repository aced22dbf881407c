// Package cubic proves a small demo circuit with gnark and converts the
// resulting key, proof and public witness into this module's types. It
// backs the known-vector tests and the sample command; the verifier core
// never depends on it.
package cubic

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	gnarkgroth16 "github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/zkbatch/groth16-bn254/groth16"
)

// Circuit proves knowledge of x such that x**3 + x + 5 == y.
type Circuit struct {
	X frontend.Variable `gnark:"x"`
	Y frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	x3 := api.Mul(c.X, c.X, c.X)
	api.AssertIsEqual(c.Y, api.Add(x3, c.X, 5))
	return nil
}

// Generate compiles the circuit, runs a setup and produces one valid
// (vk, proof, inputs) triple in this module's types.
func Generate() (groth16.VerifyingKey, groth16.Proof, groth16.Inputs, error) {
	var vk groth16.VerifyingKey
	var proof groth16.Proof

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &Circuit{})
	if err != nil {
		return vk, proof, nil, fmt.Errorf("frontend.Compile::%w", err)
	}
	pk, gvk, err := gnarkgroth16.Setup(ccs) // UNSAFE! sample data only
	if err != nil {
		return vk, proof, nil, fmt.Errorf("groth16.Setup::%w", err)
	}
	secretWitness, err := frontend.NewWitness(&Circuit{X: 3, Y: 35}, ecc.BN254.ScalarField())
	if err != nil {
		return vk, proof, nil, fmt.Errorf("frontend.NewWitness::%w", err)
	}
	gproof, err := gnarkgroth16.Prove(ccs, pk, secretWitness)
	if err != nil {
		return vk, proof, nil, fmt.Errorf("groth16.Prove::%w", err)
	}
	publicWitness, err := secretWitness.Public()
	if err != nil {
		return vk, proof, nil, fmt.Errorf("witness.Public::%w", err)
	}

	vk = FromGnarkVerifyingKey(gvk.(*groth16_bn254.VerifyingKey))
	proof = FromGnarkProof(gproof.(*groth16_bn254.Proof))
	inputs := groth16.Inputs(publicWitness.Vector().(fr_bn254.Vector))
	return vk, proof, inputs, nil
}

// FromGnarkVerifyingKey maps gnark's bn254 backend key onto the plain
// four-pairing verifying key. The commitment extension is unused by this
// circuit.
func FromGnarkVerifyingKey(vk *groth16_bn254.VerifyingKey) groth16.VerifyingKey {
	return groth16.VerifyingKey{
		Alpha: vk.G1.Alpha,
		Beta:  vk.G2.Beta,
		Gamma: vk.G2.Gamma,
		Delta: vk.G2.Delta,
		S:     vk.G1.K,
	}
}

// FromGnarkProof maps gnark's bn254 backend proof: Ar is pi_a, Bs is pi_b
// and Krs is pi_c.
func FromGnarkProof(proof *groth16_bn254.Proof) groth16.Proof {
	return groth16.Proof{
		PiA: proof.Ar,
		PiB: proof.Bs,
		PiC: proof.Krs,
	}
}
