package groth16

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// The primitive representation mirrors every domain value as a fixed-shape
// tree of unsigned 64-bit words, so it can be serialized cheaply across a
// zkVM host/guest boundary. Field elements appear as their canonical
// little-endian limbs, out of Montgomery form.

// FpLimbs is the primitive form of a base field element.
type FpLimbs [fp.Limbs]uint64

// FrLimbs is the primitive form of a scalar field element.
type FrLimbs [fr_bn254.Limbs]uint64

// Fp2Limbs is the primitive form of a quadratic extension element, in
// (c0, c1) order.
type Fp2Limbs [2]FpLimbs

// G1Repr is an affine G1 point as (x, y). Only finite points are
// representable.
type G1Repr [2]FpLimbs

// G2Repr is an affine G2 point as (x, y).
type G2Repr [2]Fp2Limbs

// InputsRepr holds the public inputs, order preserved.
type InputsRepr []FrLimbs

// ProofRepr is a proof in declared field order.
type ProofRepr struct {
	PiA G1Repr
	PiB G2Repr
	PiC G1Repr
}

// VerifyingKeyRepr is a verifying key in declared field order.
type VerifyingKeyRepr struct {
	Alpha G1Repr
	Beta  G2Repr
	Gamma G2Repr
	Delta G2Repr
	S     []G1Repr
}

func bigFromLimbs(limbs []uint64) *big.Int {
	// limb 0 is least significant; big.Int wants big-endian bytes
	buf := make([]byte, 8*len(limbs))
	for i, l := range limbs {
		binary.BigEndian.PutUint64(buf[len(buf)-8*(i+1):], l)
	}
	return new(big.Int).SetBytes(buf)
}

func fpFromLimbs(l FpLimbs) fp.Element {
	var e fp.Element
	e.SetBigInt(bigFromLimbs(l[:]))
	return e
}

func frFromLimbs(l FrLimbs) fr_bn254.Element {
	var e fr_bn254.Element
	e.SetBigInt(bigFromLimbs(l[:]))
	return e
}

func g1Repr(p *bn254.G1Affine) G1Repr {
	if p.IsInfinity() {
		panic("groth16: encoding the G1 point at infinity")
	}
	return G1Repr{FpLimbs(p.X.Bits()), FpLimbs(p.Y.Bits())}
}

func g2Repr(p *bn254.G2Affine) G2Repr {
	if p.IsInfinity() {
		panic("groth16: encoding the G2 point at infinity")
	}
	return G2Repr{
		{FpLimbs(p.X.A0.Bits()), FpLimbs(p.X.A1.Bits())},
		{FpLimbs(p.Y.A0.Bits()), FpLimbs(p.Y.A1.Bits())},
	}
}

// Point reconstructs the affine point. The result is always treated as
// finite; the infinity case has no representation.
func (r G1Repr) Point() bn254.G1Affine {
	return bn254.G1Affine{X: fpFromLimbs(r[0]), Y: fpFromLimbs(r[1])}
}

// Point reconstructs the affine point.
func (r G2Repr) Point() bn254.G2Affine {
	var p bn254.G2Affine
	p.X.A0 = fpFromLimbs(r[0][0])
	p.X.A1 = fpFromLimbs(r[0][1])
	p.Y.A0 = fpFromLimbs(r[1][0])
	p.Y.A1 = fpFromLimbs(r[1][1])
	return p
}

// Repr converts the proof to primitive form. Panics if any point is the
// point at infinity: valid proofs never contain it.
func (p *Proof) Repr() ProofRepr {
	return ProofRepr{
		PiA: g1Repr(&p.PiA),
		PiB: g2Repr(&p.PiB),
		PiC: g1Repr(&p.PiC),
	}
}

// Proof reconstructs the typed proof.
func (r ProofRepr) Proof() Proof {
	return Proof{
		PiA: r.PiA.Point(),
		PiB: r.PiB.Point(),
		PiC: r.PiC.Point(),
	}
}

// Repr converts the verifying key to primitive form. Panics if any point
// is the point at infinity.
func (vk *VerifyingKey) Repr() VerifyingKeyRepr {
	r := VerifyingKeyRepr{
		Alpha: g1Repr(&vk.Alpha),
		Beta:  g2Repr(&vk.Beta),
		Gamma: g2Repr(&vk.Gamma),
		Delta: g2Repr(&vk.Delta),
		S:     make([]G1Repr, len(vk.S)),
	}
	for i := range vk.S {
		r.S[i] = g1Repr(&vk.S[i])
	}
	return r
}

// VerifyingKey reconstructs the typed verifying key.
func (r VerifyingKeyRepr) VerifyingKey() VerifyingKey {
	vk := VerifyingKey{
		Alpha: r.Alpha.Point(),
		Beta:  r.Beta.Point(),
		Gamma: r.Gamma.Point(),
		Delta: r.Delta.Point(),
		S:     make([]bn254.G1Affine, len(r.S)),
	}
	for i := range r.S {
		vk.S[i] = r.S[i].Point()
	}
	return vk
}

// Repr converts the public inputs to primitive form, order preserved.
func (in Inputs) Repr() InputsRepr {
	r := make(InputsRepr, len(in))
	for i := range in {
		r[i] = FrLimbs(in[i].Bits())
	}
	return r
}

// Inputs reconstructs the typed public inputs.
func (r InputsRepr) Inputs() Inputs {
	in := make(Inputs, len(r))
	for i := range r {
		in[i] = frFromLimbs(r[i])
	}
	return in
}
