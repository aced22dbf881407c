// Package guest models the execution-environment boundary of a zkVM guest
// program: the host serializes a (batch size, inputs, proof, verifying
// key) tuple into a flat wire form, and the guest reconstructs the typed
// values and asserts that verification succeeds for every batch unit.
package guest

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zkbatch/groth16-bn254/groth16"
)

// Batch is the tuple the host hands to the guest.
type Batch struct {
	Size   uint32
	Inputs groth16.InputsRepr
	Proof  groth16.ProofRepr
	VK     groth16.VerifyingKeyRepr
}

// The wire form is a little-endian stream of unsigned words, in write
// order: batch size (u32), input count (u32) and the input limbs, the
// proof limbs, the fixed verifying key limbs, then the S length (u32) and
// the S limbs. Variable-length sequences are the only length-prefixed
// parts; everything else has a fixed shape.

// Encode writes the batch in wire form.
func Encode(w io.Writer, b *Batch) error {
	if err := binary.Write(w, binary.LittleEndian, b.Size); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b.Inputs))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, []groth16.FrLimbs(b.Inputs)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, b.Proof); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, b.VK.Alpha); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, b.VK.Beta); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, b.VK.Gamma); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, b.VK.Delta); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b.VK.S))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, b.VK.S)
}

// Decode reads a batch from wire form.
func Decode(r io.Reader) (*Batch, error) {
	var b Batch
	if err := binary.Read(r, binary.LittleEndian, &b.Size); err != nil {
		return nil, fmt.Errorf("guest: batch size: %w", err)
	}
	var nInputs uint32
	if err := binary.Read(r, binary.LittleEndian, &nInputs); err != nil {
		return nil, fmt.Errorf("guest: input count: %w", err)
	}
	b.Inputs = make(groth16.InputsRepr, nInputs)
	if err := binary.Read(r, binary.LittleEndian, []groth16.FrLimbs(b.Inputs)); err != nil {
		return nil, fmt.Errorf("guest: inputs: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &b.Proof); err != nil {
		return nil, fmt.Errorf("guest: proof: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &b.VK.Alpha); err != nil {
		return nil, fmt.Errorf("guest: vk alpha: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &b.VK.Beta); err != nil {
		return nil, fmt.Errorf("guest: vk beta: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &b.VK.Gamma); err != nil {
		return nil, fmt.Errorf("guest: vk gamma: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &b.VK.Delta); err != nil {
		return nil, fmt.Errorf("guest: vk delta: %w", err)
	}
	var nS uint32
	if err := binary.Read(r, binary.LittleEndian, &nS); err != nil {
		return nil, fmt.Errorf("guest: vk s length: %w", err)
	}
	b.VK.S = make([]groth16.G1Repr, nS)
	if err := binary.Read(r, binary.LittleEndian, b.VK.S); err != nil {
		return nil, fmt.Errorf("guest: vk s: %w", err)
	}
	return &b, nil
}

// Run replays the guest side of the boundary: decode the wire form,
// reconstruct the typed values and verify once per batch unit. A nil
// return is the only success signal; the guest produces no output value.
func Run(r io.Reader) error {
	b, err := Decode(r)
	if err != nil {
		return err
	}
	vk := b.VK.VerifyingKey()
	proof := b.Proof.Proof()
	inputs := b.Inputs.Inputs()
	for i := uint32(0); i < b.Size; i++ {
		if err := groth16.Verify(&vk, &proof, inputs); err != nil {
			return fmt.Errorf("guest: batch unit %d: %w", i, err)
		}
	}
	return nil
}
