package groth16

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// fieldByteLen is the fixed byte width of a field element.
const fieldByteLen = 32

// G1JSON is the on-disk form of a G1 point: [x, y].
type G1JSON [2]string

// G2JSON is the on-disk form of a G2 point: [[x0, x1], [y0, y1]].
type G2JSON [2][2]string

type ProofJSON struct {
	PiA G1JSON `json:"pi_a"`
	PiB G2JSON `json:"pi_b"`
	PiC G1JSON `json:"pi_c"`
}

type VerifyingKeyJSON struct {
	Alpha G1JSON   `json:"alpha"`
	Beta  G2JSON   `json:"beta"`
	Gamma G2JSON   `json:"gamma"`
	Delta G2JSON   `json:"delta"`
	S     []G1JSON `json:"s"`
}

type InputsJSON []string

// bigFromFieldText parses the textual form of a field element. A decimal
// numeral is the canonical form; a 0x prefix selects the hex form, which
// reads the byte-aligned digit string as the element's fixed 32-byte
// encoding (an odd digit count gets one leading zero nibble).
func bigFromFieldText(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") {
		b, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid decimal numeral %q", s)
		}
		return b, nil
	}

	digits := s[2:]
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("invalid hex numeral %q: %w", s, err)
	}
	if len(raw) > fieldByteLen {
		return nil, fmt.Errorf("hex numeral %q is %d bytes, field elements hold %d", s, len(raw), fieldByteLen)
	}
	return new(big.Int).SetBytes(raw), nil
}

func fpFromText(s string) (fp.Element, error) {
	var e fp.Element
	b, err := bigFromFieldText(s)
	if err != nil {
		return e, err
	}
	e.SetBigInt(b)
	return e, nil
}

func frFromText(s string) (fr_bn254.Element, error) {
	var e fr_bn254.Element
	b, err := bigFromFieldText(s)
	if err != nil {
		return e, err
	}
	e.SetBigInt(b)
	return e, nil
}

// Point decodes the [x, y] pair. The decoded point is always finite.
func (j G1JSON) Point() (bn254.G1Affine, error) {
	var p bn254.G1Affine
	var err error
	if p.X, err = fpFromText(j[0]); err != nil {
		return p, fmt.Errorf("g1 x: %w", err)
	}
	if p.Y, err = fpFromText(j[1]); err != nil {
		return p, fmt.Errorf("g1 y: %w", err)
	}
	return p, nil
}

// Point decodes the [[x0, x1], [y0, y1]] pair. The decoded point is always
// finite.
func (j G2JSON) Point() (bn254.G2Affine, error) {
	var p bn254.G2Affine
	var err error
	if p.X.A0, err = fpFromText(j[0][0]); err != nil {
		return p, fmt.Errorf("g2 x0: %w", err)
	}
	if p.X.A1, err = fpFromText(j[0][1]); err != nil {
		return p, fmt.Errorf("g2 x1: %w", err)
	}
	if p.Y.A0, err = fpFromText(j[1][0]); err != nil {
		return p, fmt.Errorf("g2 y0: %w", err)
	}
	if p.Y.A1, err = fpFromText(j[1][1]); err != nil {
		return p, fmt.Errorf("g2 y1: %w", err)
	}
	return p, nil
}

func g1JSON(p *bn254.G1Affine) G1JSON {
	if p.IsInfinity() {
		panic("groth16: encoding the G1 point at infinity")
	}
	return G1JSON{p.X.String(), p.Y.String()}
}

func g2JSON(p *bn254.G2Affine) G2JSON {
	if p.IsInfinity() {
		panic("groth16: encoding the G2 point at infinity")
	}
	return G2JSON{
		{p.X.A0.String(), p.X.A1.String()},
		{p.Y.A0.String(), p.Y.A1.String()},
	}
}

// Proof decodes the typed proof.
func (j ProofJSON) Proof() (Proof, error) {
	var p Proof
	var err error
	if p.PiA, err = j.PiA.Point(); err != nil {
		return p, fmt.Errorf("pi_a: %w", err)
	}
	if p.PiB, err = j.PiB.Point(); err != nil {
		return p, fmt.Errorf("pi_b: %w", err)
	}
	if p.PiC, err = j.PiC.Point(); err != nil {
		return p, fmt.Errorf("pi_c: %w", err)
	}
	return p, nil
}

// JSON encodes the proof. Field elements are emitted in decimal.
func (p *Proof) JSON() ProofJSON {
	return ProofJSON{
		PiA: g1JSON(&p.PiA),
		PiB: g2JSON(&p.PiB),
		PiC: g1JSON(&p.PiC),
	}
}

// VerifyingKey decodes the typed verifying key.
func (j VerifyingKeyJSON) VerifyingKey() (VerifyingKey, error) {
	var vk VerifyingKey
	var err error
	if vk.Alpha, err = j.Alpha.Point(); err != nil {
		return vk, fmt.Errorf("alpha: %w", err)
	}
	if vk.Beta, err = j.Beta.Point(); err != nil {
		return vk, fmt.Errorf("beta: %w", err)
	}
	if vk.Gamma, err = j.Gamma.Point(); err != nil {
		return vk, fmt.Errorf("gamma: %w", err)
	}
	if vk.Delta, err = j.Delta.Point(); err != nil {
		return vk, fmt.Errorf("delta: %w", err)
	}
	vk.S = make([]bn254.G1Affine, len(j.S))
	for i := range j.S {
		if vk.S[i], err = j.S[i].Point(); err != nil {
			return vk, fmt.Errorf("s[%d]: %w", i, err)
		}
	}
	return vk, nil
}

// JSON encodes the verifying key. Field elements are emitted in decimal.
func (vk *VerifyingKey) JSON() VerifyingKeyJSON {
	j := VerifyingKeyJSON{
		Alpha: g1JSON(&vk.Alpha),
		Beta:  g2JSON(&vk.Beta),
		Gamma: g2JSON(&vk.Gamma),
		Delta: g2JSON(&vk.Delta),
		S:     make([]G1JSON, len(vk.S)),
	}
	for i := range vk.S {
		j.S[i] = g1JSON(&vk.S[i])
	}
	return j
}

// Inputs decodes the typed public inputs, order preserved.
func (j InputsJSON) Inputs() (Inputs, error) {
	in := make(Inputs, len(j))
	var err error
	for i := range j {
		if in[i], err = frFromText(j[i]); err != nil {
			return nil, fmt.Errorf("inputs[%d]: %w", i, err)
		}
	}
	return in, nil
}

// JSON encodes the public inputs in decimal.
func (in Inputs) JSON() InputsJSON {
	j := make(InputsJSON, len(in))
	for i := range in {
		j[i] = in[i].String()
	}
	return j
}

// LoadVerifyingKey reads and decodes a verifying key JSON file. Errors
// carry the file path; callers treat them as unrecoverable input faults.
func LoadVerifyingKey(path string) (VerifyingKey, error) {
	var j VerifyingKeyJSON
	if err := readJSON(path, &j); err != nil {
		return VerifyingKey{}, err
	}
	vk, err := j.VerifyingKey()
	if err != nil {
		return VerifyingKey{}, fmt.Errorf("%s: %w", path, err)
	}
	return vk, nil
}

// LoadProof reads and decodes a proof JSON file.
func LoadProof(path string) (Proof, error) {
	var j ProofJSON
	if err := readJSON(path, &j); err != nil {
		return Proof{}, err
	}
	p, err := j.Proof()
	if err != nil {
		return Proof{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadInputs reads and decodes a public inputs JSON file.
func LoadInputs(path string) (Inputs, error) {
	var j InputsJSON
	if err := readJSON(path, &j); err != nil {
		return nil, err
	}
	in, err := j.Inputs()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
