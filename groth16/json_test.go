package groth16

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValues builds a valid key/proof/input set from generator
// multiples. The proof does not verify; codec tests only need well-formed
// finite points.
func sampleValues() (VerifyingKey, Proof, Inputs) {
	_, _, g1, g2 := bn254.Generators()

	g1Mul := func(k int64) bn254.G1Affine {
		var p bn254.G1Affine
		p.ScalarMultiplication(&g1, big.NewInt(k))
		return p
	}
	g2Mul := func(k int64) bn254.G2Affine {
		var p bn254.G2Affine
		p.ScalarMultiplication(&g2, big.NewInt(k))
		return p
	}

	vk := VerifyingKey{
		Alpha: g1Mul(2),
		Beta:  g2Mul(3),
		Gamma: g2Mul(5),
		Delta: g2Mul(7),
		S:     []bn254.G1Affine{g1Mul(11), g1Mul(13), g1Mul(17)},
	}
	proof := Proof{
		PiA: g1Mul(19),
		PiB: g2Mul(23),
		PiC: g1Mul(29),
	}
	inputs := make(Inputs, 2)
	inputs[0].SetUint64(35)
	inputs[1].SetString("21888242871839275222246405745257275088548364400416034343698204186575808495616")
	return vk, proof, inputs
}

func TestProofJSONRoundTrip(t *testing.T) {
	_, proof, _ := sampleValues()

	decoded, err := proof.JSON().Proof()
	require.NoError(t, err)
	assert.Equal(t, proof, decoded)
}

func TestVerifyingKeyJSONRoundTrip(t *testing.T) {
	vk, _, _ := sampleValues()

	decoded, err := vk.JSON().VerifyingKey()
	require.NoError(t, err)
	assert.Equal(t, vk, decoded)
}

func TestInputsJSONRoundTrip(t *testing.T) {
	_, _, inputs := sampleValues()

	decoded, err := inputs.JSON().Inputs()
	require.NoError(t, err)
	assert.Equal(t, inputs, decoded)
}

func TestJSONShape(t *testing.T) {
	vk, proof, _ := sampleValues()

	rawProof, err := json.Marshal(proof.JSON())
	require.NoError(t, err)
	for _, key := range []string{`"pi_a"`, `"pi_b"`, `"pi_c"`} {
		assert.Contains(t, string(rawProof), key)
	}

	rawVK, err := json.Marshal(vk.JSON())
	require.NoError(t, err)
	for _, key := range []string{`"alpha"`, `"beta"`, `"gamma"`, `"delta"`, `"s"`} {
		assert.Contains(t, string(rawVK), key)
	}
	// decimal out, never hex
	assert.NotContains(t, string(rawVK), "0x")
}

func TestFieldTextHexDecimalEquivalence(t *testing.T) {
	cases := []struct {
		dec string
		hex string
	}{
		{"0", "0x0"},
		{"1", "0x1"},
		{"2748", "0xabc"}, // odd digit count, left-padded nibble
		{"3735928559", "0xdeadbeef"},
		{"21888242871839275222246405745257275088696311157297823662689037894645226208582",
			"0x30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd46"},
	}
	for _, c := range cases {
		fromDec, err := fpFromText(c.dec)
		require.NoError(t, err, c.dec)
		fromHex, err := fpFromText(c.hex)
		require.NoError(t, err, c.hex)
		assert.True(t, fromDec.Equal(&fromHex), "%s != %s", c.dec, c.hex)
	}
}

func TestFieldTextHexLengthBoundary(t *testing.T) {
	// 32 bytes is the limit
	_, err := fpFromText("0x" + strings.Repeat("ff", 32))
	require.NoError(t, err)

	// 33 bytes after padding must be refused
	_, err = fpFromText("0x" + strings.Repeat("ff", 33))
	require.Error(t, err)
	_, err = fpFromText("0x" + "f" + strings.Repeat("ff", 32))
	require.Error(t, err)
}

func TestFieldTextMalformed(t *testing.T) {
	for _, s := range []string{"", "abc", "0xzz", "12x4", "-0x12"} {
		_, err := fpFromText(s)
		assert.Error(t, err, "%q", s)
	}
}

func TestInputsAcceptHexForm(t *testing.T) {
	in, err := InputsJSON{"0x23", "35"}.Inputs()
	require.NoError(t, err)
	assert.True(t, in[0].Equal(&in[1]))

	var want fr_bn254.Element
	want.SetUint64(35)
	assert.True(t, want.Equal(&in[0]))
}

func TestEncodeInfinityPanics(t *testing.T) {
	vk, proof, _ := sampleValues()

	var inf bn254.G1Affine // zero value is the point at infinity
	proof.PiA = inf
	assert.Panics(t, func() { proof.JSON() })

	var infG2 bn254.G2Affine
	vk.Gamma = infG2
	assert.Panics(t, func() { vk.JSON() })
}

func TestLoadErrorsCarryPath(t *testing.T) {
	_, err := LoadProof("testdata/does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.json")
}
