package guest_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkbatch/groth16-bn254/cubic"
	"github.com/zkbatch/groth16-bn254/groth16"
	"github.com/zkbatch/groth16-bn254/guest"
)

func packBatch(t *testing.T, size uint32) (*guest.Batch, []byte) {
	t.Helper()
	vk, proof, inputs, err := cubic.Generate()
	require.NoError(t, err)

	b := guest.Batch{
		Size:   size,
		Inputs: inputs.Repr(),
		Proof:  proof.Repr(),
		VK:     vk.Repr(),
	}
	var buf bytes.Buffer
	require.NoError(t, guest.Encode(&buf, &b))
	return &b, buf.Bytes()
}

func TestWireRoundTrip(t *testing.T) {
	b, raw := packBatch(t, 3)

	decoded, err := guest.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, b, decoded)

	// typed values survive the boundary crossing
	assert.Equal(t, b.VK.VerifyingKey(), decoded.VK.VerifyingKey())
	assert.Equal(t, b.Proof.Proof(), decoded.Proof.Proof())
	assert.Equal(t, b.Inputs.Inputs(), decoded.Inputs.Inputs())
}

func TestRunVerifiesBatch(t *testing.T) {
	_, raw := packBatch(t, 4)
	require.NoError(t, guest.Run(bytes.NewReader(raw)))
}

func TestRunHaltsOnBadInput(t *testing.T) {
	b, _ := packBatch(t, 2)

	// force inputs[0] to one; the statement no longer holds
	b.Inputs[0] = groth16.FrLimbs{1, 0, 0, 0}
	var buf bytes.Buffer
	require.NoError(t, guest.Encode(&buf, b))

	err := guest.Run(&buf)
	require.ErrorIs(t, err, groth16.ErrProofRejected)
}

func TestDecodeTruncatedStream(t *testing.T) {
	_, raw := packBatch(t, 1)

	for _, n := range []int{0, 3, 7, len(raw) / 2, len(raw) - 1} {
		_, err := guest.Decode(bytes.NewReader(raw[:n]))
		assert.Error(t, err, "prefix of %d bytes", n)
	}
}
