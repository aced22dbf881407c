package batch_test

import (
	"testing"

	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkbatch/groth16-bn254/batch"
	"github.com/zkbatch/groth16-bn254/cubic"
	"github.com/zkbatch/groth16-bn254/groth16"
)

func TestVerifyAll(t *testing.T) {
	vk, proof, inputs, err := cubic.Generate()
	require.NoError(t, err)

	items := make([]batch.Item, 8)
	for i := range items {
		items[i] = batch.Item{VK: &vk, Proof: &proof, Inputs: inputs}
	}
	require.NoError(t, batch.VerifyAll(items))

	// one bad item fails the batch
	bad := make(groth16.Inputs, len(inputs))
	copy(bad, inputs)
	var one fr_bn254.Element
	one.SetOne()
	bad[0] = one
	items[3].Inputs = bad
	err = batch.VerifyAll(items)
	require.ErrorIs(t, err, groth16.ErrProofRejected)
}

func TestProofID(t *testing.T) {
	vk, proof, _, err := cubic.Generate()
	require.NoError(t, err)

	id, err := batch.ProofID(&proof)
	require.NoError(t, err)
	assert.Len(t, id, 32)

	again, err := batch.ProofID(&proof)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	tampered := proof
	tampered.PiA = vk.Alpha
	other, err := batch.ProofID(&tampered)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestRoot(t *testing.T) {
	vk, proof, _, err := cubic.Generate()
	require.NoError(t, err)

	_, err = batch.Root(nil)
	require.Error(t, err)

	id, err := batch.ProofID(&proof)
	require.NoError(t, err)

	single, err := batch.Root([]*groth16.Proof{&proof})
	require.NoError(t, err)
	assert.Equal(t, id, single)

	other := proof
	other.PiC = vk.Alpha
	root, err := batch.Root([]*groth16.Proof{&proof, &other, &proof})
	require.NoError(t, err)
	assert.Len(t, root, 32)
	assert.NotEqual(t, single, root)

	again, err := batch.Root([]*groth16.Proof{&proof, &other, &proof})
	require.NoError(t, err)
	assert.Equal(t, root, again)
}
