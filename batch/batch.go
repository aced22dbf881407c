// Package batch verifies collections of independent proofs and commits to
// them: each proof gets a keccak-256 identifier and a batch is committed
// to by the merkle root over its proof ids.
package batch

import (
	"errors"
	"fmt"
	"runtime"

	mt "github.com/txaty/go-merkletree"
	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"

	"github.com/zkbatch/groth16-bn254/groth16"
)

// Item is one independent (vk, proof, inputs) verification triple.
type Item struct {
	VK     *groth16.VerifyingKey
	Proof  *groth16.Proof
	Inputs groth16.Inputs
}

// VerifyAll verifies every item, fanning out across CPUs. Verification
// only reads its own arguments, so items need no coordination. The first
// failure is returned with the item index attached.
func VerifyAll(items []Item) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range items {
		i := i
		g.Go(func() error {
			it := items[i]
			if err := groth16.Verify(it.VK, it.Proof, it.Inputs); err != nil {
				return fmt.Errorf("proof %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// ProofID is the keccak-256 digest of the proof's marshaled points.
func ProofID(proof *groth16.Proof) ([]byte, error) {
	var data []byte
	data = append(data, proof.PiA.Marshal()...)
	data = append(data, proof.PiB.Marshal()...)
	data = append(data, proof.PiC.Marshal()...)
	return KeccakHashFunc(data)
}

func KeccakHashFunc(data []byte) ([]byte, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil), nil
}

type idBlock struct {
	id []byte
}

func (b idBlock) Serialize() ([]byte, error) {
	return b.id, nil
}

// Root commits to a batch as the merkle root over its proof ids. A
// single-proof batch commits to the proof id directly; the tree library
// needs at least two leaves.
func Root(proofs []*groth16.Proof) ([]byte, error) {
	if len(proofs) == 0 {
		return nil, errors.New("batch: empty batch")
	}
	ids := make([][]byte, len(proofs))
	for i, p := range proofs {
		id, err := ProofID(p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	if len(ids) == 1 {
		return ids[0], nil
	}
	blocks := make([]mt.DataBlock, len(ids))
	for i := range ids {
		blocks[i] = idBlock{id: ids[i]}
	}
	config := mt.Config{
		HashFunc: KeccakHashFunc,
		Mode:     mt.ModeTreeBuild,
	}
	tree, err := mt.New(&config, blocks)
	if err != nil {
		return nil, err
	}
	return tree.Root, nil
}
