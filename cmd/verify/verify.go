package verify

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zkbatch/groth16-bn254/batch"
	"github.com/zkbatch/groth16-bn254/cmd"
	"github.com/zkbatch/groth16-bn254/groth16"
)

var batchSize uint32

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a Groth16 proof against a verifying key and public inputs",
	Run: func(_ *cobra.Command, _ []string) {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		if err := runVerify(log); err != nil {
			log.Fatal().Err(err).Msg("verification failed")
		}
	},
}

func init() {
	cmd.RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Uint32Var(&batchSize, "n", 1, "Number of times to verify the proof")
}

func runVerify(log zerolog.Logger) error {
	vk, err := groth16.LoadVerifyingKey(cmd.DataDir + "/vk.json")
	if err != nil {
		return err
	}
	proof, err := groth16.LoadProof(cmd.DataDir + "/proof.json")
	if err != nil {
		return err
	}
	inputs, err := groth16.LoadInputs(cmd.DataDir + "/inputs.json")
	if err != nil {
		return err
	}

	items := make([]batch.Item, batchSize)
	for i := range items {
		items[i] = batch.Item{VK: &vk, Proof: &proof, Inputs: inputs}
	}

	start := time.Now()
	err = batch.VerifyAll(items)
	switch {
	case err == nil:
	case errors.Is(err, groth16.ErrProofRejected):
		log.Error().Err(err).Msg("proof rejected: pairing product is not one")
		return err
	case errors.Is(err, groth16.ErrPairingFailure):
		log.Error().Err(err).Msg("pairing computation failed: malformed input")
		return err
	default:
		return err
	}

	id, err := batch.ProofID(&proof)
	if err != nil {
		return err
	}
	log.Info().
		Uint32("n", batchSize).
		Dur("took", time.Since(start)).
		Hex("proof_id", id).
		Msg("proof accepted")
	return nil
}
