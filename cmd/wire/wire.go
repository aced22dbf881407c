package wire

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zkbatch/groth16-bn254/cmd"
	"github.com/zkbatch/groth16-bn254/groth16"
	"github.com/zkbatch/groth16-bn254/guest"
)

var blobFile string
var batchSize uint32

// wireCmd represents the wire command
var wireCmd = &cobra.Command{
	Use:   "wire",
	Short: "Pack and run the host/guest wire form",
}

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Encode the vk, proof and inputs into a wire-form blob",
	Run: func(_ *cobra.Command, _ []string) {
		err := runPack()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay the guest loop on a wire-form blob",
	Run: func(_ *cobra.Command, _ []string) {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		err := runGuest()
		if err != nil {
			log.Fatal().Err(err).Msg("guest halted")
		}
		log.Info().Str("blob", blobFile).Msg("guest completed")
	},
}

func init() {
	cmd.RootCmd.AddCommand(wireCmd)
	wireCmd.AddCommand(packCmd)
	wireCmd.AddCommand(runCmd)

	wireCmd.PersistentFlags().StringVar(&blobFile, "blob", "batch.bin", "Path of the wire-form blob")
	packCmd.Flags().Uint32Var(&batchSize, "n", 1, "Batch size to encode")
}

func runPack() error {
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

	// host write order: batch size first, then inputs, proof and vk
	b := guest.Batch{
		Size:   batchSize,
		Inputs: inputs.Repr(),
		Proof:  proof.Repr(),
		VK:     vk.Repr(),
	}
	f, err := os.Create(blobFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return guest.Encode(f, &b)
}

func runGuest() error {
	f, err := os.Open(blobFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return guest.Run(f)
}
