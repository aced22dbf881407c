package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "groth16-bn254",
	Short: "Verify Groth16 BN254 proofs from JSON or wire-form data",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var DataDir string

func init() {
	RootCmd.PersistentFlags().StringVar(&DataDir, "data", "data", "Directory holding vk.json, proof.json and inputs.json")

	RootCmd.CompletionOptions.DisableDefaultCmd = true
}
