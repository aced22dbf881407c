package sample

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zkbatch/groth16-bn254/cmd"
	"github.com/zkbatch/groth16-bn254/cubic"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate sample vk.json, proof.json and inputs.json files",
	Run: func(_ *cobra.Command, _ []string) {
		err := writeSampleData()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

func init() {
	cmd.RootCmd.AddCommand(sampleCmd)
}

// writeSampleData proves the cubic demo circuit and writes the triple in
// the JSON forms the verify command consumes.
func writeSampleData() error {
	vk, proof, inputs, err := cubic.Generate()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cmd.DataDir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(cmd.DataDir+"/vk.json", vk.JSON()); err != nil {
		return err
	}
	if err := writeJSON(cmd.DataDir+"/proof.json", proof.JSON()); err != nil {
		return err
	}
	return writeJSON(cmd.DataDir+"/inputs.json", inputs.JSON())
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}
