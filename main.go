package main

import (
	"github.com/zkbatch/groth16-bn254/cmd"
	_ "github.com/zkbatch/groth16-bn254/cmd/sample"
	_ "github.com/zkbatch/groth16-bn254/cmd/verify"
	_ "github.com/zkbatch/groth16-bn254/cmd/wire"
)

func main() {
	cmd.Execute()
}
