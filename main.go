package main

import (
	"os"

	"github.com/PolarWolf314/rcli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
