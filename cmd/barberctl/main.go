package main

import (
	"fmt"
	"os"

	"github.com/m04kA/SMC-BarberService/cmd/barberctl/cli"
)

// Задается через -ldflags при сборке
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
