package main

import (
	"os"

	"github.com/lydakis/kakui/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
