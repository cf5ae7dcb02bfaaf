package main

import (
	"github.com/orbitl2/operator/cli"
)

func main() {
	cli.NewRootCommand().Execute()
}
