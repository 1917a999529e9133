package main

import (
	"github.com/soniakeys/exit"

	"astrochart/internal/cli"
)

func main() {
	defer exit.Handler()
	cli.Execute()
}
