package main

import (
	"github.com/kcaldas/promptpack/cmd/cli"
)

func main() {
	cli.Execute()
}
