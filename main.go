package main

import (
	"os"

	"github.com/nicoespa/mentalgym/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
