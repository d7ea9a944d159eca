package main

import (
	"os"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
