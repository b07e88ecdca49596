package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Makepad-fr/resumeform/internal/cli"
)

func main() {
	// A .env next to the binary's working dir may set RESUMEFORM_* overrides.
	_ = godotenv.Load()

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
