package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/verdantsim/verdant/cmd"
)

func main() {
	// Optional .env for development overrides (VERDANT_DATA_DIR etc).
	_ = godotenv.Load()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
