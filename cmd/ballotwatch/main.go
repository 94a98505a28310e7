// Package main provides the entry point for the ballotwatch CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ballotwatch",
	Short: "Ballotwatch candidate scoring and recommendation engine",
	Long:  "Ballotwatch scores political candidates against voter preferences using deterministic keyword rules, and serves recommendations, comparisons, and profile insights via REST API or offline from candidate files.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
