// Package main provides the entry point for the Talent Sonar CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_sonar",
	Short: "Talent Sonar candidate matching service",
	Long:  "Talent Sonar ranks candidate profiles against job requirements using similarity search and multi-factor scoring, and drafts personalized outreach for the best matches.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
