// Package main provides the resume rater CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_rater",
	Short: "Resume requirement extraction and match scoring",
	Long:  "Resume Rater extracts structured requirements from job descriptions, builds candidate profiles from resume documents, and scores how well they match.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
