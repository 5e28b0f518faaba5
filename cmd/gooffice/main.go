// Package main implements the gooffice CLI for rendering declarative
// JSON document specs into .pptx, .xlsx and .docx files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gooffice",
	Short: "Render declarative JSON document specs into office files",
	Long: "gooffice turns JSON descriptions of presentations, spreadsheets and " +
		"word-processor documents into .pptx, .xlsx and .docx files, resolving " +
		"color themes, layouts and charts along the way.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
