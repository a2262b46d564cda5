package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doc_scraper",
	Short: "Scrape financial documents into structured JSON",
	Long: `doc_scraper extracts paragraph text from SEC filings, PDF reports,
and general websites and writes each document as a structured JSON file.

Run without a subcommand for an interactive session, or use the sec,
pdf, and website subcommands to scrape a single source from flags.`,
	RunE: runInteractive,
}

func main() {
	// A missing .env file is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
