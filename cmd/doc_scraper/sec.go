package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbyung/stagMVP/internal/config"
	"github.com/kbyung/stagMVP/internal/source"
)

var (
	secURL      string
	secFile     string
	secName     string
	secType     string
	secIssuer   string
	secResource string
)

var secCmd = &cobra.Command{
	Use:   "sec",
	Short: "Scrape an SEC filing from EDGAR or a saved HTML file",
	Long: `Scrape an SEC filing and save its paragraph text as JSON.

Provide --url for a filing hosted on EDGAR, or --file for a filing
already saved to disk. Local filings default the document name to the
file name. Document type defaults to "Raw Financials" and resource
name to "SEC".`,
	RunE: runSEC,
}

func init() {
	secCmd.Flags().StringVar(&secURL, "url", "", "URL of the filing on EDGAR")
	secCmd.Flags().StringVar(&secFile, "file", "", "Path to a saved filing HTML file")
	secCmd.Flags().StringVar(&secName, "name", "", "Document name, used for the output file name")
	secCmd.Flags().StringVar(&secType, "type", "", `Document type (default "Raw Financials")`)
	secCmd.Flags().StringVar(&secIssuer, "issuer", "", "Issuer the filing belongs to")
	secCmd.Flags().StringVar(&secResource, "resource", "", `Resource name (default "SEC")`)

	rootCmd.AddCommand(secCmd)
}

func runSEC(cmd *cobra.Command, _ []string) error {
	if secURL == "" && secFile == "" {
		return fmt.Errorf("either --url or --file must be provided")
	}
	if secURL != "" && secFile != "" {
		return fmt.Errorf("--url and --file are mutually exclusive; provide only one")
	}

	req := config.Request{
		DocumentName: secName,
		DocumentType: secType,
		Issuer:       secIssuer,
		ResourceName: secResource,
	}
	if secURL != "" {
		req.Kind = source.KindSECRemote
		req.URL = secURL
	} else {
		req.Kind = source.KindSECLocal
		req.FilePath = secFile
	}

	return scrape(cmd, &req)
}
