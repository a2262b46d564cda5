package main

import (
	"github.com/spf13/cobra"

	"github.com/kbyung/stagMVP/internal/config"
	"github.com/kbyung/stagMVP/internal/source"
)

var (
	pdfFile     string
	pdfName     string
	pdfType     string
	pdfIssuer   string
	pdfResource string
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Scrape a PDF document from disk",
	Long: `Scrape a PDF document and save its paragraph text as JSON.

Unlike the HTML sources, a PDF that cannot be parsed aborts the run;
no output file is written. The document name defaults to the file
name.`,
	RunE: runPDF,
}

func init() {
	pdfCmd.Flags().StringVar(&pdfFile, "file", "", "Path to the PDF file (required)")
	pdfCmd.Flags().StringVar(&pdfName, "name", "", "Document name, used for the output file name")
	pdfCmd.Flags().StringVar(&pdfType, "type", "", "Document type, e.g. \"Annual Report\"")
	pdfCmd.Flags().StringVar(&pdfIssuer, "issuer", "", "Issuer the document belongs to")
	pdfCmd.Flags().StringVar(&pdfResource, "resource", "", "Resource name, e.g. the publisher")
	_ = pdfCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, _ []string) error {
	req := config.Request{
		Kind:         source.KindPDF,
		FilePath:     pdfFile,
		DocumentName: pdfName,
		DocumentType: pdfType,
		Issuer:       pdfIssuer,
		ResourceName: pdfResource,
	}

	return scrape(cmd, &req)
}
