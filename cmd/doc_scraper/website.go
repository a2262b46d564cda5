package main

import (
	"github.com/spf13/cobra"

	"github.com/kbyung/stagMVP/internal/config"
	"github.com/kbyung/stagMVP/internal/source"
)

var (
	siteURL      string
	siteName     string
	siteType     string
	siteIssuer   string
	siteResource string
)

var websiteCmd = &cobra.Command{
	Use:   "website",
	Short: "Scrape paragraph text from a web page",
	Long: `Scrape a web page and save its paragraph text as JSON.

Pages that render their content with JavaScript come back empty from a
plain fetch; pass --browser to render them in a headless browser
first. Document type defaults to "Market".`,
	RunE: runWebsite,
}

func init() {
	websiteCmd.Flags().StringVar(&siteURL, "url", "", "URL of the page to scrape (required)")
	websiteCmd.Flags().StringVar(&siteName, "name", "", "Document name, used for the output file name")
	websiteCmd.Flags().StringVar(&siteType, "type", "", `Document type (default "Market")`)
	websiteCmd.Flags().StringVar(&siteIssuer, "issuer", "", "Issuer the page is about")
	websiteCmd.Flags().StringVar(&siteResource, "resource", "", "Resource name, e.g. the site or publisher")
	_ = websiteCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(websiteCmd)
}

func runWebsite(cmd *cobra.Command, _ []string) error {
	req := config.Request{
		Kind:         source.KindWebsite,
		URL:          siteURL,
		DocumentName: siteName,
		DocumentType: siteType,
		Issuer:       siteIssuer,
		ResourceName: siteResource,
	}

	return scrape(cmd, &req)
}
