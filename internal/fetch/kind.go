// Package fetch - kind.go classifies URLs by the site family they point at.
package fetch

import (
	"net/url"
	"strings"
)

// Site represents a known document host family.
type Site string

const (
	// SiteSEC is the SEC EDGAR filing host
	SiteSEC Site = "sec"
	// SiteGeneric is any other website
	SiteGeneric Site = "generic"
)

// DetectSite identifies the site family from a URL.
func DetectSite(urlStr string) Site {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return SiteGeneric
	}

	host := strings.ToLower(parsed.Hostname())

	// EDGAR lives on sec.gov and its subdomains (www.sec.gov, efts.sec.gov)
	if host == "sec.gov" || strings.HasSuffix(host, ".sec.gov") {
		return SiteSEC
	}

	return SiteGeneric
}

// SiteOptions returns the fetch options conventionally used for a site family.
func SiteOptions(site Site) *Options {
	switch site {
	case SiteSEC:
		return SECOptions()
	default:
		return DefaultOptions()
	}
}
