package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbyung/stagMVP/internal/config"
	"github.com/kbyung/stagMVP/internal/fetch"
	"github.com/kbyung/stagMVP/internal/pipeline"
	"github.com/kbyung/stagMVP/internal/source"
)

// Shared flags available on every subcommand and the interactive root.
var (
	flagConfigPath   string
	flagOutDir       string
	flagMeta         bool
	flagBrowser      bool
	flagStrict       bool
	flagTimeout      int
	flagUserAgent    string
	flagSECUserAgent string
	flagVerbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a JSON config file with tool defaults")
	rootCmd.PersistentFlags().StringVarP(&flagOutDir, "out", "o", "", "Directory the output JSON is written to (default current directory)")
	rootCmd.PersistentFlags().BoolVar(&flagMeta, "meta", false, "Write a .meta.json sidecar next to the output JSON")
	rootCmd.PersistentFlags().BoolVar(&flagBrowser, "browser", false, "Render JavaScript-heavy pages in a headless browser before extraction")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Abort on read errors instead of saving the error text as content")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds (default 30)")
	rootCmd.PersistentFlags().StringVar(&flagUserAgent, "user-agent", "", "User-Agent header for website fetches")
	rootCmd.PersistentFlags().StringVar(&flagSECUserAgent, "sec-user-agent", "", "User-Agent header for SEC fetches; SEC expects a contact string")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

// applyConfigAndFlags resolves the shared settings into the request.
// Precedence from lowest to highest: config file, SEC_USER_AGENT env
// var, explicit command-line flags.
func applyConfigAndFlags(cmd *cobra.Command, req *config.Request) error {
	cfg := &config.Config{}
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if flagVerbose {
			fmt.Printf("Loaded config from: %s\n", flagConfigPath)
		}
	}

	// Explicit flags beat config file values. Changed distinguishes
	// "left at default" from "passed on the command line".
	if cmd.Flags().Changed("out") {
		cfg.OutDir = flagOutDir
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent = flagUserAgent
	}
	if cmd.Flags().Changed("sec-user-agent") {
		cfg.SECUserAgent = flagSECUserAgent
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = flagTimeout
	}
	cfg.WithMetadata = cfg.WithMetadata || flagMeta
	cfg.UseBrowser = cfg.UseBrowser || flagBrowser
	cfg.Strict = cfg.Strict || flagStrict
	cfg.Verbose = cfg.Verbose || flagVerbose

	// The contact string is the one setting people keep in .env files.
	if cfg.SECUserAgent == "" {
		cfg.SECUserAgent = os.Getenv("SEC_USER_AGENT")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.ApplyTo(req)
	return nil
}

// warnIfSECAnonymous tells the user when a sec.gov request is about to go
// out without a User-Agent. SEC's fair-access policy asks automated
// clients to identify themselves, but the default stays empty so the
// request sends exactly what was configured.
func warnIfSECAnonymous(w io.Writer, req *config.Request) {
	if req.Kind != source.KindSECRemote || req.SECUserAgent != "" {
		return
	}
	if fetch.DetectSite(req.URL) != fetch.SiteSEC {
		return
	}
	fmt.Fprintf(w, "Warning: no SEC User-Agent is set; sec.gov may reject anonymous requests.\n")
	fmt.Fprintf(w, "Set --sec-user-agent (or SEC_USER_AGENT) to a contact string like \"Sample Co admin@example.com\".\n")
}

// scrape resolves shared flags into the request, runs the pipeline, and
// reports where the output landed.
func scrape(cmd *cobra.Command, req *config.Request) error {
	if err := applyConfigAndFlags(cmd, req); err != nil {
		return err
	}
	warnIfSECAnonymous(os.Stdout, req)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	outcome, err := pipeline.Run(ctx, req)
	if err != nil {
		return err
	}
	printOutcome(os.Stdout, outcome)
	return nil
}

func printOutcome(w io.Writer, outcome *pipeline.Outcome) {
	if outcome.EmbeddedError != nil {
		fmt.Fprintf(w, "⚠️ The source could not be read; the saved document records the error text instead.\n")
	}
	fmt.Fprintf(w, "✅ Scraped data saved to %s\n", outcome.OutputPath)
	if outcome.MetaPath != "" {
		fmt.Fprintf(w, "Metadata saved to %s\n", outcome.MetaPath)
	}
}
