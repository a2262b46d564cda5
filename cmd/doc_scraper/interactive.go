package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbyung/stagMVP/internal/config"
	"github.com/kbyung/stagMVP/internal/pipeline"
	"github.com/kbyung/stagMVP/internal/source"
)

// prompter reads one trimmed line per question from the session input.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(prompt string) string {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Choose a source type and answer prompts for one scrape",
	Long: `Walk through one scrape interactively: pick a source type from the
menu, answer the prompts for it, and save the result as JSON. Running
the binary without any subcommand starts the same session.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	base := config.Request{}
	if err := applyConfigAndFlags(cmd, &base); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return runInteractiveSession(ctx, os.Stdin, os.Stdout, base)
}

// runInteractiveSession walks the user through one scrape: pick a source
// kind, answer the prompts for it, then run the pipeline. The base
// request carries settings already resolved from flags and config.
func runInteractiveSession(ctx context.Context, in io.Reader, out io.Writer, base config.Request) error {
	p := newPrompter(in, out)

	fmt.Fprintln(out, "📌 Choose the type of document to scrape:")
	fmt.Fprintln(out, "1. SEC Financial Document (Online)")
	fmt.Fprintln(out, "2. SEC Financial Document (Local HTML)")
	fmt.Fprintln(out, "3. PDF Document")
	fmt.Fprintln(out, "4. Website HTML")

	req := base
	switch p.ask("Enter the number of your choice: ") {
	case "1":
		req.Kind = source.KindSECRemote
		req.URL = p.ask("Enter SEC document URL: ")
		req.DocumentName = p.ask("Enter document name (e.g., '10-K Report'): ")
		req.Issuer = p.ask("Enter issuer name (e.g., 'FTX Trading Ltd.'): ")
	case "2":
		req.Kind = source.KindSECLocal
		req.FilePath = p.ask("Enter the path to the local SEC HTML file: ")
		req.Issuer = p.ask("Enter issuer name: ")
	case "3":
		req.Kind = source.KindPDF
		req.FilePath = p.ask("Enter the path to the PDF file: ")
		// Check the path before asking anything else, so a typo does
		// not cost the user three more answers.
		if _, err := os.Stat(req.FilePath); err != nil {
			fmt.Fprintln(out, "❌ Failed to extract text from the PDF. Exiting.")
			return fmt.Errorf("config error: file not found: %s", req.FilePath)
		}
		req.DocumentType = p.ask("Enter document type: ")
		req.Issuer = p.ask("Enter issuer name: ")
		req.ResourceName = p.ask("Enter resource name: ")
	case "4":
		req.Kind = source.KindWebsite
		req.URL = p.ask("Enter website URL: ")
		req.DocumentName = p.ask("Enter document name: ")
		req.Issuer = p.ask("Enter issuer name: ")
		req.ResourceName = p.ask("Enter resource name: ")
	default:
		fmt.Fprintln(out, "❌ Invalid choice. Please restart the script.")
		return nil
	}

	warnIfSECAnonymous(out, &req)

	outcome, err := pipeline.Run(ctx, &req)
	if err != nil {
		var srcErr *source.Error
		if req.Kind == source.KindPDF && errors.As(err, &srcErr) {
			fmt.Fprintln(out, "❌ Failed to extract text from the PDF. Exiting.")
		}
		return err
	}

	printOutcome(out, outcome)
	return nil
}
