// Command distill is a thin illustrative CLI around the distill
// library: it reads pre-fetched HTML from a file or stdin and prints
// the extraction result. It does not implement core extraction
// behavior itself (spec.md §1 puts HTTP fetching out of scope), only
// flag parsing and output formatting, grounded on the teacher's
// cmd/parser/main.go cobra command shape.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelhq/distill"
)

var (
	outputFormat    string
	includeComments bool
	includeTables   bool
	includeImages   bool
	includeLinks    bool
	favorPrecision  bool
	favorRecall     bool
	sourceURL       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "distill",
		Short: "distill - boilerplate-free article content extraction",
		Long:  "distill extracts clean article content, metadata and comments from pre-fetched HTML",
	}

	extractCmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract content from an HTML file (or stdin if omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json|text|markdown)")
	extractCmd.Flags().BoolVar(&includeComments, "comments", false, "Include a comments section")
	extractCmd.Flags().BoolVar(&includeTables, "tables", true, "Keep tables in the output")
	extractCmd.Flags().BoolVar(&includeImages, "images", false, "Collect images")
	extractCmd.Flags().BoolVar(&includeLinks, "links", false, "Keep link markup in the output")
	extractCmd.Flags().BoolVar(&favorPrecision, "precision", false, "Favor precision over recall")
	extractCmd.Flags().BoolVar(&favorRecall, "recall", false, "Favor recall over precision")
	extractCmd.Flags().StringVar(&sourceURL, "url", "", "Source URL, used for hostname/fingerprint metadata")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("distill v0.1.0")
		},
	}

	rootCmd.AddCommand(extractCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts := distill.DefaultOptions()
	opts.IncludeComments = includeComments
	opts.IncludeTables = includeTables
	opts.IncludeImages = includeImages
	opts.IncludeLinks = includeLinks
	opts.FavorPrecision = favorPrecision
	opts.FavorRecall = favorRecall
	opts.URL = sourceURL
	opts.OutputMarkdown = outputFormat == "markdown"

	result, err := distill.ExtractBytesWithOptions(raw, opts)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "text":
		fmt.Println(result.ContentText)
	case "markdown":
		fmt.Println(result.FormatMarkdown())
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unsupported format: %s", outputFormat)
	}

	return nil
}
