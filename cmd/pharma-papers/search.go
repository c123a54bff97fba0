// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharma-papers/internal/classify"
	"github.com/pdiddy/pharma-papers/internal/pubmed"
	"github.com/pdiddy/pharma-papers/internal/report"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search PubMed and report papers with industry-affiliated authors",
	Long: `Search runs the full pipeline: query PubMed, fetch article details,
classify each author's affiliations, and export the papers that have at
least one pharmaceutical or biotech author.

Results go to stdout as CSV by default. Use --file to write a file instead
and --format to choose csv, table, or json. The query supports PubMed's
full query syntax:

  pharma-papers search "cancer immunotherapy AND 2023[dp]"`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("file", "f", "", "output filename (default: print to stdout)")
	searchCmd.Flags().IntP("max", "m", 100, "maximum number of papers to fetch")
	searchCmd.Flags().String("format", "csv", "output format: csv, table, or json")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a PubMed search query")
	}
	query := strings.Join(args, " ")

	maxResults, _ := cmd.Flags().GetInt("max")
	if !cmd.Flags().Changed("max") {
		if v := viper.GetInt("max_results"); v > 0 {
			maxResults = v
		}
	}
	if maxResults <= 0 {
		return fmt.Errorf("max results must be positive, got %d", maxResults)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}

	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	email, apiKey := resolveIdentity()

	cfg := types.ToolConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout: timeout,
			},
			MaxResults: maxResults,
			BatchSize:  viper.GetInt("batch_size"),
			Email:      email,
			APIKey:     apiKey,
		},
		Export: types.ExportConfig{
			Path:   file,
			Format: format,
		},
	}
	client := pubmed.NewClient(cfg.Fetch)

	papers, err := client.FetchAll(context.Background(), query, os.Stderr)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		fmt.Fprintln(os.Stderr, "No papers found matching the query.")
		return report.Export(nil, cfg.Export.Path, cfg.Export.Format)
	}

	rows := report.Assemble(papers, classify.Default())
	if err := report.Export(rows, cfg.Export.Path, cfg.Export.Format); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Found %d papers with pharmaceutical company affiliations\n", len(rows))
	if file != "" {
		fmt.Fprintf(os.Stderr, "Results saved to: %s\n", file)
	}
	return nil
}
