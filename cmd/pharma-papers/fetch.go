package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pharma-papers/internal/pubmed"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [pmid...]",
	Short: "Fetch article metadata for specific PubMed IDs",
	Long: `Fetch retrieves article metadata (title, date, authors, affiliations,
mined emails) for the given PubMed IDs and prints it to stdout as YAML or
JSON. Useful for inspecting what the classifier sees for a paper.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("format", "yaml", "output format: yaml or json")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more PubMed IDs")
	}

	format, _ := cmd.Flags().GetString("format")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	email, apiKey := resolveIdentity()

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout: timeout,
		},
		BatchSize: viper.GetInt("batch_size"),
		Email:     email,
		APIKey:    apiKey,
	}
	client := pubmed.NewClient(cfg)

	papers, err := client.FetchDetails(context.Background(), args, os.Stderr)
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(papers)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
