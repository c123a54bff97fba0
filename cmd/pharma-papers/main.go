// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pharma-papers CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharma-papers/internal/logging"
	"github.com/pdiddy/pharma-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds NCBI credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pharma-papers CLI.
var rootCmd = &cobra.Command{
	Use:   "pharma-papers",
	Short: "Find PubMed papers with pharmaceutical or biotech company authors",
	Long: `pharma-papers searches PubMed, classifies each paper's author affiliations,
and reports the papers that have at least one author employed by a
pharmaceutical or biotech company.

The search subcommand runs the full pipeline and exports CSV, a table, or
JSON. fetch and classify expose the retrieval and classification stages on
their own.`,
}

func init() {
	// Assigned here rather than in the composite literal above because the
	// closure references rootCmd, which would be an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		debug, _ := rootCmd.PersistentFlags().GetBool("debug")
		if !debug {
			debug = viper.GetBool("debug")
		}
		logging.Init(debug)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pharma-papers.yaml or ~/.config/pharma-papers/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("email", "e", "", "contact email sent to NCBI with each request")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "NCBI API key (raises the rate limit to 10 requests/second)")
}

func initConfig() {
	// Load .env if present (for PHARMA_PAPERS_EMAIL, PHARMA_PAPERS_API_KEY).
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pharma-papers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pharma-papers"))
		}
	}

	viper.SetEnvPrefix("PHARMA_PAPERS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveIdentity merges the NCBI identity settings: flags take precedence,
// then environment and config file, then .secrets/ files.
func resolveIdentity() (email, apiKey string) {
	email, _ = rootCmd.PersistentFlags().GetString("email")
	if email == "" {
		email = viper.GetString("email")
	}
	email = secretDefault(secrets.KeyNCBIEmail, email)

	apiKey, _ = rootCmd.PersistentFlags().GetString("api-key")
	if apiKey == "" {
		apiKey = viper.GetString("api_key")
	}
	apiKey = secretDefault(secrets.KeyNCBIAPIKey, apiKey)

	return email, apiKey
}

func main() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
