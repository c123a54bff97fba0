// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharma-papers/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [affiliation...]",
	Short: "Classify affiliation strings without touching the network",
	Long: `Classify judges each affiliation string the way the search pipeline does
and prints the verdict: industry or academic, plus the extracted company
name when one is found. Handy for checking why a paper did or did not
appear in the results:

  pharma-papers classify "Pfizer Inc., New York, NY" "Harvard Medical School"`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more affiliation strings")
	}

	c := classify.Default()
	for _, affiliation := range args {
		cls := c.Classify(affiliation)
		verdict := "academic"
		if cls.Industry {
			verdict = "industry"
		}
		fmt.Fprintf(os.Stdout, "%-8s  %-24s  %s\n", verdict, cls.Company, affiliation)
	}
	return nil
}
