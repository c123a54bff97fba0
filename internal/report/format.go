// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// FormatTable writes rows as a human-readable table to w.
func FormatTable(rows []types.ResultRow, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-12s  %-24s  %s\n",
		"PubmedID", "Title", "Date", "Authors", "Companies")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, row := range rows {
		fmt.Fprintf(w, "%-10s  %-50s  %-12s  %-24s  %s\n",
			row.PMID,
			truncate(row.Title, 50),
			truncate(row.PubDate, 12),
			formatAuthors(row.NonAcademicAuthors),
			strings.Join(row.CompanyAffiliations, "; "))
	}

	fmt.Fprintf(w, "\n%d papers\n", len(rows))
}

// FormatJSON writes rows as indented JSON to w. A nil slice renders as an
// empty array rather than null.
func FormatJSON(rows []types.ResultRow, w io.Writer) error {
	if rows == nil {
		rows = []types.ResultRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 16) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
