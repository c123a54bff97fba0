// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Header returns the CSV column names in output order.
func Header() []string {
	return []string{
		"PubmedID",
		"Title",
		"Publication Date",
		"Non-academic Author(s)",
		"Company Affiliation(s)",
		"Corresponding Author Email",
	}
}

// WriteCSV writes rows to w in CSV form. The header row is always written,
// so an empty result still yields a valid file. Multi-valued columns are
// joined with "; ".
func WriteCSV(rows []types.ResultRow, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.PMID,
			row.Title,
			row.PubDate,
			strings.Join(row.NonAcademicAuthors, "; "),
			strings.Join(row.CompanyAffiliations, "; "),
			strings.Join(row.CorrespondingEmails, "; "),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", row.PMID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
