// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles classified papers into result rows and renders
// them as CSV, a human-readable table, or JSON.
package report

import (
	"github.com/pdiddy/pharma-papers/internal/classify"
	"github.com/pdiddy/pharma-papers/internal/logging"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Assemble filters papers down to those with at least one pharmaceutical or
// biotech author and builds one row per matching paper, in input order.
// Names, companies, and emails keep first-seen order with duplicates
// dropped, so repeated runs over the same input produce identical rows.
func Assemble(papers []types.Paper, c *classify.Classifier) []types.ResultRow {
	rows := make([]types.ResultRow, 0, len(papers))
	for _, paper := range papers {
		matched := false
		var names, companies, emails []string
		seenName := make(map[string]bool)
		seenCompany := make(map[string]bool)
		seenEmail := make(map[string]bool)

		for _, author := range paper.Authors {
			cls := c.ClassifyAuthor(author)
			if !cls.Industry {
				continue
			}
			matched = true
			if author.Name != "" && !seenName[author.Name] {
				seenName[author.Name] = true
				names = append(names, author.Name)
			}
			if cls.Company != "" && !seenCompany[cls.Company] {
				seenCompany[cls.Company] = true
				companies = append(companies, cls.Company)
			}
			if author.Email != "" && !seenEmail[author.Email] {
				seenEmail[author.Email] = true
				emails = append(emails, author.Email)
			}
		}
		if !matched {
			continue
		}

		rows = append(rows, types.ResultRow{
			PMID:                paper.PMID,
			Title:               paper.Title,
			PubDate:             paper.PubDate,
			NonAcademicAuthors:  names,
			CompanyAffiliations: companies,
			CorrespondingEmails: emails,
		})
	}

	logging.S.Debugw("assembled report", "papers", len(papers), "rows", len(rows))
	return rows
}
