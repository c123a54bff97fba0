// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// emailTrimSet lists the punctuation stripped from affiliation tokens when
// mining email addresses.
const emailTrimSet = ".,;()[]<>{}"

// ParseArticleSet decodes an efetch XML response into Paper values, in
// document order.
func ParseArticleSet(r io.Reader) ([]types.Paper, error) {
	var set articleSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}

	papers := make([]types.Paper, 0, len(set.Articles))
	for _, a := range set.Articles {
		papers = append(papers, a.toPaper())
	}
	return papers, nil
}

func (a pubmedArticle) toPaper() types.Paper {
	art := a.Citation.Article

	p := types.Paper{
		PMID:    strings.TrimSpace(a.Citation.PMID),
		Title:   strings.TrimSpace(art.Title),
		PubDate: art.Journal.PubDate.display(),
		Journal: strings.TrimSpace(art.Journal.Title),
	}

	if len(art.AbstractTexts) > 0 {
		p.Abstract = strings.TrimSpace(art.AbstractTexts[0])
	}

	for _, au := range art.Authors {
		name := au.displayName()
		var affiliations []string
		for _, aff := range au.Affiliations {
			if s := strings.TrimSpace(aff.Affiliation); s != "" {
				affiliations = append(affiliations, s)
			}
		}
		p.Authors = append(p.Authors, types.Author{
			Name:         name,
			Affiliations: affiliations,
			Email:        mineEmail(affiliations),
		})
	}
	return p
}

// displayName builds an author display name from the record's name parts:
// "LastName ForeName" when both are present, then "LastName Initials", then
// the last name alone, then the collective (group) name.
func (a authorData) displayName() string {
	last := strings.TrimSpace(a.LastName)
	fore := strings.TrimSpace(a.ForeName)
	initials := strings.TrimSpace(a.Initials)

	switch {
	case last != "" && fore != "":
		return last + " " + fore
	case last != "" && initials != "":
		return last + " " + initials
	case last != "":
		return last
	default:
		return strings.TrimSpace(a.CollectiveName)
	}
}

// display joins the date components the record carries with "/"; records
// that only carry a MedlineDate range (e.g. "2000 Spring") use that as-is.
func (d pubDate) display() string {
	var parts []string
	for _, part := range []string{d.Year, d.Month, d.Day} {
		if s := strings.TrimSpace(part); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(d.MedlineDate)
	}
	return strings.Join(parts, "/")
}

// mineEmail scans affiliation text for the first token that looks like an
// email address, stripping surrounding punctuation.
func mineEmail(affiliations []string) string {
	for _, aff := range affiliations {
		if !strings.Contains(aff, "@") {
			continue
		}
		for _, part := range strings.Fields(aff) {
			if strings.Contains(part, "@") && strings.Contains(part, ".") {
				if email := strings.Trim(part, emailTrimSet); email != "" {
					return email
				}
			}
		}
	}
	return ""
}

// PubMed efetch XML structures (PubmedArticleSet subset).
type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string      `xml:"PMID"`
	Article articleData `xml:"Article"`
}

type articleData struct {
	Title         string       `xml:"ArticleTitle"`
	Journal       journalData  `xml:"Journal"`
	AbstractTexts []string     `xml:"Abstract>AbstractText"`
	Authors       []authorData `xml:"AuthorList>Author"`
}

type journalData struct {
	Title   string  `xml:"Title"`
	PubDate pubDate `xml:"JournalIssue>PubDate"`
}

type pubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type authorData struct {
	LastName       string            `xml:"LastName"`
	ForeName       string            `xml:"ForeName"`
	Initials       string            `xml:"Initials"`
	CollectiveName string            `xml:"CollectiveName"`
	Affiliations   []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}
