// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-papers pipeline:
// papers and authors as fetched from PubMed, affiliation classifications, and
// the result rows the report stage exports.
package types

// Paper holds the PubMed metadata for a single article.
type Paper struct {
	// PMID is the PubMed identifier (e.g. "38412345").
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by PubMed.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date in "YYYY/Mon/DD" form. PubMed dates are
	// frequently partial (year only, or year and month), so the value keeps
	// whatever components the record carries, joined by "/".
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// Journal is the journal title, when present.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Abstract is the article abstract, when present.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Authors lists the article authors in record order.
	Authors []Author `json:"authors" yaml:"authors"`
}

// Author is a single author entry on a paper, with whatever affiliation
// strings the PubMed record attached to it.
type Author struct {
	// Name is the display name, built from the record's name parts:
	// "LastName ForeName" when both are present, then "LastName Initials",
	// then last name alone, then the collective (group) name.
	Name string `json:"name" yaml:"name"`

	// Affiliations lists the raw affiliation strings in record order.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`

	// Email is the first email address mined from the affiliation text,
	// empty when none was found.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Classification is the verdict for one affiliation string or one author.
type Classification struct {
	// Industry reports whether the text was judged pharmaceutical/biotech
	// rather than academic.
	Industry bool `json:"industry" yaml:"industry"`

	// Company is the extracted company name when Industry is true. It may be
	// empty when the text signals industry without a recognizable name.
	Company string `json:"company,omitempty" yaml:"company,omitempty"`
}

// ResultRow is one line of the final report: a paper with at least one
// industry-affiliated author, flattened for CSV export.
type ResultRow struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date string (see Paper.PubDate).
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// NonAcademicAuthors lists the names of industry-affiliated authors,
	// in paper order, without duplicates.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the extracted company names, in first-seen
	// order, without duplicates.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmails lists the email addresses mined from the paper's
	// affiliation text, in first-seen order.
	CorrespondingEmails []string `json:"corresponding_emails" yaml:"corresponding_emails"`
}
