// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// --- Classify ---

func TestClassify(t *testing.T) {
	c := Default()

	tests := []struct {
		name        string
		affiliation string
		want        types.Classification
	}{
		{
			name:        "known company with designator",
			affiliation: "Pfizer Inc., New York, NY, USA",
			want:        types.Classification{Industry: true, Company: "Pfizer"},
		},
		{
			name:        "department clause does not shield a company clause",
			affiliation: "Dept. of Oncology, Pfizer Inc., New York",
			want:        types.Classification{Industry: true, Company: "Pfizer"},
		},
		{
			name:        "known company without designator",
			affiliation: "Genentech, South San Francisco, CA, USA",
			want:        types.Classification{Industry: true, Company: "Genentech"},
		},
		{
			name:        "academic medical school",
			affiliation: "Harvard Medical School, Boston, MA, USA",
			want:        types.Classification{},
		},
		{
			name:        "university",
			affiliation: "Stanford University, Stanford, CA, USA",
			want:        types.Classification{},
		},
		{
			name:        "empty",
			affiliation: "",
			want:        types.Classification{},
		},
		{
			name:        "whitespace only",
			affiliation: "   \t ",
			want:        types.Classification{},
		},
		{
			name:        "unknown company with suffix",
			affiliation: "Acme Therapeutics, Cambridge, MA",
			want:        types.Classification{Industry: true, Company: "Acme Therapeutics"},
		},
		{
			name:        "unknown company with corporate designator",
			affiliation: "Helix Biometrics, Inc., Seattle, WA",
			want:        types.Classification{Industry: true, Company: "Helix Biometrics"},
		},
		{
			name:        "academic token vetoes industry token in same clause",
			affiliation: "Department of Genetics, Stanford University, Stanford, CA",
			want:        types.Classification{},
		},
		{
			name:        "institute vetoes technology",
			affiliation: "Massachusetts Institute of Technology, Cambridge, MA",
			want:        types.Classification{},
		},
		{
			name:        "industry clause survives academic neighbor clause",
			affiliation: "Oncology Unit, Acme Therapeutics, Harvard University Visiting Program",
			want:        types.Classification{Industry: true, Company: "Acme Therapeutics"},
		},
		{
			name:        "known company inside academic text still wins",
			affiliation: "Roche Institute of Molecular Biology, Nutley, NJ",
			want:        types.Classification{Industry: true, Company: "Roche"},
		},
		{
			name:        "known company case-insensitive",
			affiliation: "ASTRAZENECA R&D, Cambridge, UK",
			want:        types.Classification{Industry: true, Company: "AstraZeneca"},
		},
		{
			name:        "industry token without extractable name",
			affiliation: "Global biotech division, Basel",
			want:        types.Classification{Industry: true, Company: ""},
		},
		{
			name:        "hospital",
			affiliation: "Massachusetts General Hospital, Boston, MA",
			want:        types.Classification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.affiliation)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.affiliation, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := Default()
	affiliation := "Vertex Pharmaceuticals Incorporated, Boston, MA"

	first := c.Classify(affiliation)
	for i := 0; i < 5; i++ {
		if got := c.Classify(affiliation); got != first {
			t.Fatalf("Classify run %d = %+v, want %+v", i, got, first)
		}
	}
	if !first.Industry || first.Company != "Vertex" {
		t.Errorf("Classify = %+v, want industry Vertex", first)
	}
}

// --- extractCompany ---

func TestExtractCompany(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"suffix pharmaceuticals", "Acme Pharmaceuticals, Boston", "Acme Pharmaceuticals"},
		{"suffix pharma", "Nova Pharma, Basel", "Nova Pharma"},
		{"suffix therapeutics", "Beam Therapeutics, Cambridge", "Beam Therapeutics"},
		{"suffix biosciences", "Sage Biosciences, Durham", "Sage Biosciences"},
		{"suffix labs", "Orion Labs, Austin", "Orion Labs"},
		{"designator inc", "Helix Biometrics, Inc., Seattle", "Helix Biometrics"},
		{"designator llc", "Quantum Dynamics, LLC, Denver", "Quantum Dynamics"},
		{"designator ltd", "Crest Analytics, Ltd., London", "Crest Analytics"},
		{"suffix beats designator", "Beam Therapeutics, Inc., Cambridge", "Beam Therapeutics"},
		{"no company", "somewhere in Boston", ""},
		{"lowercase start not matched", "acme therapeutics", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.extractCompany(tt.text); got != tt.want {
				t.Errorf("extractCompany(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// --- ClassifyAuthor ---

func TestClassifyAuthor(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		author types.Author
		want   types.Classification
	}{
		{
			name: "industry affiliation",
			author: types.Author{
				Name:         "Rivera Elena",
				Affiliations: []string{"Pfizer Inc., New York, NY"},
			},
			want: types.Classification{Industry: true, Company: "Pfizer"},
		},
		{
			name: "academic affiliation and academic email",
			author: types.Author{
				Name:         "Chen Wei",
				Affiliations: []string{"Stanford University, Stanford, CA"},
				Email:        "wchen@stanford.edu",
			},
			want: types.Classification{},
		},
		{
			name: "academic affiliation but industry email domain",
			author: types.Author{
				Name:         "Okafor Ngozi",
				Affiliations: []string{"Harvard Medical School, Boston, MA"},
				Email:        "nokafor@modernatx.com",
			},
			want: types.Classification{Industry: true, Company: "Moderna"},
		},
		{
			name: "affiliation company preferred over email domain",
			author: types.Author{
				Name:         "Larsen Mikkel",
				Affiliations: []string{"Acme Therapeutics, Cambridge, MA"},
				Email:        "mlarsen@gsk.com",
			},
			want: types.Classification{Industry: true, Company: "Acme Therapeutics"},
		},
		{
			name: "first industry company wins across affiliations",
			author: types.Author{
				Name: "Tanaka Yuki",
				Affiliations: []string{
					"Stanford University, Stanford, CA",
					"Beam Therapeutics, Cambridge, MA",
					"Novartis, Basel, Switzerland",
				},
			},
			want: types.Classification{Industry: true, Company: "Beam Therapeutics"},
		},
		{
			name: "government email stays academic",
			author: types.Author{
				Name:         "Price Dana",
				Affiliations: []string{"National Cancer Institute"},
				Email:        "dprice@nih.gov",
			},
			want: types.Classification{},
		},
		{
			name: "no affiliations no email",
			author: types.Author{
				Name: "Anon A",
			},
			want: types.Classification{},
		},
		{
			name: "malformed email ignored",
			author: types.Author{
				Name:         "Busch Karl",
				Affiliations: []string{"University of Heidelberg"},
				Email:        "not-an-email",
			},
			want: types.Classification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ClassifyAuthor(tt.author)
			if got != tt.want {
				t.Errorf("ClassifyAuthor(%+v) = %+v, want %+v", tt.author, got, tt.want)
			}
		})
	}
}

func TestClassifyAuthorEmailSignalDisabled(t *testing.T) {
	policy := DefaultPolicy()
	policy.EmailDomainSignal = false
	c, err := New(policy)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	author := types.Author{
		Name:         "Okafor Ngozi",
		Affiliations: []string{"Harvard Medical School, Boston, MA"},
		Email:        "nokafor@modernatx.com",
	}
	if got := c.ClassifyAuthor(author); got.Industry {
		t.Errorf("ClassifyAuthor with email signal disabled = %+v, want academic", got)
	}
}

// --- domain helpers ---

func TestCompanyFromDomain(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"known company domain", "pfizer.com", "Pfizer"},
		{"known company brand domain", "modernatx.com", "Moderna"},
		{"known company short name", "gsk.com", "GSK"},
		{"unknown company capitalized", "vrtx.com", "Vrtx"},
		{"subdomain uses second level", "mail.regeneron.com", "Regeneron"},
		{"single label", "localhost", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.companyFromDomain(tt.domain); got != tt.want {
				t.Errorf("companyFromDomain(%q) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		want   string
		wantOK bool
	}{
		{"plain", "a.b@pfizer.com", "pfizer.com", true},
		{"uppercase lowered", "X@Example.COM", "example.com", true},
		{"no at sign", "nobody", "", false},
		{"trailing at sign", "nobody@", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := emailDomain(tt.email)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("emailDomain(%q) = %q, %v, want %q, %v", tt.email, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
