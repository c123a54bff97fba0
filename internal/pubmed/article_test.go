package pubmed

import (
	"strings"
	"testing"
)

const samplePubmedArticleSetXML = `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">38412345</PMID>
      <Article PubModel="Print">
        <Journal>
          <Title>Journal of Clinical Oncology</Title>
          <JournalIssue CitedMedium="Internet">
            <Volume>41</Volume>
            <Issue>3</Issue>
            <PubDate>
              <Year>2023</Year>
              <Month>Jan</Month>
              <Day>15</Day>
            </PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Phase 2 trial of a selective kinase inhibitor in refractory tumors.</ArticleTitle>
        <Abstract>
          <AbstractText>We report results of a phase 2 study.</AbstractText>
        </Abstract>
        <AuthorList CompleteYN="Y">
          <Author ValidYN="Y">
            <LastName>Rivera</LastName>
            <ForeName>Elena</ForeName>
            <Initials>E</Initials>
            <AffiliationInfo>
              <Affiliation>Pfizer Inc., New York, NY, USA. elena.rivera@pfizer.com.</Affiliation>
            </AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Chen</LastName>
            <Initials>L</Initials>
            <AffiliationInfo>
              <Affiliation>Department of Medicine, Harvard Medical School, Boston, MA, USA.</Affiliation>
            </AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">38500001</PMID>
      <Article PubModel="Electronic">
        <Journal>
          <Title>Vaccine Research</Title>
          <JournalIssue CitedMedium="Internet">
            <PubDate>
              <MedlineDate>2022 Nov-Dec</MedlineDate>
            </PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Immunogenicity surveillance after booster vaccination.</ArticleTitle>
        <AuthorList CompleteYN="Y">
          <Author ValidYN="Y">
            <CollectiveName>COVAX Surveillance Group</CollectiveName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestParseArticleSet(t *testing.T) {
	papers, err := ParseArticleSet(strings.NewReader(samplePubmedArticleSetXML))
	if err != nil {
		t.Fatalf("ParseArticleSet: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.PMID != "38412345" {
		t.Errorf("PMID = %q, want %q", p.PMID, "38412345")
	}
	if p.Title != "Phase 2 trial of a selective kinase inhibitor in refractory tumors." {
		t.Errorf("Title = %q", p.Title)
	}
	if p.PubDate != "2023/Jan/15" {
		t.Errorf("PubDate = %q, want %q", p.PubDate, "2023/Jan/15")
	}
	if p.Journal != "Journal of Clinical Oncology" {
		t.Errorf("Journal = %q", p.Journal)
	}
	if p.Abstract != "We report results of a phase 2 study." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
	if len(p.Authors) != 2 {
		t.Fatalf("len(Authors) = %d, want 2", len(p.Authors))
	}
	if p.Authors[0].Name != "Rivera Elena" {
		t.Errorf("Authors[0].Name = %q, want %q", p.Authors[0].Name, "Rivera Elena")
	}
	if p.Authors[0].Email != "elena.rivera@pfizer.com" {
		t.Errorf("Authors[0].Email = %q, want %q", p.Authors[0].Email, "elena.rivera@pfizer.com")
	}
	if len(p.Authors[0].Affiliations) != 1 {
		t.Fatalf("len(Authors[0].Affiliations) = %d, want 1", len(p.Authors[0].Affiliations))
	}
	// ForeName missing: name falls back to initials.
	if p.Authors[1].Name != "Chen L" {
		t.Errorf("Authors[1].Name = %q, want %q", p.Authors[1].Name, "Chen L")
	}
	if p.Authors[1].Email != "" {
		t.Errorf("Authors[1].Email = %q, want empty", p.Authors[1].Email)
	}

	p = papers[1]
	if p.PMID != "38500001" {
		t.Errorf("PMID = %q, want %q", p.PMID, "38500001")
	}
	if p.PubDate != "2022 Nov-Dec" {
		t.Errorf("PubDate = %q, want MedlineDate fallback", p.PubDate)
	}
	if p.Abstract != "" {
		t.Errorf("Abstract = %q, want empty", p.Abstract)
	}
	if len(p.Authors) != 1 {
		t.Fatalf("len(Authors) = %d, want 1", len(p.Authors))
	}
	if p.Authors[0].Name != "COVAX Surveillance Group" {
		t.Errorf("collective author name = %q", p.Authors[0].Name)
	}
}

func TestParseArticleSetMalformed(t *testing.T) {
	_, err := ParseArticleSet(strings.NewReader("<PubmedArticleSet><unclosed"))
	if err == nil {
		t.Fatal("expected parse error for malformed XML")
	}
	if !strings.Contains(err.Error(), "parsing efetch response") {
		t.Errorf("error = %v, should mention efetch parsing", err)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		author authorData
		want   string
	}{
		{"last and fore name", authorData{LastName: "Rivera", ForeName: "Elena", Initials: "E"}, "Rivera Elena"},
		{"last name and initials", authorData{LastName: "Chen", Initials: "L"}, "Chen L"},
		{"last name only", authorData{LastName: "Okafor"}, "Okafor"},
		{"collective name", authorData{CollectiveName: "ACME Study Group"}, "ACME Study Group"},
		{"nothing", authorData{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.author.displayName(); got != tt.want {
				t.Errorf("displayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPubDateDisplay(t *testing.T) {
	tests := []struct {
		name string
		date pubDate
		want string
	}{
		{"full date", pubDate{Year: "2023", Month: "Jan", Day: "15"}, "2023/Jan/15"},
		{"year and month", pubDate{Year: "2023", Month: "Jan"}, "2023/Jan"},
		{"year only", pubDate{Year: "2023"}, "2023"},
		{"medline date fallback", pubDate{MedlineDate: "2000 Spring"}, "2000 Spring"},
		{"components beat medline date", pubDate{Year: "2019", MedlineDate: "2019 Jul-Aug"}, "2019"},
		{"empty", pubDate{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.display(); got != tt.want {
				t.Errorf("display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMineEmail(t *testing.T) {
	tests := []struct {
		name         string
		affiliations []string
		want         string
	}{
		{
			"email with trailing period",
			[]string{"Pfizer Inc., New York, NY, USA. jane.doe@pfizer.com."},
			"jane.doe@pfizer.com",
		},
		{
			"email wrapped in punctuation",
			[]string{"Amgen, Thousand Oaks, CA (contact: j.smith@amgen.com)"},
			"j.smith@amgen.com",
		},
		{
			"angle brackets and semicolon",
			[]string{"Vertex Pharmaceuticals <lead@vrtx.com>;"},
			"lead@vrtx.com",
		},
		{
			"no email",
			[]string{"Department of Biology, MIT, Cambridge, MA"},
			"",
		},
		{
			"at sign without dot is not an email",
			[]string{"reach us @frontdesk for details"},
			"",
		},
		{
			"email in second affiliation",
			[]string{"Harvard Medical School, Boston, MA", "Moderna, Cambridge, MA. k.patel@modernatx.com"},
			"k.patel@modernatx.com",
		},
		{
			"first email wins",
			[]string{"Biogen, Cambridge, MA. a.lee@biogen.com b.wu@biogen.com"},
			"a.lee@biogen.com",
		},
		{"no affiliations", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mineEmail(tt.affiliations); got != tt.want {
				t.Errorf("mineEmail(%q) = %q, want %q", tt.affiliations, got, tt.want)
			}
		})
	}
}
