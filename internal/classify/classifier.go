// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether affiliation text points at a
// pharmaceutical or biotech employer and extracts the company name.
// Classification is pure: the same input always yields the same verdict,
// and no call touches the network or the filesystem.
package classify

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Company-name extraction patterns: "<Name> Pharmaceuticals" style suffix
// phrases first, then "<Name>, Inc." style corporate designators. The
// character class excludes "," and ";", so matches never cross a clause.
var (
	companySuffixRE     = regexp.MustCompile(`([A-Z][a-zA-Z0-9\s&\-]+)\s+(?:Pharma(?:ceutical)?s?|Biotech|Therapeutics|Biosciences|Labs?|Laboratories)`)
	companyDesignatorRE = regexp.MustCompile(`([A-Z][a-zA-Z0-9\s&\-]+)(?:,\s+Inc\.?|,\s+LLC\.?|,\s+Ltd\.?|,\s+Corp\.?|,\s+Corporation)`)
)

// Classifier applies a compiled Policy to affiliation strings.
type Classifier struct {
	policy   Policy
	industry []*regexp.Regexp
	academic []*regexp.Regexp
	known    []knownCompany
}

// knownCompany pairs a lowercased match substring with its display name.
// Matching iterates in sorted match order so verdicts are deterministic.
type knownCompany struct {
	match   string
	display string
}

// New compiles a Policy into a Classifier. Patterns compile
// case-insensitive; an invalid pattern fails construction.
func New(policy Policy) (*Classifier, error) {
	industry, err := compilePatterns(policy.IndustryPatterns)
	if err != nil {
		return nil, fmt.Errorf("compiling industry patterns: %w", err)
	}
	academic, err := compilePatterns(policy.AcademicPatterns)
	if err != nil {
		return nil, fmt.Errorf("compiling academic patterns: %w", err)
	}

	known := make([]knownCompany, 0, len(policy.KnownCompanies))
	for match, display := range policy.KnownCompanies {
		known = append(known, knownCompany{match: strings.ToLower(match), display: display})
	}
	sort.Slice(known, func(i, j int) bool { return known[i].match < known[j].match })

	return &Classifier{
		policy:   policy,
		industry: industry,
		academic: academic,
		known:    known,
	}, nil
}

// Default returns a Classifier built from DefaultPolicy.
func Default() *Classifier {
	c, err := New(DefaultPolicy())
	if err != nil {
		panic(err)
	}
	return c
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// Classify judges a single affiliation string. Empty or whitespace-only
// input is academic. A known company name anywhere wins; otherwise an
// industry token wins unless an academic token appears in the same clause.
func (c *Classifier) Classify(affiliation string) types.Classification {
	text := strings.TrimSpace(affiliation)
	if text == "" {
		return types.Classification{}
	}

	if display, ok := c.knownCompanyIn(text); ok {
		return types.Classification{Industry: true, Company: display}
	}

	industry := false
	for _, clause := range splitClauses(text) {
		if !matchesAny(c.industry, clause) {
			continue
		}
		// Academic tokens veto industry tokens only within their own clause.
		if matchesAny(c.academic, clause) {
			continue
		}
		industry = true
		break
	}
	if !industry {
		return types.Classification{}
	}

	return types.Classification{Industry: true, Company: c.extractCompany(text)}
}

// ClassifyAuthor reduces over an author's affiliations: any industry
// affiliation makes the author industry, and the first extracted company
// wins. When the policy enables it, a non-academic email domain also counts
// as industry evidence.
func (c *Classifier) ClassifyAuthor(author types.Author) types.Classification {
	var result types.Classification
	for _, aff := range author.Affiliations {
		cls := c.Classify(aff)
		if !cls.Industry {
			continue
		}
		result.Industry = true
		if result.Company == "" {
			result.Company = cls.Company
		}
	}

	if c.policy.EmailDomainSignal && author.Email != "" {
		if domain, ok := emailDomain(author.Email); ok && !c.academicDomain(domain) {
			result.Industry = true
			if result.Company == "" {
				result.Company = c.companyFromDomain(domain)
			}
		}
	}
	return result
}

func (c *Classifier) knownCompanyIn(text string) (string, bool) {
	low := strings.ToLower(text)
	for _, kc := range c.known {
		if strings.Contains(low, kc.match) {
			return kc.display, true
		}
	}
	return "", false
}

// extractCompany pulls a company name out of affiliation text using the
// suffix and designator patterns. Empty when neither pattern applies.
func (c *Classifier) extractCompany(text string) string {
	if m := companySuffixRE.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if m := companyDesignatorRE.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// companyFromDomain derives a company name from an email domain: the
// known-company table first (matched with spaces and hyphens removed), then
// the capitalized second-level domain.
func (c *Classifier) companyFromDomain(domain string) string {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return ""
	}
	main := parts[len(parts)-2]
	if main == "" {
		return ""
	}

	for _, kc := range c.known {
		normalized := strings.NewReplacer(" ", "", "-", "").Replace(kc.match)
		if strings.Contains(main, normalized) || strings.Contains(normalized, main) {
			return kc.display
		}
	}
	return upperFirst(main)
}

func (c *Classifier) academicDomain(domain string) bool {
	for _, marker := range c.policy.AcademicDomainMarkers {
		if strings.Contains(domain, marker) {
			return true
		}
	}
	return false
}

// emailDomain returns the lowercased domain part of an email address.
func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return strings.ToLower(email[at+1:]), true
}

// splitClauses breaks an affiliation on "," and ";" so token matches stay
// scoped to their own clause.
func splitClauses(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	var clauses []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
