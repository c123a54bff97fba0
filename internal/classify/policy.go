package classify

// Policy holds the tunable inputs of affiliation classification: the pattern
// sets, the known-company table, and the email-domain heuristic. Callers that
// need different precision/recall tradeoffs build a Classifier from their own
// Policy; DefaultPolicy favors recall.
type Policy struct {
	// IndustryPatterns are regular-expression tokens marking a clause as
	// pharmaceutical/biotech. Compiled case-insensitive.
	IndustryPatterns []string

	// AcademicPatterns are tokens marking a clause as academic. Academic
	// tokens veto industry tokens only within their own clause; an industry
	// token in a clause of its own still wins.
	AcademicPatterns []string

	// KnownCompanies maps lowercased company substrings to display names. A
	// match anywhere in an affiliation classifies it industry, joint
	// academic appointments included.
	KnownCompanies map[string]string

	// EmailDomainSignal treats an author email outside the academic domains
	// as industry evidence.
	EmailDomainSignal bool

	// AcademicDomainMarkers mark an email domain as academic or governmental
	// when they appear anywhere in it.
	AcademicDomainMarkers []string
}

// DefaultPolicy returns the stock policy: pharma/biotech suffix tokens and
// corporate designators on the industry side, institutional vocabulary on
// the academic side, and the major pharmaceutical companies by name.
func DefaultPolicy() Policy {
	return Policy{
		IndustryPatterns: []string{
			`\b(?:pharma(?:ceutical)?s?|biotech|therapeutics|biosciences)\b`,
			`\binc\.?\b|\bllc\.?\b|\bltd\.?\b|\bcorp\.?\b|\bcorporation\b|\bgmbh\b`,
			`\blaborator(?:y|ies)\b|\blabs?\b`,
			`\bbiopharm(?:a|aceutical)?\b`,
			`\bmedical\s+research\b`,
			`\bbiolog(?:y|ical)s?\b`,
			`\blife\s+sciences\b`,
			`\bhealth(?:care)?\b`,
			`\bmedicine[s]?\b`,
			`\bgenetics\b`,
			`\bgenomics\b`,
			`\bdiagnostics\b`,
			`\btechnology\b`,
		},
		AcademicPatterns: []string{
			`\buniversity\b|\bcollege\b|\bcampus\b`,
			`\bschool\b`,
			`\bacadem(?:y|ic)\b`,
			`\binstitut(?:e|ion)\b`,
			`\bdepartment\b|\bdept\.?\b`,
			`\bhospital\b`,
			`\bmedical\s+center\b|\bhealth\s+center\b`,
			`\bclinic(?:al)?\b`,
			`\bfaculty\b`,
			`\bprofessor\b`,
			`\bnational\s+institutes?\b|\bnih\b`,
			`\bedu\b`,
		},
		KnownCompanies: map[string]string{
			"pfizer":                "Pfizer",
			"merck":                 "Merck",
			"novartis":              "Novartis",
			"roche":                 "Roche",
			"sanofi":                "Sanofi",
			"johnson & johnson":     "Johnson & Johnson",
			"j&j":                   "J&J",
			"glaxosmithkline":       "GlaxoSmithKline",
			"gsk":                   "GSK",
			"astrazeneca":           "AstraZeneca",
			"abbvie":                "AbbVie",
			"lilly":                 "Lilly",
			"eli lilly":             "Eli Lilly",
			"bristol-myers squibb":  "Bristol-Myers Squibb",
			"bms":                   "BMS",
			"amgen":                 "Amgen",
			"gilead":                "Gilead",
			"biogen":                "Biogen",
			"bayer":                 "Bayer",
			"boehringer":            "Boehringer",
			"takeda":                "Takeda",
			"astellas":              "Astellas",
			"daiichi":               "Daiichi",
			"eisai":                 "Eisai",
			"genentech":             "Genentech",
			"regeneron":             "Regeneron",
			"moderna":               "Moderna",
			"biontech":              "BioNTech",
			"curevac":               "CureVac",
			"vertex":                "Vertex",
			"alexion":               "Alexion",
			"celgene":               "Celgene",
			"shire":                 "Shire",
			"incyte":                "Incyte",
			"seagen":                "Seagen",
			"novavax":               "Novavax",
			"biomarin":              "BioMarin",
			"alkermes":              "Alkermes",
			"viatris":               "Viatris",
			"teva":                  "Teva",
			"jazz":                  "Jazz",
			"united therapeutics":   "United Therapeutics",
			"ionis":                 "Ionis",
			"allogene":              "Allogene",
			"bluebird bio":          "Bluebird Bio",
		},
		EmailDomainSignal:     true,
		AcademicDomainMarkers: []string{"edu", "ac.", "gov"},
	}
}
