package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that talk to NCBI.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharma-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the PubMed fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of PMIDs to request (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize is the number of PMIDs fetched per efetch call (default 50).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// Email identifies the caller to NCBI, sent as the "email" parameter.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an NCBI API key; with one, NCBI allows 10 requests per
	// second instead of 3.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ExportConfig holds settings for the report stage.
type ExportConfig struct {
	// Path is the output file path; empty means standard output.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Format selects the output rendering: csv, table, or json.
	Format string `json:"format" yaml:"format"`
}

// ToolConfig groups all stage configurations.
type ToolConfig struct {
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Export ExportConfig `json:"export" yaml:"export"`
}
