package model

import "time"

// Format names accepted by the export renderer.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatHTML = "html"
)

// Profile represents a named bundle of export defaults.
type Profile struct {
	// Name is the unique identifier for this profile
	Name string `json:"name"`

	// Domain is the default hosting domain for this profile
	Domain string `json:"domain"`

	// Format is the default output format (text, csv, json, html)
	Format string `json:"format"`

	// OutputDir is where export artifacts are written
	OutputDir string `json:"output_dir"`

	// IncludePattern is an optional regular expression; only matching
	// paths are exported
	IncludePattern string `json:"include_pattern,omitempty"`

	// ExcludePattern is an optional regular expression; empty means the
	// built-in default exclusion set applies
	ExcludePattern string `json:"exclude_pattern,omitempty"`

	// KeepClone keeps the local working copy after export
	KeepClone bool `json:"keep_clone"`

	// Token is the lowest-precedence token source
	Token string `json:"token,omitempty"`

	// CreatedAt is when the profile was created
	CreatedAt time.Time `json:"created_at"`

	// LastUsedAt is when the profile was last used
	LastUsedAt time.Time `json:"last_used_at"`
}

// DefaultDomain returns the default hosting domain.
func DefaultDomain() string {
	return "github.com"
}

// ValidFormat reports whether name is a supported output format.
func ValidFormat(name string) bool {
	switch name {
	case FormatText, FormatCSV, FormatJSON, FormatHTML:
		return true
	}

	return false
}
