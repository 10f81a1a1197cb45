// Package resolve merges the layered configuration sources into the
// effective settings for one export run.
//
// Three immutable layers feed the merge: the repository record, the
// domain-wide token table, and the active profile. Command-line overrides
// sit on top. The merge is a pure function; nothing is mutated in place
// and the result is never persisted.
package resolve

import (
	"github.com/inovacc/linkr/internal/filter"
	"github.com/inovacc/linkr/internal/model"
)

// FallbackBranch is used when neither the overrides nor the record name a
// branch. The working copy may still refine it once materialized.
const FallbackBranch = "main"

// Overrides carries command-line values that take precedence over the
// stored layers. Empty string fields mean "not supplied".
type Overrides struct {
	Branch    string
	Format    string
	Include   string
	Exclude   string
	NoExclude bool // force an empty exclude pattern
	Keep      bool
	KeepSet   bool // Keep carries meaning only when the flag was passed
}

// EffectiveConfig is the resolved single source of truth for one export.
type EffectiveConfig struct {
	Domain string
	Owner  string
	Name   string
	Branch string

	Format    string
	OutputDir string
	KeepClone bool

	// Filters holds the compiled patterns; pattern sources are kept for
	// the artifact header.
	Filters        *filter.Set
	IncludePattern string
	ExcludePattern string

	Token       string
	TokenSource TokenSource

	ProfileName string
	RepoID      string
}

// Resolve merges the three layers plus overrides into an EffectiveConfig.
// Token precedence is strict: record token, then the token table entry
// for the record's domain, then the profile token. The exclude pattern is
// either the built-in default set or exactly one user-supplied pattern,
// never a union.
func Resolve(rec *model.Repository, tokens map[string]string, prof *model.Profile, ov Overrides) (*EffectiveConfig, error) {
	if prof.OutputDir == "" {
		return nil, &MissingFieldError{Field: "output_dir"}
	}

	branch := ov.Branch
	if branch == "" {
		branch = rec.DefaultBranch
	}
	if branch == "" {
		branch = FallbackBranch
	}

	format := ov.Format
	if format == "" {
		format = prof.Format
	}

	include := ov.Include
	if include == "" {
		include = prof.IncludePattern
	}

	exclude := resolveExclude(prof, ov)

	keep := prof.KeepClone
	if ov.KeepSet {
		keep = ov.Keep
	}

	filters, err := filter.Compile(include, exclude)
	if err != nil {
		return nil, err
	}

	token, source := resolveToken(
		recordToken(rec.Token),
		domainToken(tokens, rec.Domain),
		profileToken(prof.Token),
	)

	return &EffectiveConfig{
		Domain:         rec.Domain,
		Owner:          rec.Owner,
		Name:           rec.Name,
		Branch:         branch,
		Format:         format,
		OutputDir:      prof.OutputDir,
		KeepClone:      keep,
		Filters:        filters,
		IncludePattern: include,
		ExcludePattern: exclude,
		Token:          token,
		TokenSource:    source,
		ProfileName:    prof.Name,
		RepoID:         rec.ID,
	}, nil
}

// resolveExclude picks the exclude pattern for unattended runs: an
// explicit disable wins, then an explicit override, then the profile's
// custom pattern, else the built-in default set. Interactive callers
// present the result for confirmation and clear it on decline.
func resolveExclude(prof *model.Profile, ov Overrides) string {
	switch {
	case ov.NoExclude:
		return ""
	case ov.Exclude != "":
		return ov.Exclude
	case prof.ExcludePattern != "":
		return prof.ExcludePattern
	default:
		return filter.DefaultExclude
	}
}

// DropExclude returns a copy of cfg with exclusion disabled. Used by the
// interactive flow when the user declines the presented pattern.
func DropExclude(cfg *EffectiveConfig) (*EffectiveConfig, error) {
	filters, err := filter.Compile(cfg.IncludePattern, "")
	if err != nil {
		return nil, err
	}

	out := *cfg
	out.Filters = filters
	out.ExcludePattern = ""

	return &out, nil
}

// HeaderExclude renders the exclude pattern for the artifact header.
func (c *EffectiveConfig) HeaderExclude() string {
	if c.ExcludePattern == "" {
		return "none"
	}

	return c.ExcludePattern
}
