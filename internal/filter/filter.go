// Package filter reduces a tracked-file listing with include and exclude
// regular expressions.
package filter

import (
	"fmt"
	"regexp"
)

// DefaultExclude is the built-in exclusion set applied when a profile
// carries no custom exclude pattern: vendored code at the repository root,
// packaging manifests, and binary media files.
const DefaultExclude = `^vendor(/|$)|(^|/)\.gitignore$|(^|/)LICENSE\.md$|\.mo$|^(composer|package)|(^|/)\.htaccess$|(^|/)favicon\.ico$|\.(jpg|jpeg|png|gif|svg|bmp|webp|mp3|wav|ogg|mp4|mov|avi|mkv)$`

// InvalidPatternError reports a pattern the regexp engine rejected.
type InvalidPatternError struct {
	Pattern string
	err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %v", e.Pattern, e.err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.err
}

// Set holds compiled include/exclude patterns. A nil pattern means the
// corresponding filter is not applied.
type Set struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// Compile validates and compiles the patterns once, so later Apply calls
// cannot fail. Empty strings disable the corresponding filter.
func Compile(includePattern, excludePattern string) (*Set, error) {
	s := &Set{}

	if excludePattern != "" {
		re, err := regexp.Compile(excludePattern)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: excludePattern, err: err}
		}

		s.exclude = re
	}

	if includePattern != "" {
		re, err := regexp.Compile(includePattern)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: includePattern, err: err}
		}

		s.include = re
	}

	return s, nil
}

// Apply filters entries, exclude first then include, preserving input
// order. Patterns use search semantics: a pattern matches anywhere in the
// path unless it anchors itself. Zero survivors is a valid result.
func (s *Set) Apply(entries []string) []string {
	out := make([]string, 0, len(entries))

	for _, entry := range entries {
		if s.exclude != nil && s.exclude.MatchString(entry) {
			continue
		}

		if s.include != nil && !s.include.MatchString(entry) {
			continue
		}

		out = append(out, entry)
	}

	return out
}

// ExcludePattern returns the exclude pattern source, or "" when disabled.
func (s *Set) ExcludePattern() string {
	if s.exclude == nil {
		return ""
	}

	return s.exclude.String()
}

// IncludePattern returns the include pattern source, or "" when disabled.
func (s *Set) IncludePattern() string {
	if s.include == nil {
		return ""
	}

	return s.include.String()
}
