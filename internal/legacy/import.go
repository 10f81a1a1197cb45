// Package legacy imports configuration from the ini files earlier
// releases kept: repository sections, a domain token table, profiles, and
// the last-used markers.
package legacy

import (
	"fmt"
	"strings"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/store"
	"gopkg.in/ini.v1"
)

type repoSection struct {
	Domain string `ini:"domain"`
	Owner  string `ini:"owner"`
	Name   string `ini:"name"`
	Branch string `ini:"branch"`
	Token  string `ini:"token"`
}

type profileSection struct {
	Domain  string `ini:"domain"`
	Format  string `ini:"format"`
	Output  string `ini:"output_dir"`
	Include string `ini:"include"`
	Exclude string `ini:"exclude"`
	Keep    bool   `ini:"keep"`
	Token   string `ini:"token"`
}

type stateSection struct {
	LastProfile string `ini:"last_profile"`
	LastRepo    string `ini:"last_repo"`
}

// Summary counts what an import brought in.
type Summary struct {
	Repos    int
	Profiles int
	Tokens   int
}

// Import reads the legacy ini file at path and stores its contents.
// Existing records with the same keys are overwritten.
func Import(st store.Store, path string) (*Summary, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	summary := &Summary{}

	for _, sec := range cfg.Sections() {
		name := sec.Name()

		switch {
		case strings.HasPrefix(name, `repo "`):
			id, ok := sectionKey(name, `repo "`)
			if !ok {
				continue
			}

			var rs repoSection

			if err := sec.MapTo(&rs); err != nil {
				return nil, fmt.Errorf("repo %q: %w", id, err)
			}

			if err := st.SaveRepo(&model.Repository{
				ID:            id,
				Domain:        rs.Domain,
				Owner:         rs.Owner,
				Name:          rs.Name,
				DefaultBranch: rs.Branch,
				Token:         rs.Token,
			}); err != nil {
				return nil, fmt.Errorf("repo %q: %w", id, err)
			}

			summary.Repos++

		case strings.HasPrefix(name, `profile "`):
			pname, ok := sectionKey(name, `profile "`)
			if !ok {
				continue
			}

			var ps profileSection

			if err := sec.MapTo(&ps); err != nil {
				return nil, fmt.Errorf("profile %q: %w", pname, err)
			}

			if err := st.SaveProfile(&model.Profile{
				Name:           pname,
				Domain:         ps.Domain,
				Format:         ps.Format,
				OutputDir:      ps.Output,
				IncludePattern: ps.Include,
				ExcludePattern: ps.Exclude,
				KeepClone:      ps.Keep,
				Token:          ps.Token,
			}); err != nil {
				return nil, fmt.Errorf("profile %q: %w", pname, err)
			}

			summary.Profiles++

		case name == "tokens":
			// the token table keys domains directly; no identifier
			// escaping survives from the legacy format
			for _, key := range sec.Keys() {
				if err := st.SetToken(key.Name(), key.Value()); err != nil {
					return nil, fmt.Errorf("token %q: %w", key.Name(), err)
				}

				summary.Tokens++
			}

		case name == "state":
			var ss stateSection

			if err := sec.MapTo(&ss); err != nil {
				return nil, fmt.Errorf("state: %w", err)
			}

			if err := st.SaveState(&model.State{
				LastProfile: ss.LastProfile,
				LastRepo:    ss.LastRepo,
			}); err != nil {
				return nil, fmt.Errorf("state: %w", err)
			}
		}
	}

	return summary, nil
}

// sectionKey extracts the quoted identifier from a section name like
// `repo "widgets"`. Malformed names (no closing quote, empty identifier)
// report false and the section is skipped.
func sectionKey(name, prefix string) (string, bool) {
	if len(name) <= len(prefix) || !strings.HasSuffix(name, `"`) {
		return "", false
	}

	key := name[len(prefix) : len(name)-1]

	return key, key != ""
}
