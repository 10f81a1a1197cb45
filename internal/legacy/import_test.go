//go:build !sqlite

package legacy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/linkr/internal/secret"
	"github.com/inovacc/linkr/internal/store"
	"github.com/stretchr/testify/require"
)

const fixture = `[repo "widgets"]
domain = github.com
owner = acme
name = widgets
branch = develop
token = ghp_record

[profile "default"]
domain = github.com
format = json
output_dir = /tmp/out
include = \.go$
keep = true

[tokens]
github.com = ghp_domain
git.example.org = gitea_domain

[state]
last_profile = default
last_repo = widgets
`

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dir := t.TempDir()

	sealer, err := secret.LoadOrCreate(filepath.Join(dir, "test.key"))
	require.NoError(t, err)

	db, err := store.NewBolt(filepath.Join(dir, "test.bolt"), sealer)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestImport(t *testing.T) {
	st := newTestStore(t)

	path := filepath.Join(t.TempDir(), "legacy.ini")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))

	summary, err := Import(st, path)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Repos)
	require.Equal(t, 1, summary.Profiles)
	require.Equal(t, 2, summary.Tokens)

	rec, err := st.GetRepo("widgets")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "acme", rec.Owner)
	require.Equal(t, "develop", rec.DefaultBranch)
	require.Equal(t, "ghp_record", rec.Token)

	prof, err := st.GetProfile("default")
	require.NoError(t, err)
	require.NotNil(t, prof)
	require.Equal(t, "json", prof.Format)
	require.Equal(t, "/tmp/out", prof.OutputDir)
	require.Equal(t, `\.go$`, prof.IncludePattern)
	require.True(t, prof.KeepClone)

	tok, err := st.GetToken("git.example.org")
	require.NoError(t, err)
	require.Equal(t, "gitea_domain", tok)

	state, err := st.GetState()
	require.NoError(t, err)
	require.Equal(t, "default", state.LastProfile)
	require.Equal(t, "widgets", state.LastRepo)
}

func TestImportMissingFile(t *testing.T) {
	st := newTestStore(t)

	_, err := Import(st, filepath.Join(t.TempDir(), "nope.ini"))
	require.Error(t, err)
}

func TestImportSkipsMalformedSections(t *testing.T) {
	st := newTestStore(t)

	malformed := `[repo "]
domain = github.com

[profile "]
format = text

[repo ""]
domain = github.com

[repo "widgets"]
domain = github.com
owner = acme
name = widgets
`

	path := filepath.Join(t.TempDir(), "legacy.ini")
	require.NoError(t, os.WriteFile(path, []byte(malformed), 0644))

	summary, err := Import(st, path)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Repos)
	require.Zero(t, summary.Profiles)

	rec, err := st.GetRepo("widgets")
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestSectionKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		ok   bool
	}{
		{`repo "widgets"`, "widgets", true},
		{`repo "a"`, "a", true},
		{`repo "`, "", false},
		{`repo ""`, "", false},
		{`repo "unterminated`, "", false},
	}

	for _, tt := range tests {
		key, ok := sectionKey(tt.name, `repo "`)
		require.Equal(t, tt.ok, ok, tt.name)
		require.Equal(t, tt.key, key, tt.name)
	}
}

func TestImportEmptyFile(t *testing.T) {
	st := newTestStore(t)

	path := filepath.Join(t.TempDir(), "empty.ini")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	summary, err := Import(st, path)
	require.NoError(t, err)
	require.Zero(t, summary.Repos)
	require.Zero(t, summary.Profiles)
	require.Zero(t, summary.Tokens)
}
