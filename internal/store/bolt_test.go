//go:build !sqlite

package store

import (
	"path/filepath"
	"testing"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/secret"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *Bolt {
	t.Helper()

	dir := t.TempDir()

	sealer, err := secret.LoadOrCreate(filepath.Join(dir, "test.key"))
	require.NoError(t, err)

	db, err := NewBolt(filepath.Join(dir, "test.bolt"), sealer)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRepoRoundTrip(t *testing.T) {
	db := newTestStore(t)

	rec := &model.Repository{
		ID:            "widgets",
		Domain:        "github.com",
		Owner:         "acme",
		Name:          "widgets",
		DefaultBranch: "develop",
		Token:         "ghp_record",
	}
	require.NoError(t, db.SaveRepo(rec))
	require.NotEmpty(t, rec.UID)
	require.False(t, rec.CreatedAt.IsZero())

	got, err := db.GetRepo("widgets")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "acme", got.Owner)
	require.Equal(t, "develop", got.DefaultBranch)
	require.Equal(t, "ghp_record", got.Token)
}

func TestGetRepoMissing(t *testing.T) {
	db := newTestStore(t)

	got, err := db.GetRepo("nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRepoTokenStoredSealed(t *testing.T) {
	db := newTestStore(t)

	require.NoError(t, db.SaveRepo(&model.Repository{
		ID:     "widgets",
		Domain: "github.com",
		Owner:  "acme",
		Name:   "widgets",
		Token:  "ghp_plaintext",
	}))

	// raw record on disk must not carry the plaintext token
	raw := rawBucketValue(t, db, boltBucketRepos, "widgets")
	require.NotContains(t, string(raw), "ghp_plaintext")
}

func TestListReposBlanksTokens(t *testing.T) {
	db := newTestStore(t)

	require.NoError(t, db.SaveRepo(&model.Repository{
		ID: "a", Domain: "github.com", Owner: "acme", Name: "a", Token: "secret",
	}))
	require.NoError(t, db.SaveRepo(&model.Repository{
		ID: "b", Domain: "github.com", Owner: "acme", Name: "b",
	}))

	repos, err := db.ListRepos()
	require.NoError(t, err)
	require.Len(t, repos, 2)

	for _, r := range repos {
		require.Empty(t, r.Token)
	}
}

func TestDeleteRepo(t *testing.T) {
	db := newTestStore(t)

	require.NoError(t, db.SaveRepo(&model.Repository{
		ID: "widgets", Domain: "github.com", Owner: "acme", Name: "widgets",
	}))

	exists, err := db.RepoExists("widgets")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, db.DeleteRepo("widgets"))

	exists, err = db.RepoExists("widgets")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestProfileRoundTrip(t *testing.T) {
	db := newTestStore(t)

	prof := &model.Profile{
		Name:           "default",
		Domain:         "git.example.org",
		Format:         model.FormatJSON,
		OutputDir:      "/tmp/out",
		IncludePattern: `\.go$`,
		Token:          "gitea_token",
	}
	require.NoError(t, db.SaveProfile(prof))

	got, err := db.GetProfile("default")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "git.example.org", got.Domain)
	require.Equal(t, model.FormatJSON, got.Format)
	require.Equal(t, "gitea_token", got.Token)

	profiles, err := db.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Empty(t, profiles[0].Token)
}

func TestProfileRequiresName(t *testing.T) {
	db := newTestStore(t)

	require.Error(t, db.SaveProfile(&model.Profile{}))
}

func TestTokenTable(t *testing.T) {
	db := newTestStore(t)

	require.NoError(t, db.SetToken("github.com", "ghp_domain"))
	require.NoError(t, db.SetToken("git.example.org", "gitea_domain"))

	tok, err := db.GetToken("github.com")
	require.NoError(t, err)
	require.Equal(t, "ghp_domain", tok)

	tok, err = db.GetToken("unknown.example")
	require.NoError(t, err)
	require.Empty(t, tok)

	all, err := db.GetTokens()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"github.com":      "ghp_domain",
		"git.example.org": "gitea_domain",
	}, all)

	domains, err := db.ListTokenDomains()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"github.com", "git.example.org"}, domains)

	require.NoError(t, db.DeleteToken("github.com"))

	tok, err = db.GetToken("github.com")
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestStateRoundTrip(t *testing.T) {
	db := newTestStore(t)

	state, err := db.GetState()
	require.NoError(t, err)
	require.Empty(t, state.LastProfile)
	require.Empty(t, state.LastRepo)

	require.NoError(t, db.SaveState(&model.State{LastProfile: "default", LastRepo: "widgets"}))

	state, err = db.GetState()
	require.NoError(t, err)
	require.Equal(t, "default", state.LastProfile)
	require.Equal(t, "widgets", state.LastRepo)
}

func rawBucketValue(t *testing.T, db *Bolt, bucket, key string) []byte {
	t.Helper()

	var out []byte

	require.NoError(t, db.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucket)).Get([]byte(key))
		out = append([]byte(nil), v...)

		return nil
	}))

	return out
}
