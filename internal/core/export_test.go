//go:build !sqlite

package core

import (
	"path/filepath"
	"testing"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/resolve"
	"github.com/inovacc/linkr/internal/secret"
	"github.com/inovacc/linkr/internal/store"
	"github.com/stretchr/testify/require"
)

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

func seedStore(t *testing.T, st store.Store) {
	t.Helper()

	require.NoError(t, st.SaveProfile(&model.Profile{
		Name:      "default",
		Domain:    "github.com",
		Format:    model.FormatText,
		OutputDir: t.TempDir(),
	}))
	require.NoError(t, st.SaveRepo(&model.Repository{
		ID:     "widgets",
		Domain: "github.com",
		Owner:  "acme",
		Name:   "widgets",
	}))
}

func TestResolveRequestUnknownProfile(t *testing.T) {
	st := newTestStore(t)

	_, err := ResolveRequest(st, Request{ProfileName: "nope", RepoID: "widgets"})

	var notFound *resolve.ProfileNotFoundError

	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "nope", notFound.Name)
}

func TestResolveRequestUnknownRepo(t *testing.T) {
	st := newTestStore(t)
	seedStore(t, st)

	_, err := ResolveRequest(st, Request{ProfileName: "default", RepoID: "nope"})

	var notFound *resolve.RepoNotFoundError

	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "nope", notFound.ID)
}

func TestResolveRequestMergesLayers(t *testing.T) {
	st := newTestStore(t)
	seedStore(t, st)
	require.NoError(t, st.SetToken("github.com", "ghp_domain"))

	cfg, err := ResolveRequest(st, Request{ProfileName: "default", RepoID: "widgets"})
	require.NoError(t, err)
	require.Equal(t, "acme", cfg.Owner)
	require.Equal(t, "widgets", cfg.Name)
	require.Equal(t, model.FormatText, cfg.Format)
	require.Equal(t, "ghp_domain", cfg.Token)
	require.Equal(t, resolve.SourceDomain, cfg.TokenSource)
}

func TestResolveRequestAppliesOverrides(t *testing.T) {
	st := newTestStore(t)
	seedStore(t, st)

	cfg, err := ResolveRequest(st, Request{
		ProfileName: "default",
		RepoID:      "widgets",
		Overrides:   resolve.Overrides{Format: model.FormatHTML, Branch: "develop"},
	})
	require.NoError(t, err)
	require.Equal(t, model.FormatHTML, cfg.Format)
	require.Equal(t, "develop", cfg.Branch)
}

func TestQuickStartFillsFromState(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveState(&model.State{LastProfile: "default", LastRepo: "widgets"}))

	req, err := QuickStart(st, Request{})
	require.NoError(t, err)
	require.Equal(t, "default", req.ProfileName)
	require.Equal(t, "widgets", req.RepoID)
}

func TestQuickStartKeepsExplicitValues(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveState(&model.State{LastProfile: "default", LastRepo: "widgets"}))

	req, err := QuickStart(st, Request{ProfileName: "other", RepoID: "gizmos"})
	require.NoError(t, err)
	require.Equal(t, "other", req.ProfileName)
	require.Equal(t, "gizmos", req.RepoID)
}

func TestQuickStartEmptyState(t *testing.T) {
	st := newTestStore(t)

	req, err := QuickStart(st, Request{})
	require.NoError(t, err)
	require.Empty(t, req.ProfileName)
	require.Empty(t, req.RepoID)
}

func TestAutoConfirm(t *testing.T) {
	require.True(t, AutoConfirm(true).Confirm("anything"))
	require.False(t, AutoConfirm(false).Confirm("anything"))
}
