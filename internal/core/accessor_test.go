package core

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/inovacc/linkr/internal/encoding"
	"github.com/inovacc/linkr/internal/model"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", message)
}

// setupOrigin creates a local repository with commits on branch and maps
// the record's clone URL onto it through git's url rewriting, so the
// accessor exercises the same URL it would use against a real remote.
func setupOrigin(t *testing.T, rec *model.Repository, branch string) string {
	t.Helper()

	requireGit(t)

	origin := t.TempDir()

	cfg := filepath.Join(t.TempDir(), "gitconfig")
	content := "[user]\n\tname = tester\n\temail = tester@example.test\n" +
		"[url \"file://" + origin + "\"]\n\tinsteadOf = " + rec.CloneURL("") + "\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0644))

	t.Setenv("GIT_CONFIG_GLOBAL", cfg)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	runGit(t, origin, "init", "-b", branch)
	commitFile(t, origin, "README.md", "hello\n", "initial")
	commitFile(t, origin, "src/main.go", "package main\n", "add source")

	return origin
}

func testRecord() *model.Repository {
	return &model.Repository{
		ID:     "widgets",
		Domain: "git.example.test",
		Owner:  "acme",
		Name:   "widgets",
	}
}

func TestEnsureLocalClonesFreshCopy(t *testing.T) {
	rec := testRecord()
	setupOrigin(t, rec, "main")

	base := t.TempDir()
	ctx := context.Background()

	wc, err := EnsureLocal(ctx, rec, "", EnsureLocalOptions{BaseDir: base})
	require.NoError(t, err)
	require.True(t, wc.Cloned)
	require.Equal(t, filepath.Join(base, "widgets"), wc.Path)
	require.True(t, encoding.DirExists(wc.Path))

	files, err := wc.ListTrackedFiles(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"README.md", "src/main.go"}, files)

	branch, err := wc.ResolveBranch(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	branches, err := wc.ListRemoteBranches(ctx)
	require.NoError(t, err)
	require.Contains(t, branches, "main")
}

func TestEnsureLocalReusesAndUpdates(t *testing.T) {
	rec := testRecord()
	origin := setupOrigin(t, rec, "main")

	base := t.TempDir()
	ctx := context.Background()

	wc, err := EnsureLocal(ctx, rec, "", EnsureLocalOptions{BaseDir: base})
	require.NoError(t, err)
	require.True(t, wc.Cloned)

	// second call finds the existing copy and does not re-clone
	wc, err = EnsureLocal(ctx, rec, "", EnsureLocalOptions{BaseDir: base})
	require.NoError(t, err)
	require.False(t, wc.Cloned)

	commitFile(t, origin, "new.txt", "later\n", "add file")

	wc, err = EnsureLocal(ctx, rec, "", EnsureLocalOptions{Update: true, BaseDir: base})
	require.NoError(t, err)
	require.False(t, wc.Cloned)

	files, err := wc.ListTrackedFiles(ctx)
	require.NoError(t, err)
	require.Contains(t, files, "new.txt")
}

func TestResolveBranchRequestedWins(t *testing.T) {
	rec := testRecord()
	setupOrigin(t, rec, "main")

	ctx := context.Background()

	wc, err := EnsureLocal(ctx, rec, "", EnsureLocalOptions{BaseDir: t.TempDir()})
	require.NoError(t, err)

	branch, err := wc.ResolveBranch(ctx, "develop")
	require.NoError(t, err)
	require.Equal(t, "develop", branch)
}

func TestResolveBranchDetachedFallsBackToMain(t *testing.T) {
	rec := testRecord()
	setupOrigin(t, rec, "main")

	ctx := context.Background()

	wc, err := EnsureLocal(ctx, rec, "", EnsureLocalOptions{BaseDir: t.TempDir()})
	require.NoError(t, err)

	runGit(t, wc.Path, "checkout", "--detach")

	branch, err := wc.ResolveBranch(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "main", branch)
}

func TestResolveBranchDetachedWithoutMainFallsBackToMaster(t *testing.T) {
	rec := testRecord()
	setupOrigin(t, rec, "trunk")

	ctx := context.Background()

	wc, err := EnsureLocal(ctx, rec, "", EnsureLocalOptions{BaseDir: t.TempDir()})
	require.NoError(t, err)

	runGit(t, wc.Path, "checkout", "--detach")

	branch, err := wc.ResolveBranch(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "master", branch)
}

func TestEnsureLocalCloneFailureHidesToken(t *testing.T) {
	requireGit(t)

	rec := testRecord()

	// route the authenticated clone URL to a path that does not exist so
	// the clone fails without touching the network
	cfg := filepath.Join(t.TempDir(), "gitconfig")
	content := "[url \"file:///nonexistent/missing.git\"]\n\tinsteadOf = " + rec.CloneURL("sekret") + "\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0644))

	t.Setenv("GIT_CONFIG_GLOBAL", cfg)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	_, err := EnsureLocal(context.Background(), rec, "sekret", EnsureLocalOptions{BaseDir: t.TempDir()})

	var cloneErr *CloneError

	require.ErrorAs(t, err, &cloneErr)
	require.Equal(t, rec.CloneURL(""), cloneErr.URL)
	require.NotContains(t, err.Error(), "sekret")
}

func TestTeardownRemovesWorkingCopy(t *testing.T) {
	rec := testRecord()
	setupOrigin(t, rec, "main")

	wc, err := EnsureLocal(context.Background(), rec, "", EnsureLocalOptions{BaseDir: t.TempDir()})
	require.NoError(t, err)
	require.True(t, encoding.DirExists(wc.Path))

	require.NoError(t, wc.Teardown())
	require.False(t, encoding.DirExists(wc.Path))
}
