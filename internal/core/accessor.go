package core

import (
	"context"
	"os"
	"path/filepath"

	"github.com/inovacc/linkr/internal/encoding"
	"github.com/inovacc/linkr/internal/git"
	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/params"
)

// WorkingCopy is a materialized local clone of a remote repository.
type WorkingCopy struct {
	Path   string
	Cloned bool // true when this run created the clone

	client *git.Client
}

// EnsureLocalOptions configures working copy materialization.
type EnsureLocalOptions struct {
	// Update pulls an existing working copy before use. Interactive
	// callers gate this on confirmation; unattended runs set it
	// unconditionally.
	Update bool

	// BaseDir overrides the default working copy directory (tests).
	BaseDir string
}

// EnsureLocal materializes a working copy for the record, cloning when
// absent and optionally updating in place when present. The token, when
// non-empty, is embedded in the clone URL so git can authenticate.
func EnsureLocal(ctx context.Context, rec *model.Repository, token string, opts EnsureLocalOptions) (*WorkingCopy, error) {
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = params.WorkcopyDir()
	}

	path := filepath.Join(baseDir, rec.Name)

	wc := &WorkingCopy{
		Path:   path,
		client: git.NewClientForRepo(path),
	}

	if !encoding.DirExists(path) || !wc.client.IsRepository(ctx) {
		cloneURL := rec.CloneURL(token)

		if err := encoding.EnsureDir(baseDir); err != nil {
			return nil, err
		}

		if err := wc.client.Clone(ctx, cloneURL, path); err != nil {
			return nil, &CloneError{URL: rec.CloneURL(""), Err: err}
		}

		wc.Cloned = true

		return wc, nil
	}

	if opts.Update {
		if err := wc.client.Fetch(ctx); err != nil {
			return nil, &UpdateError{Path: path, Err: err}
		}

		if err := wc.client.Pull(ctx); err != nil {
			return nil, &UpdateError{Path: path, Err: err}
		}
	}

	return wc, nil
}

// ResolveBranch picks the branch for the export. A requested name wins;
// otherwise the currently checked-out branch is used. Detached or empty
// falls back to main when it exists as a local or remote-tracking ref,
// else master.
func (wc *WorkingCopy) ResolveBranch(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	current, err := wc.client.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}

	if current != "" && current != "HEAD" {
		return current, nil
	}

	if wc.client.HasBranch(ctx, "main") {
		return "main", nil
	}

	return "master", nil
}

// ListRemoteBranches exposes the remote branch names for interactive
// selection.
func (wc *WorkingCopy) ListRemoteBranches(ctx context.Context) ([]string, error) {
	return wc.client.ListRemoteBranches(ctx)
}

// ListTrackedFiles returns the version-controlled file listing, sourced
// from the index so ignored and untracked files are never candidates.
func (wc *WorkingCopy) ListTrackedFiles(ctx context.Context) ([]string, error) {
	return wc.client.ListTrackedFiles(ctx)
}

// Teardown removes the working copy from disk.
func (wc *WorkingCopy) Teardown() error {
	return os.RemoveAll(wc.Path)
}
